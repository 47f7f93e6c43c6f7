package database

import (
	"fmt"
	"log"

	"orgcatalog-backend/shared/database/models"
)

// SeedDatabase seeds the database with the initial catalog data
func SeedDatabase() error {
	log.Println("🌱 Checking database seed data...")

	activitiesCreated, err := seedActivities()
	if err != nil {
		return err
	}

	buildingsCreated, err := seedBuildings()
	if err != nil {
		return err
	}

	organizationsCreated, err := seedOrganizations()
	if err != nil {
		return err
	}

	if activitiesCreated > 0 || buildingsCreated > 0 || organizationsCreated > 0 {
		log.Printf("✅ Database seeding completed (%d activities, %d buildings, %d organizations created)",
			activitiesCreated, buildingsCreated, organizationsCreated)
	} else {
		log.Println("✅ Database seed data is up to date")
	}

	return nil
}

func intPtr(v int) *int {
	return &v
}

// seedActivities creates the default activity classification forest
func seedActivities() (int, error) {
	activities := []models.Activity{
		{ID: 1, Name: "Еда", ParentID: nil},
		{ID: 2, Name: "Мясная продукция", ParentID: intPtr(1)},
		{ID: 3, Name: "Молочная продукция", ParentID: intPtr(1)},
		{ID: 4, Name: "Автомобили", ParentID: nil},
		{ID: 5, Name: "Грузовые автомобили", ParentID: intPtr(4)},
		{ID: 6, Name: "Легковые автомобили", ParentID: intPtr(4)},
		{ID: 7, Name: "Запчасти", ParentID: intPtr(6)},
		{ID: 8, Name: "Аксессуары", ParentID: intPtr(6)},
	}

	created := 0
	for _, activity := range activities {
		var existing models.Activity
		if err := DB.Where("id = ?", activity.ID).First(&existing).Error; err == nil {
			continue
		}
		if err := DB.Create(&activity).Error; err != nil {
			return created, fmt.Errorf("failed to seed activity %q: %w", activity.Name, err)
		}
		created++
	}

	if created > 0 {
		if err := resetSequence("activities"); err != nil {
			return created, err
		}
	}
	return created, nil
}

// seedBuildings creates the default buildings
func seedBuildings() (int, error) {
	buildings := []models.Building{
		{ID: 1, Name: "БЦ Ленина", Address: "г. Москва, ул. Ленина 1, офис 3", Latitude: 55.7522, Longitude: 37.6156},
		{ID: 2, Name: "БЦ Аврора", Address: "г. Санкт-Петербург, Невский проспект 12", Latitude: 59.9316, Longitude: 30.3609},
		{ID: 3, Name: "БЦ Сибирь", Address: "г. Новосибирск, ул. Блюхера 32/1", Latitude: 55.0415, Longitude: 82.9346},
	}

	created := 0
	for _, building := range buildings {
		var existing models.Building
		if err := DB.Where("id = ?", building.ID).First(&existing).Error; err == nil {
			continue
		}
		if err := DB.Create(&building).Error; err != nil {
			return created, fmt.Errorf("failed to seed building %q: %w", building.Name, err)
		}
		created++
	}

	if created > 0 {
		if err := resetSequence("buildings"); err != nil {
			return created, err
		}
	}
	return created, nil
}

// seedOrganizations creates the default organizations with phones and
// activity links
func seedOrganizations() (int, error) {
	organizations := []models.Organization{
		{
			ID:          1,
			Name:        "ООО «Рога и Копыта»",
			Description: "Традиционные мясные и молочные продукты региона.",
			BuildingID:  3,
			Phones: []models.OrganizationPhone{
				{Number: "2-222-222", Label: "Приемная"},
				{Number: "8-923-666-13-13", Label: "Партнеры"},
			},
			Activities: []models.Activity{{ID: 2}, {ID: 3}},
		},
		{
			ID:          2,
			Name:        "ООО «Молочная ферма»",
			Description: "Фермерская молочная продукция.",
			BuildingID:  1,
			Phones: []models.OrganizationPhone{
				{Number: "3-333-333", Label: "Клиенты"},
				{Number: "+7-913-111-22-33", Label: "Оптовый отдел"},
			},
			Activities: []models.Activity{{ID: 3}},
		},
		{
			ID:          3,
			Name:        "ООО «Мясная лавка»",
			Description: "Мясная продукция собственного производства.",
			BuildingID:  1,
			Phones: []models.OrganizationPhone{
				{Number: "+7-913-222-33-44", Label: "Магазин"},
				{Number: "+7-913-333-44-55", Label: "Доставка"},
			},
			Activities: []models.Activity{{ID: 2}},
		},
		{
			ID:          4,
			Name:        "ООО «АвтоМир»",
			Description: "Продажа и обслуживание легковых автомобилей.",
			BuildingID:  2,
			Phones: []models.OrganizationPhone{
				{Number: "+7-921-444-55-66", Label: "Продажи"},
				{Number: "+7-921-555-66-77", Label: "Сервис"},
			},
			Activities: []models.Activity{{ID: 6}, {ID: 7}, {ID: 8}},
		},
		{
			ID:          5,
			Name:        "ООО «ТракСервис»",
			Description: "Сервис и продажа грузовых автомобилей.",
			BuildingID:  2,
			Phones: []models.OrganizationPhone{
				{Number: "+7-812-777-88-99", Label: "Приемка"},
				{Number: "+7-812-999-00-11", Label: "24/7"},
			},
			Activities: []models.Activity{{ID: 5}, {ID: 7}},
		},
	}

	created := 0
	for _, organization := range organizations {
		var existing models.Organization
		if err := DB.Where("id = ?", organization.ID).First(&existing).Error; err == nil {
			continue
		}
		// Link existing activities instead of inserting new ones
		if err := DB.Omit("Activities.*").Create(&organization).Error; err != nil {
			return created, fmt.Errorf("failed to seed organization %q: %w", organization.Name, err)
		}
		created++
	}

	if created > 0 {
		if err := resetSequence("organizations"); err != nil {
			return created, err
		}
		if err := resetSequence("organization_phones"); err != nil {
			return created, err
		}
	}
	return created, nil
}

// resetSequence realigns a serial sequence after explicit-id inserts
func resetSequence(table string) error {
	if err := DB.Exec(sequenceResetSQL(table)).Error; err != nil {
		return fmt.Errorf("failed to reset %s id sequence: %w", table, err)
	}
	return nil
}

// sequenceResetSQL moves the sequence to the highest id present, so the next
// insert cannot collide even after a partial re-seed
func sequenceResetSQL(table string) string {
	return fmt.Sprintf(
		"SELECT setval('%s_id_seq', COALESCE((SELECT MAX(id) FROM %s), 1), true)",
		table, table,
	)
}

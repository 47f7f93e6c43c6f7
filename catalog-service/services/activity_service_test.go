package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgcatalog-backend/shared/database/models"
)

func intPtr(v int) *int {
	return &v
}

// catalogActivities mirrors the seeded classification forest:
// Еда (1) → {Мясная продукция (2), Молочная продукция (3)}
// Автомобили (4) → {Грузовые (5), Легковые (6) → {Запчасти (7), Аксессуары (8)}}
func catalogActivities() []models.Activity {
	return []models.Activity{
		{ID: 1, Name: "Еда"},
		{ID: 2, Name: "Мясная продукция", ParentID: intPtr(1)},
		{ID: 3, Name: "Молочная продукция", ParentID: intPtr(1)},
		{ID: 4, Name: "Автомобили"},
		{ID: 5, Name: "Грузовые автомобили", ParentID: intPtr(4)},
		{ID: 6, Name: "Легковые автомобили", ParentID: intPtr(4)},
		{ID: 7, Name: "Запчасти", ParentID: intPtr(6)},
		{ID: 8, Name: "Аксессуары", ParentID: intPtr(6)},
	}
}

func TestDescendantIDsIncludesSelfAndChildren(t *testing.T) {
	idx := newActivityIndex(catalogActivities())

	assert.Equal(t, []int{1, 2, 3}, idx.descendantIDs(1))
	assert.Equal(t, []int{4, 5, 6, 7, 8}, idx.descendantIDs(4))
}

func TestDescendantIDsLeaf(t *testing.T) {
	idx := newActivityIndex(catalogActivities())

	assert.Equal(t, []int{7}, idx.descendantIDs(7))
}

func TestDescendantIDsUnknownActivity(t *testing.T) {
	idx := newActivityIndex(catalogActivities())

	assert.Empty(t, idx.descendantIDs(99))
}

func TestDescendantIDsSupersetOfChildClosures(t *testing.T) {
	idx := newActivityIndex(catalogActivities())

	parent := idx.descendantIDs(4)
	for _, childID := range []int{5, 6} {
		for _, id := range idx.descendantIDs(childID) {
			assert.Contains(t, parent, id)
		}
	}
}

func TestDescendantIDsTerminatesOnCorruptedChain(t *testing.T) {
	// Two activities pointing at each other must not loop forever
	activities := []models.Activity{
		{ID: 1, Name: "a", ParentID: intPtr(2)},
		{ID: 2, Name: "b", ParentID: intPtr(1)},
	}
	idx := newActivityIndex(activities)

	assert.Equal(t, []int{1, 2}, idx.descendantIDs(1))
}

func TestFindByNameEmptyQuerySkipsStore(t *testing.T) {
	// A nil db would panic on any query; an empty name must never reach it
	service := NewActivityService(nil)

	result, err := service.FindByName("")

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestBuildTreeFullForest(t *testing.T) {
	tree, err := buildActivityTree(catalogActivities(), nil, MaxActivityDepth)
	require.NoError(t, err)

	require.Len(t, tree, 2)
	assert.Equal(t, "Еда", tree[0].Name)
	assert.Equal(t, "Автомобили", tree[1].Name)

	assert.Len(t, tree[0].Children, 2)
	require.Len(t, tree[1].Children, 2)

	// Легковые автомобили carries two leaves at depth 3, exactly at the
	// limit, so the build must succeed
	cars := tree[1].Children[1]
	assert.Equal(t, "Легковые автомобили", cars.Name)
	assert.Len(t, cars.Children, 2)
}

func TestBuildTreeSubtree(t *testing.T) {
	tree, err := buildActivityTree(catalogActivities(), intPtr(6), MaxActivityDepth)
	require.NoError(t, err)

	require.Len(t, tree, 1)
	assert.Equal(t, 6, tree[0].ID)
	assert.Len(t, tree[0].Children, 2)
	assert.Empty(t, tree[0].Children[0].Children)
}

func TestBuildTreeUnknownRoot(t *testing.T) {
	tree, err := buildActivityTree(catalogActivities(), intPtr(42), MaxActivityDepth)
	require.NoError(t, err)

	assert.Empty(t, tree)
}

func TestBuildTreeFailsWhenTooShallow(t *testing.T) {
	// Any grandchild pushes a depth-1 build over the limit; the entire
	// build fails, no partial tree comes back
	tree, err := buildActivityTree(catalogActivities(), nil, 1)

	assert.ErrorIs(t, err, ErrMaxDepthExceeded)
	assert.Nil(t, tree)
}

func TestBuildTreeLeafAtDepthOne(t *testing.T) {
	tree, err := buildActivityTree(catalogActivities(), intPtr(7), 1)
	require.NoError(t, err)

	require.Len(t, tree, 1)
	assert.Empty(t, tree[0].Children)
}

func TestBuildTreeDeepChain(t *testing.T) {
	chain := []models.Activity{
		{ID: 1, Name: "level1"},
		{ID: 2, Name: "level2", ParentID: intPtr(1)},
		{ID: 3, Name: "level3", ParentID: intPtr(2)},
		{ID: 4, Name: "level4", ParentID: intPtr(3)},
	}

	_, err := buildActivityTree(chain, nil, 3)
	assert.ErrorIs(t, err, ErrMaxDepthExceeded)

	tree, err := buildActivityTree(chain, nil, 4)
	require.NoError(t, err)
	require.Len(t, tree, 1)

	node := tree[0]
	for _, name := range []string{"level2", "level3", "level4"} {
		require.Len(t, node.Children, 1)
		node = node.Children[0]
		assert.Equal(t, name, node.Name)
	}
	assert.Empty(t, node.Children)
}

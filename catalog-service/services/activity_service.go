package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"orgcatalog-backend/shared/database/models"
)

// MaxActivityDepth is the deepest nesting level the tree endpoints accept.
const MaxActivityDepth = 3

// ErrMaxDepthExceeded is returned by BuildTree when any reachable node sits
// deeper than the requested max depth. The whole build fails, no partial
// tree is returned.
var ErrMaxDepthExceeded = errors.New("maximum activity depth exceeded")

// ActivityNode is a single node of the materialized activity tree.
type ActivityNode struct {
	ID       int            `json:"id"`
	Name     string         `json:"name"`
	ParentID *int           `json:"parent_id"`
	Children []ActivityNode `json:"children"`
}

// ActivityService answers hierarchy queries over the activity classification.
type ActivityService struct {
	db *gorm.DB
}

// NewActivityService returns a configured activity service instance
func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

// DescendantIDs returns the id of the given activity plus the ids of all its
// descendants, in breadth-first order. An unknown id yields an empty slice.
func (s *ActivityService) DescendantIDs(activityID int) ([]int, error) {
	activities, err := s.fetchAll()
	if err != nil {
		return nil, err
	}
	return newActivityIndex(activities).descendantIDs(activityID), nil
}

// BuildTree materializes the activity tree up to maxDepth levels. A nil
// rootID renders every top-level activity; an unknown rootID yields an empty
// slice. Depth counting starts at 1 for the root level and the build fails
// with ErrMaxDepthExceeded as soon as any branch would go deeper than
// maxDepth.
func (s *ActivityService) BuildTree(rootID *int, maxDepth int) ([]ActivityNode, error) {
	activities, err := s.fetchAll()
	if err != nil {
		return nil, err
	}
	return buildActivityTree(activities, rootID, maxDepth)
}

// Get returns a single activity by id, or nil when it does not exist
func (s *ActivityService) Get(activityID int) (*models.Activity, error) {
	var activity models.Activity
	if err := s.db.First(&activity, activityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load activity %d: %w", activityID, err)
	}
	return &activity, nil
}

// FindByName returns activities whose name contains the query,
// case-insensitively. An empty query matches nothing.
func (s *ActivityService) FindByName(name string) ([]models.Activity, error) {
	if name == "" {
		return []models.Activity{}, nil
	}

	var activities []models.Activity
	if err := s.db.Where("name ILIKE ?", "%"+name+"%").Order("id").Find(&activities).Error; err != nil {
		return nil, fmt.Errorf("failed to search activities: %w", err)
	}
	return activities, nil
}

// fetchAll reads the complete activity set in one query. Both the closure
// and the tree build work on this snapshot, so no second round trip is
// needed.
func (s *ActivityService) fetchAll() ([]models.Activity, error) {
	var activities []models.Activity
	if err := s.db.Order("id").Find(&activities).Error; err != nil {
		return nil, fmt.Errorf("failed to load activities: %w", err)
	}
	return activities, nil
}

// activityIndex holds the adjacency view of one activity snapshot
type activityIndex struct {
	byID     map[int]models.Activity
	children map[int][]models.Activity
	roots    []models.Activity
}

func newActivityIndex(activities []models.Activity) *activityIndex {
	idx := &activityIndex{
		byID:     make(map[int]models.Activity, len(activities)),
		children: make(map[int][]models.Activity),
	}
	for _, activity := range activities {
		idx.byID[activity.ID] = activity
		if activity.ParentID == nil {
			idx.roots = append(idx.roots, activity)
		} else {
			idx.children[*activity.ParentID] = append(idx.children[*activity.ParentID], activity)
		}
	}
	return idx
}

// descendantIDs expands the parent→child closure starting at rootID. The
// visited set guards against a corrupted parent chain looping forever.
func (idx *activityIndex) descendantIDs(rootID int) []int {
	ids := []int{}
	if _, ok := idx.byID[rootID]; !ok {
		return ids
	}

	visited := map[int]bool{rootID: true}
	queue := []int{rootID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		ids = append(ids, id)

		for _, child := range idx.children[id] {
			if visited[child.ID] {
				continue
			}
			visited[child.ID] = true
			queue = append(queue, child.ID)
		}
	}
	return ids
}

// buildActivityTree renders the forest (or a single subtree) from a flat
// activity snapshot
func buildActivityTree(activities []models.Activity, rootID *int, maxDepth int) ([]ActivityNode, error) {
	idx := newActivityIndex(activities)

	var roots []models.Activity
	if rootID == nil {
		roots = idx.roots
	} else {
		activity, ok := idx.byID[*rootID]
		if !ok {
			return []ActivityNode{}, nil
		}
		roots = []models.Activity{activity}
	}

	nodes := []ActivityNode{}
	for _, root := range roots {
		node, err := idx.buildNode(root, 1, maxDepth)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func (idx *activityIndex) buildNode(activity models.Activity, depth, maxDepth int) (ActivityNode, error) {
	if depth > maxDepth {
		return ActivityNode{}, fmt.Errorf("%w: depth %d requested with max_depth %d", ErrMaxDepthExceeded, depth, maxDepth)
	}

	node := ActivityNode{
		ID:       activity.ID,
		Name:     activity.Name,
		ParentID: activity.ParentID,
		Children: []ActivityNode{},
	}
	for _, child := range idx.children[activity.ID] {
		childNode, err := idx.buildNode(child, depth+1, maxDepth)
		if err != nil {
			return ActivityNode{}, err
		}
		node.Children = append(node.Children, childNode)
	}
	return node, nil
}

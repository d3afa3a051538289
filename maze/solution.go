package maze

import (
	"cmp"
	"errors"
	"slices"
	"time"

	"github.com/beka-birhanu/maze-solver-api/search"
	"github.com/google/uuid"
)

// Solution is the stored outcome of one search over one maze.
type Solution struct {
	ID            uuid.UUID     `bson:"_id"`
	MazeID        uuid.UUID     `bson:"mazeId"`
	RequestedBy   uuid.UUID     `bson:"requestedBy"`
	Strategy      string        `bson:"strategy"`
	Found         bool          `bson:"found"`
	Actions       []string      `bson:"actions"`
	Path          []search.Cell `bson:"path"`
	Explored      []search.Cell `bson:"explored"`
	ExploredCount int           `bson:"exploredCount"`
	CreatedAt     time.Time     `bson:"createdAt"`
}

// NewSolution flattens a search result into its stored form. The
// explored snapshot is sorted row-major so equal searches produce equal
// documents.
func NewSolution(id, mazeID, requestedBy uuid.UUID, strategy search.Strategy, res *search.Result) *Solution {
	actions := make([]string, 0, len(res.Steps))
	path := make([]search.Cell, 0, len(res.Steps))
	for _, step := range res.Steps {
		actions = append(actions, step.Action.String())
		path = append(path, step.To)
	}

	explored := make([]search.Cell, 0, len(res.Explored))
	for c := range res.Explored {
		explored = append(explored, c)
	}
	slices.SortFunc(explored, func(a, b search.Cell) int {
		if a.Row != b.Row {
			return cmp.Compare(a.Row, b.Row)
		}
		return cmp.Compare(a.Col, b.Col)
	})

	return &Solution{
		ID:            id,
		MazeID:        mazeID,
		RequestedBy:   requestedBy,
		Strategy:      strategy.String(),
		Found:         res.Found,
		Actions:       actions,
		Path:          path,
		Explored:      explored,
		ExploredCount: len(explored),
		CreatedAt:     time.Now().UTC(),
	}
}

// Result rebuilds the in-memory search result a renderer consumes.
func (s *Solution) Result() (*search.Result, error) {
	if len(s.Actions) != len(s.Path) {
		return nil, errors.New("solution actions and path lengths differ")
	}

	steps := make([]search.Move, 0, len(s.Actions))
	for i, name := range s.Actions {
		action, err := search.ParseAction(name)
		if err != nil {
			return nil, err
		}
		steps = append(steps, search.Move{Action: action, To: s.Path[i]})
	}

	explored := make(map[search.Cell]struct{}, len(s.Explored))
	for _, c := range s.Explored {
		explored[c] = struct{}{}
	}

	return &search.Result{Found: s.Found, Steps: steps, Explored: explored}, nil
}

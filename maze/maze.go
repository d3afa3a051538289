package maze

import (
	"strings"
	"time"

	"github.com/beka-birhanu/maze-solver-api/search"
	"github.com/google/uuid"
)

const defaultName = "untitled maze"

// Maze is the stored form of a maze: the raw text layout plus ownership
// and dimensions.
type Maze struct {
	ID        uuid.UUID `bson:"_id"`
	OwnerID   uuid.UUID `bson:"ownerId"`
	Name      string    `bson:"name"`
	Layout    string    `bson:"layout"`
	Rows      int       `bson:"rows"`
	Cols      int       `bson:"cols"`
	CreatedAt time.Time `bson:"createdAt"`
}

// Config holds parameters for creating a Maze.
type Config struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Name    string
	Layout  string
}

// New creates a Maze after checking that the layout parses into a valid
// grid, so a stored maze is always solvable or provably unsolvable, but
// never malformed.
func New(config Config) (*Maze, error) {
	grid, err := Parse([]byte(config.Layout))
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(config.Name)
	if name == "" {
		name = defaultName
	}

	return &Maze{
		ID:        config.ID,
		OwnerID:   config.OwnerID,
		Name:      name,
		Layout:    config.Layout,
		Rows:      grid.Rows(),
		Cols:      grid.Cols(),
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Grid parses the stored layout back into a search grid.
func (m *Maze) Grid() (*search.Grid, error) {
	return Parse([]byte(m.Layout))
}

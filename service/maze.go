package service

import (
	"fmt"

	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/beka-birhanu/maze-solver-api/service/i"
	"github.com/google/uuid"
)

// MazeManager stores uploaded mazes and generates random ones.
type MazeManager struct {
	mazeRepo i.MazeRepo
	logger   i.Logger
}

// NewMazeManager creates a MazeManager backed by the given maze store.
func NewMazeManager(mazeRepo i.MazeRepo, logger i.Logger) (i.MazeManager, error) {
	return &MazeManager{
		mazeRepo: mazeRepo,
		logger:   logger,
	}, nil
}

// Create validates and stores an uploaded maze layout.
func (m *MazeManager) Create(ownerID uuid.UUID, name, layout string) (*maze.Maze, error) {
	mz, err := maze.New(maze.Config{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Name:    name,
		Layout:  layout,
	})
	if err != nil {
		return nil, err
	}

	if err := m.mazeRepo.Save(mz); err != nil {
		m.logger.Error(fmt.Sprintf("Saving uploaded maze: %s", err))
		return nil, err
	}

	m.logger.Info(fmt.Sprintf("Stored maze %s (%dx%d) for user %s", mz.ID, mz.Rows, mz.Cols, ownerID))
	return mz, nil
}

// Generate creates and stores a random rows-by-cols maze.
func (m *MazeManager) Generate(ownerID uuid.UUID, name string, rows, cols int, seed int64) (*maze.Maze, error) {
	grid, err := maze.Generate(rows, cols, seed)
	if err != nil {
		return nil, err
	}

	mz, err := maze.New(maze.Config{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Name:    name,
		Layout:  maze.Layout(grid),
	})
	if err != nil {
		return nil, err
	}

	if err := m.mazeRepo.Save(mz); err != nil {
		m.logger.Error(fmt.Sprintf("Saving generated maze: %s", err))
		return nil, err
	}

	m.logger.Info(fmt.Sprintf("Generated maze %s (%dx%d) for user %s", mz.ID, mz.Rows, mz.Cols, ownerID))
	return mz, nil
}

// ByID retrieves a stored maze.
func (m *MazeManager) ByID(id uuid.UUID) (*maze.Maze, error) {
	return m.mazeRepo.ByID(id)
}

// ByOwner retrieves every maze a user has stored.
func (m *MazeManager) ByOwner(ownerID uuid.UUID) ([]*maze.Maze, error) {
	return m.mazeRepo.ByOwner(ownerID)
}

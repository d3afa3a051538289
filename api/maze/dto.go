// Package mazeapi provides structures and utilities for maze storage,
// solving and rendering requests and responses.
package mazeapi

import (
	"time"

	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/beka-birhanu/maze-solver-api/search"
	"github.com/google/uuid"
)

// CreateMazeRequest represents a request to store an uploaded maze.
type CreateMazeRequest struct {
	Name   string `json:"name"`
	Layout string `json:"layout" binding:"required"`
}

// GenerateMazeRequest represents a request to generate a random maze.
type GenerateMazeRequest struct {
	Name string `json:"name"`
	Rows int    `json:"rows" binding:"required"`
	Cols int    `json:"cols" binding:"required"`
	Seed int64  `json:"seed"`
}

// SolveMazeRequest represents a request to solve a stored maze.
type SolveMazeRequest struct {
	Strategy string `json:"strategy" binding:"required"`
}

// ScheduleSolveRequest represents a request to queue a background solve.
type ScheduleSolveRequest struct {
	MazeID   uuid.UUID `json:"maze_id" binding:"required"`
	Strategy string    `json:"strategy" binding:"required"`
}

// MazeResponse is the stored view of a maze.
type MazeResponse struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Name      string    `json:"name"`
	Layout    string    `json:"layout"`
	Rows      int       `json:"rows"`
	Cols      int       `json:"cols"`
	CreatedAt time.Time `json:"created_at"`
}

// NewMazeResponse maps a stored maze to its response form.
func NewMazeResponse(m *maze.Maze) MazeResponse {
	return MazeResponse{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		Name:      m.Name,
		Layout:    m.Layout,
		Rows:      m.Rows,
		Cols:      m.Cols,
		CreatedAt: m.CreatedAt,
	}
}

// CellResponse is one grid coordinate.
type CellResponse struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// SolutionResponse is the stored view of a solve outcome.
type SolutionResponse struct {
	ID            uuid.UUID      `json:"id"`
	MazeID        uuid.UUID      `json:"maze_id"`
	Strategy      string         `json:"strategy"`
	Found         bool           `json:"found"`
	Actions       []string       `json:"actions"`
	Path          []CellResponse `json:"path"`
	Explored      []CellResponse `json:"explored"`
	ExploredCount int            `json:"explored_count"`
	CreatedAt     time.Time      `json:"created_at"`
}

// NewSolutionResponse maps a stored solution to its response form.
func NewSolutionResponse(s *maze.Solution) SolutionResponse {
	return SolutionResponse{
		ID:            s.ID,
		MazeID:        s.MazeID,
		Strategy:      s.Strategy,
		Found:         s.Found,
		Actions:       s.Actions,
		Path:          toCellResponses(s.Path),
		Explored:      toCellResponses(s.Explored),
		ExploredCount: s.ExploredCount,
		CreatedAt:     s.CreatedAt,
	}
}

// JobResponse carries the ID a queued solve will be stored under.
type JobResponse struct {
	JobID uuid.UUID `json:"job_id"`
}

func toCellResponses(cells []search.Cell) []CellResponse {
	result := make([]CellResponse, 0, len(cells))
	for _, c := range cells {
		result = append(result, CellResponse{Row: c.Row, Col: c.Col})
	}
	return result
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/beka-birhanu/maze-solver-api/identity"
	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/beka-birhanu/maze-solver-api/search"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const solverTestLayout = "A  \n # \n  B"

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

type solverFixture struct {
	manager      *SolveManager
	mazeRepo     *memMazeRepo
	solutionRepo *memSolutionRepo
	userRepo     *memUserRepo
	cache        *memCache
	mazeID       uuid.UUID
	userID       uuid.UUID
}

func newSolverFixture(t *testing.T) *solverFixture {
	mazeRepo := newMemMazeRepo()
	solutionRepo := newMemSolutionRepo()
	userRepo := newMemUserRepo()
	cache := newMemCache()

	mz, err := maze.New(maze.Config{
		ID:      uuid.New(),
		OwnerID: uuid.New(),
		Name:    "fixture",
		Layout:  solverTestLayout,
	})
	assert.NoError(t, err)
	assert.NoError(t, mazeRepo.Save(mz))

	userID := uuid.New()
	assert.NoError(t, userRepo.Save(&identity.User{ID: userID, Username: "solver_test"}))

	manager, err := NewSolveManager(&SolveManagerConfig{
		MazeRepo:     mazeRepo,
		SolutionRepo: solutionRepo,
		UserRepo:     userRepo,
		Cache:        cache,
		CacheTTL:     time.Minute,
		Logger:       nopLogger{},
	})
	assert.NoError(t, err)

	return &solverFixture{
		manager:      manager.(*SolveManager),
		mazeRepo:     mazeRepo,
		solutionRepo: solutionRepo,
		userRepo:     userRepo,
		cache:        cache,
		mazeID:       mz.ID,
		userID:       userID,
	}
}

func TestSolveManagerSolve(t *testing.T) {
	ctx := context.Background()

	t.Run("solves and persists", func(t *testing.T) {
		f := newSolverFixture(t)
		solutionID := uuid.New()

		sol, err := f.manager.Solve(ctx, solutionID, f.mazeID, f.userID, search.BFS)

		assert.NoError(t, err)
		assert.True(t, sol.Found)
		assert.Equal(t, solutionID, sol.ID)
		assert.Equal(t, "bfs", sol.Strategy)

		stored, err := f.solutionRepo.ByID(solutionID)
		assert.NoError(t, err)
		assert.Equal(t, sol.Actions, stored.Actions)

		user, err := f.userRepo.ByID(f.userID)
		assert.NoError(t, err)
		assert.Equal(t, 1, user.SolvedCount)
	})

	t.Run("reuses the cached outcome", func(t *testing.T) {
		f := newSolverFixture(t)

		first, err := f.manager.Solve(ctx, uuid.New(), f.mazeID, f.userID, search.BFS)
		assert.NoError(t, err)

		// The maze disappears, so only the cache can answer now.
		delete(f.mazeRepo.mazes, f.mazeID)

		secondID := uuid.New()
		second, err := f.manager.Solve(ctx, secondID, f.mazeID, f.userID, search.BFS)

		assert.NoError(t, err)
		assert.Equal(t, secondID, second.ID)
		assert.Equal(t, first.Actions, second.Actions)
		assert.Equal(t, first.Explored, second.Explored)

		_, err = f.solutionRepo.ByID(secondID)
		assert.NoError(t, err)

		user, err := f.userRepo.ByID(f.userID)
		assert.NoError(t, err)
		assert.Equal(t, 2, user.SolvedCount)
	})

	t.Run("strategies are cached separately", func(t *testing.T) {
		f := newSolverFixture(t)

		bfs, err := f.manager.Solve(ctx, uuid.New(), f.mazeID, f.userID, search.BFS)
		assert.NoError(t, err)
		dfs, err := f.manager.Solve(ctx, uuid.New(), f.mazeID, f.userID, search.DFS)
		assert.NoError(t, err)

		assert.Equal(t, "bfs", bfs.Strategy)
		assert.Equal(t, "dfs", dfs.Strategy)
		assert.GreaterOrEqual(t, len(dfs.Actions), len(bfs.Actions))
	})

	t.Run("unknown maze", func(t *testing.T) {
		f := newSolverFixture(t)

		_, err := f.manager.Solve(ctx, uuid.New(), uuid.New(), f.userID, search.BFS)
		assert.Error(t, err)
	})
}

func TestSolveManagerRenderPNG(t *testing.T) {
	ctx := context.Background()

	t.Run("bare maze", func(t *testing.T) {
		f := newSolverFixture(t)

		png, err := f.manager.RenderPNG(ctx, f.mazeID, f.userID, "", false)

		assert.NoError(t, err)
		assert.Equal(t, pngMagic, png[:len(pngMagic)])
	})

	t.Run("solved maze persists the solution", func(t *testing.T) {
		f := newSolverFixture(t)

		png, err := f.manager.RenderPNG(ctx, f.mazeID, f.userID, "bfs", true)

		assert.NoError(t, err)
		assert.Equal(t, pngMagic, png[:len(pngMagic)])

		solutions, err := f.solutionRepo.ByMaze(f.mazeID)
		assert.NoError(t, err)
		assert.Len(t, solutions, 1)
	})

	t.Run("rendered images are cached", func(t *testing.T) {
		f := newSolverFixture(t)

		first, err := f.manager.RenderPNG(ctx, f.mazeID, f.userID, "", false)
		assert.NoError(t, err)

		delete(f.mazeRepo.mazes, f.mazeID)

		second, err := f.manager.RenderPNG(ctx, f.mazeID, f.userID, "", false)
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("unknown strategy", func(t *testing.T) {
		f := newSolverFixture(t)

		_, err := f.manager.RenderPNG(ctx, f.mazeID, f.userID, "astar", false)
		assert.ErrorIs(t, err, search.ErrUnknownStrategy)
	})
}

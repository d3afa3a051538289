package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/beka-birhanu/maze-solver-api/render"
	"github.com/beka-birhanu/maze-solver-api/search"
	"github.com/beka-birhanu/maze-solver-api/service/i"
	"github.com/google/uuid"
)

const (
	solutionCacheKeyFmt = "solver:solution:%s:%s"
	renderCacheKeyFmt   = "solver:render:%s:%s:%t"
)

// SolveManager runs searches over stored mazes, persists the outcomes
// and keeps a cache in front of the search.
type SolveManager struct {
	mazeRepo     i.MazeRepo
	solutionRepo i.SolutionRepo
	userRepo     i.UserRepo
	cache        i.Cache
	cacheTTL     time.Duration
	logger       i.Logger
}

// SolveManagerConfig holds the dependencies of a SolveManager.
type SolveManagerConfig struct {
	MazeRepo     i.MazeRepo
	SolutionRepo i.SolutionRepo
	UserRepo     i.UserRepo
	Cache        i.Cache
	CacheTTL     time.Duration
	Logger       i.Logger
}

// NewSolveManager creates a SolveManager with the provided configuration.
func NewSolveManager(c *SolveManagerConfig) (i.SolveManager, error) {
	return &SolveManager{
		mazeRepo:     c.MazeRepo,
		solutionRepo: c.SolutionRepo,
		userRepo:     c.UserRepo,
		cache:        c.Cache,
		cacheTTL:     c.CacheTTL,
		logger:       c.Logger,
	}, nil
}

// Solve runs the strategy over the maze and stores the outcome under
// solutionID. An outcome cached for the same maze and strategy is reused
// instead of searching again; the search itself is deterministic, so the
// reused walk is the one a fresh search would take.
func (s *SolveManager) Solve(ctx context.Context, solutionID, mazeID, requestedBy uuid.UUID, strategy search.Strategy) (*maze.Solution, error) {
	cacheKey := fmt.Sprintf(solutionCacheKeyFmt, mazeID, strategy)

	if cached := s.cachedSolution(ctx, cacheKey); cached != nil {
		clone := *cached
		clone.ID = solutionID
		clone.RequestedBy = requestedBy
		clone.CreatedAt = time.Now().UTC()

		if err := s.solutionRepo.Save(&clone); err != nil {
			return nil, err
		}

		s.recordSolve(requestedBy)
		s.logger.Info(fmt.Sprintf("Reused cached %s solution of maze %s", strategy, mazeID))
		return &clone, nil
	}

	mz, err := s.mazeRepo.ByID(mazeID)
	if err != nil {
		return nil, err
	}

	grid, err := mz.Grid()
	if err != nil {
		return nil, err
	}

	res, err := search.Solve(grid, strategy)
	if err != nil {
		return nil, err
	}

	sol := maze.NewSolution(solutionID, mazeID, requestedBy, strategy, res)
	if err := s.solutionRepo.Save(sol); err != nil {
		return nil, err
	}

	s.cacheSolution(ctx, cacheKey, sol)
	s.recordSolve(requestedBy)
	s.logger.Info(fmt.Sprintf("Solved maze %s with %s: found=%t steps=%d explored=%d", mazeID, strategy, sol.Found, len(sol.Actions), sol.ExploredCount))
	return sol, nil
}

// SolutionByID retrieves a stored solution.
func (s *SolveManager) SolutionByID(id uuid.UUID) (*maze.Solution, error) {
	return s.solutionRepo.ByID(id)
}

// RenderPNG rasterizes a maze, solving it first when strategy names one.
func (s *SolveManager) RenderPNG(ctx context.Context, mazeID, requestedBy uuid.UUID, strategy string, showExplored bool) ([]byte, error) {
	cacheKey := fmt.Sprintf(renderCacheKeyFmt, mazeID, strategy, showExplored)
	if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != nil {
		return cached, nil
	}

	mz, err := s.mazeRepo.ByID(mazeID)
	if err != nil {
		return nil, err
	}

	grid, err := mz.Grid()
	if err != nil {
		return nil, err
	}

	var res *search.Result
	if strategy != "" {
		st, err := search.ParseStrategy(strategy)
		if err != nil {
			return nil, err
		}

		sol, err := s.Solve(ctx, uuid.New(), mazeID, requestedBy, st)
		if err != nil {
			return nil, err
		}

		if res, err = sol.Result(); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := render.WritePNG(&buf, grid, res, showExplored); err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKey, buf.Bytes(), s.cacheTTL); err != nil {
		s.logger.Warning(fmt.Sprintf("Caching rendered maze %s: %s", mazeID, err))
	}

	return buf.Bytes(), nil
}

// cachedSolution returns the cached solution for the key, or nil on a
// miss or any cache problem.
func (s *SolveManager) cachedSolution(ctx context.Context, key string) *maze.Solution {
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warning(fmt.Sprintf("Reading solution cache: %s", err))
		return nil
	}
	if raw == nil {
		return nil
	}

	var sol maze.Solution
	if err := json.Unmarshal(raw, &sol); err != nil {
		s.logger.Warning(fmt.Sprintf("Decoding cached solution: %s", err))
		return nil
	}
	return &sol
}

func (s *SolveManager) cacheSolution(ctx context.Context, key string, sol *maze.Solution) {
	raw, err := json.Marshal(sol)
	if err != nil {
		s.logger.Warning(fmt.Sprintf("Encoding solution for cache: %s", err))
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.cacheTTL); err != nil {
		s.logger.Warning(fmt.Sprintf("Caching solution: %s", err))
	}
}

// recordSolve bumps the requesting user's solve counter. The solution is
// already stored, so a failure here only loses a stat, not the solve.
func (s *SolveManager) recordSolve(userID uuid.UUID) {
	user, err := s.userRepo.ByID(userID)
	if err != nil {
		s.logger.Warning(fmt.Sprintf("Loading user %s to record solve: %s", userID, err))
		return
	}

	user.RecordSolve()
	if err := s.userRepo.Save(user); err != nil {
		s.logger.Warning(fmt.Sprintf("Recording solve for user %s: %s", userID, err))
	}
}

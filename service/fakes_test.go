package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/beka-birhanu/maze-solver-api/identity"
	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/beka-birhanu/maze-solver-api/search"
	"github.com/google/uuid"
)

type nopLogger struct{}

func (nopLogger) Info(string)    {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}

type memUserRepo struct {
	users map[uuid.UUID]*identity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*identity.User)}
}

func (r *memUserRepo) Save(user *identity.User) error {
	copy := *user
	r.users[user.ID] = &copy
	return nil
}

func (r *memUserRepo) ByID(id uuid.UUID) (*identity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.New("user not found")
	}
	copy := *user
	return &copy, nil
}

func (r *memUserRepo) ByUsername(username string) (*identity.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			copy := *user
			return &copy, nil
		}
	}
	return nil, errors.New("user not found")
}

type memMazeRepo struct {
	mazes map[uuid.UUID]*maze.Maze
}

func newMemMazeRepo() *memMazeRepo {
	return &memMazeRepo{mazes: make(map[uuid.UUID]*maze.Maze)}
}

func (r *memMazeRepo) Save(m *maze.Maze) error {
	r.mazes[m.ID] = m
	return nil
}

func (r *memMazeRepo) ByID(id uuid.UUID) (*maze.Maze, error) {
	m, ok := r.mazes[id]
	if !ok {
		return nil, errors.New("maze not found")
	}
	return m, nil
}

func (r *memMazeRepo) ByOwner(ownerID uuid.UUID) ([]*maze.Maze, error) {
	var result []*maze.Maze
	for _, m := range r.mazes {
		if m.OwnerID == ownerID {
			result = append(result, m)
		}
	}
	return result, nil
}

type memSolutionRepo struct {
	solutions map[uuid.UUID]*maze.Solution
}

func newMemSolutionRepo() *memSolutionRepo {
	return &memSolutionRepo{solutions: make(map[uuid.UUID]*maze.Solution)}
}

func (r *memSolutionRepo) Save(s *maze.Solution) error {
	r.solutions[s.ID] = s
	return nil
}

func (r *memSolutionRepo) ByID(id uuid.UUID) (*maze.Solution, error) {
	s, ok := r.solutions[id]
	if !ok {
		return nil, errors.New("solution not found")
	}
	return s, nil
}

func (r *memSolutionRepo) ByMaze(mazeID uuid.UUID) ([]*maze.Solution, error) {
	var result []*maze.Solution
	for _, s := range r.solutions {
		if s.MazeID == mazeID {
			result = append(result, s)
		}
	}
	return result, nil
}

type memCache struct {
	entries map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string][]byte)}
}

func (c *memCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.entries[key] = value
	return nil
}

func (c *memCache) Get(_ context.Context, key string) ([]byte, error) {
	return c.entries[key], nil
}

type scoredMember struct {
	score  float64
	member string
}

type memSortedQueue struct {
	queues map[string][]scoredMember
}

func newMemSortedQueue() *memSortedQueue {
	return &memSortedQueue{queues: make(map[string][]scoredMember)}
}

func (q *memSortedQueue) Enqueue(_ context.Context, queueKey string, score float64, member string) error {
	q.queues[queueKey] = append(q.queues[queueKey], scoredMember{score: score, member: member})
	sort.SliceStable(q.queues[queueKey], func(a, b int) bool {
		return q.queues[queueKey][a].score < q.queues[queueKey][b].score
	})
	return nil
}

func (q *memSortedQueue) DequeTops(_ context.Context, queueKey string, amount int64) ([]string, error) {
	queued := q.queues[queueKey]
	n := int(amount)
	if n > len(queued) {
		n = len(queued)
	}

	var members []string
	for _, entry := range queued[:n] {
		members = append(members, entry.member)
	}
	q.queues[queueKey] = queued[n:]
	return members, nil
}

func (q *memSortedQueue) Count(_ context.Context, queueKey string) int64 {
	return int64(len(q.queues[queueKey]))
}

// recordingSolver captures the jobs a queue hands to it.
type recordingSolver struct {
	mu     sync.Mutex
	solved []uuid.UUID
}

func (r *recordingSolver) Solve(_ context.Context, solutionID, mazeID, requestedBy uuid.UUID, _ search.Strategy) (*maze.Solution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.solved = append(r.solved, solutionID)
	return &maze.Solution{ID: solutionID, MazeID: mazeID, RequestedBy: requestedBy}, nil
}

func (r *recordingSolver) SolutionByID(uuid.UUID) (*maze.Solution, error) {
	return nil, errors.New("solution not found")
}

func (r *recordingSolver) RenderPNG(context.Context, uuid.UUID, uuid.UUID, string, bool) ([]byte, error) {
	return nil, errors.New("not rendered")
}

func (r *recordingSolver) solvedIDs() []uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]uuid.UUID(nil), r.solved...)
}

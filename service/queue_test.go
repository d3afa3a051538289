package service

import (
	"context"
	"testing"
	"time"

	"github.com/beka-birhanu/maze-solver-api/search"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSolveJobCodec(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		job := &solveJob{
			ID:          uuid.New(),
			MazeID:      uuid.New(),
			RequestedBy: uuid.New(),
			Strategy:    search.DFS,
		}

		decoded, err := decodeSolveJob(job.encode())

		assert.NoError(t, err)
		assert.Equal(t, job, decoded)
	})

	t.Run("malformed members", func(t *testing.T) {
		members := map[string]string{
			"garbage":      "not a job at all",
			"short record": uuid.New().String() + ":" + uuid.New().String(),
			"bad uuid":     "nope:" + uuid.New().String() + ":" + uuid.New().String() + ":bfs",
			"bad strategy": uuid.New().String() + ":" + uuid.New().String() + ":" + uuid.New().String() + ":astar",
		}

		for name, raw := range members {
			t.Run(name, func(t *testing.T) {
				_, err := decodeSolveJob(raw)
				assert.ErrorIs(t, err, ErrBadJobEncoding)
			})
		}
	})
}

func TestSolveQueue(t *testing.T) {
	ctx := context.Background()

	t.Run("submit queues one job per request", func(t *testing.T) {
		queue := newMemSortedQueue()
		sq, err := NewSolveQueue(queue, &recordingSolver{}, nopLogger{}, nil)
		assert.NoError(t, err)

		firstID, err := sq.Submit(ctx, uuid.New(), uuid.New(), search.BFS)
		assert.NoError(t, err)
		secondID, err := sq.Submit(ctx, uuid.New(), uuid.New(), search.DFS)
		assert.NoError(t, err)

		assert.NotEqual(t, firstID, secondID)
		assert.Equal(t, int64(2), queue.Count(ctx, sq.queueKey()))
	})

	t.Run("drain runs jobs in submission order", func(t *testing.T) {
		queue := newMemSortedQueue()
		solver := &recordingSolver{}
		sq, err := NewSolveQueue(queue, solver, nopLogger{}, nil)
		assert.NoError(t, err)

		firstID, err := sq.Submit(ctx, uuid.New(), uuid.New(), search.BFS)
		assert.NoError(t, err)
		secondID, err := sq.Submit(ctx, uuid.New(), uuid.New(), search.BFS)
		assert.NoError(t, err)

		sq.drain(ctx)

		assert.Equal(t, []uuid.UUID{firstID, secondID}, solver.solvedIDs())
		assert.Equal(t, int64(0), queue.Count(ctx, sq.queueKey()))
	})

	t.Run("drain drops undecodable members", func(t *testing.T) {
		queue := newMemSortedQueue()
		solver := &recordingSolver{}
		sq, err := NewSolveQueue(queue, solver, nopLogger{}, nil)
		assert.NoError(t, err)

		assert.NoError(t, queue.Enqueue(ctx, sq.queueKey(), 1, "not a job"))
		jobID, err := sq.Submit(ctx, uuid.New(), uuid.New(), search.BFS)
		assert.NoError(t, err)

		sq.drain(ctx)

		assert.Equal(t, []uuid.UUID{jobID}, solver.solvedIDs())
	})

	t.Run("workers drain submitted jobs", func(t *testing.T) {
		queue := newMemSortedQueue()
		solver := &recordingSolver{}
		sq, err := NewSolveQueue(queue, solver, nopLogger{}, &SolveQueueOptions{
			PollInterval: 10 * time.Millisecond,
		})
		assert.NoError(t, err)

		jobID, err := sq.Submit(ctx, uuid.New(), uuid.New(), search.BFS)
		assert.NoError(t, err)

		go sq.Start()
		defer sq.Stop()

		assert.Eventually(t, func() bool {
			ids := solver.solvedIDs()
			return len(ids) == 1 && ids[0] == jobID
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("stop is idempotent", func(t *testing.T) {
		sq, err := NewSolveQueue(newMemSortedQueue(), &recordingSolver{}, nopLogger{}, nil)
		assert.NoError(t, err)

		sq.Stop()
		sq.Stop()
	})
}

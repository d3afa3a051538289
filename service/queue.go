package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/beka-birhanu/maze-solver-api/search"
	"github.com/beka-birhanu/maze-solver-api/service/i"
	"github.com/google/uuid"
)

const (
	defaultQueuePrefix  = "solver"
	defaultBatchSize    = 10
	defaultPollInterval = time.Second
	jobQueueKeyFmt      = "%s:jobs"
	jobFieldCount       = 4
)

var (
	ErrBadJobEncoding = errors.New("malformed solve job")
)

// solveJob is one queued solve request.
type solveJob struct {
	ID          uuid.UUID
	MazeID      uuid.UUID
	RequestedBy uuid.UUID
	Strategy    search.Strategy
}

// encode packs the job into the queue member string. UUIDs never
// contain a colon, so a colon-separated record is unambiguous.
func (j *solveJob) encode() string {
	return strings.Join([]string{
		j.ID.String(),
		j.MazeID.String(),
		j.RequestedBy.String(),
		j.Strategy.String(),
	}, ":")
}

func decodeSolveJob(raw string) (*solveJob, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != jobFieldCount {
		return nil, fmt.Errorf("%w: %q", ErrBadJobEncoding, raw)
	}

	id, err := uuid.Parse(parts[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBadJobEncoding, raw)
	}
	mazeID, err := uuid.Parse(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBadJobEncoding, raw)
	}
	requestedBy, err := uuid.Parse(parts[2])
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBadJobEncoding, raw)
	}
	strategy, err := search.ParseStrategy(parts[3])
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBadJobEncoding, raw)
	}

	return &solveJob{
		ID:          id,
		MazeID:      mazeID,
		RequestedBy: requestedBy,
		Strategy:    strategy,
	}, nil
}

// SolveQueueOptions tunes the queue key and worker behavior.
type SolveQueueOptions struct {
	Prefix       string
	BatchSize    int64
	PollInterval time.Duration
}

// SolveQueue schedules solve jobs on a sorted queue and drains them with
// background workers.
type SolveQueue struct {
	sortedQueue i.SortedQueue
	solver      i.SolveManager
	logger      i.Logger
	opts        *SolveQueueOptions
	stop        chan struct{}
	stopOnce    sync.Once
}

// NewSolveQueue creates a SolveQueue over the given sorted queue and
// solver.
func NewSolveQueue(sortedQueue i.SortedQueue, solver i.SolveManager, logger i.Logger, opts *SolveQueueOptions) (*SolveQueue, error) {
	if opts == nil {
		opts = &SolveQueueOptions{}
	}

	if opts.Prefix == "" {
		opts.Prefix = defaultQueuePrefix
	}

	if opts.BatchSize <= 0 {
		opts.BatchSize = defaultBatchSize
	}

	if opts.PollInterval <= 0 {
		opts.PollInterval = defaultPollInterval
	}

	return &SolveQueue{
		sortedQueue: sortedQueue,
		solver:      solver,
		logger:      logger,
		opts:        opts,
		stop:        make(chan struct{}),
	}, nil
}

// Submit queues a solve job and returns the ID its solution will be
// stored under once a worker picks it up. Jobs are scored by submission
// time, so workers drain them oldest first.
func (sq *SolveQueue) Submit(ctx context.Context, mazeID, requestedBy uuid.UUID, strategy search.Strategy) (uuid.UUID, error) {
	job := &solveJob{
		ID:          uuid.New(),
		MazeID:      mazeID,
		RequestedBy: requestedBy,
		Strategy:    strategy,
	}

	score := float64(time.Now().UnixNano())
	if err := sq.sortedQueue.Enqueue(ctx, sq.queueKey(), score, job.encode()); err != nil {
		sq.logger.Error(fmt.Sprintf("Failed to enqueue solve job: %s", err))
		return uuid.Nil, err
	}

	sq.logger.Info(fmt.Sprintf("Solve job queued: ID=%s maze=%s strategy=%s", job.ID, mazeID, strategy))
	return job.ID, nil
}

// Start polls the queue until Stop is called, executing every job it
// drains. Run one goroutine per worker.
func (sq *SolveQueue) Start() {
	ticker := time.NewTicker(sq.opts.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-sq.stop:
			return
		case <-ticker.C:
			sq.drain(context.Background())
		}
	}
}

// Stop halts every worker started from this queue.
func (sq *SolveQueue) Stop() {
	sq.stopOnce.Do(func() {
		close(sq.stop)
	})
}

// drain pops a batch of jobs and runs them in submission order.
func (sq *SolveQueue) drain(ctx context.Context) {
	members, err := sq.sortedQueue.DequeTops(ctx, sq.queueKey(), sq.opts.BatchSize)
	if err != nil {
		sq.logger.Error(fmt.Sprintf("Draining solve queue: %s", err))
		return
	}

	for _, raw := range members {
		job, err := decodeSolveJob(raw)
		if err != nil {
			sq.logger.Warning(fmt.Sprintf("Dropping queue member: %s", err))
			continue
		}

		if _, err := sq.solver.Solve(ctx, job.ID, job.MazeID, job.RequestedBy, job.Strategy); err != nil {
			sq.logger.Error(fmt.Sprintf("Solve job %s failed: %s", job.ID, err))
			continue
		}

		sq.logger.Info(fmt.Sprintf("Solve job finished: ID=%s", job.ID))
	}
}

func (sq *SolveQueue) queueKey() string {
	return fmt.Sprintf(jobQueueKeyFmt, sq.opts.Prefix)
}

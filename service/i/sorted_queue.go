package i

import (
	"context"
)

// SortedQueue is a score-ordered queue with batch removal.
type SortedQueue interface {
	// Enqueue adds a member with the given score.
	Enqueue(ctx context.Context, queueKey string, score float64, member string) error

	// DequeTops removes and returns up to amount members with the lowest
	// scores.
	DequeTops(ctx context.Context, queueKey string, amount int64) ([]string, error)

	// Count returns the number of queued members.
	Count(ctx context.Context, queueKey string) int64
}

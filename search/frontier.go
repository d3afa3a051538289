package search

import (
	"errors"
	"fmt"
)

// Frontier-related errors.
var (
	// ErrFrontierEmpty reports a Remove on a drained frontier. The solve
	// loop always checks IsEmpty first, so seeing this error means a bug
	// in the calling code, not a property of the maze.
	ErrFrontierEmpty = errors.New("frontier is empty")

	// ErrUnknownStrategy reports a Strategy value outside DFS and BFS.
	ErrUnknownStrategy = errors.New("unknown search strategy")
)

// Frontier holds the discovered-but-not-yet-expanded nodes of one
// search run. Removal order is the only behavior a variant may change.
type Frontier interface {
	// Add pushes a node into the frontier.
	Add(*Node)

	// IsEmpty reports whether no nodes are left.
	IsEmpty() bool

	// Remove pops the next node. Which node is next is the variant's
	// single decision. Fails with ErrFrontierEmpty when nothing is left.
	Remove() (*Node, error)

	// ContainsState reports whether a node carrying the state is queued.
	ContainsState(Cell) bool
}

// StackFrontier removes the most recently added node first, which makes
// the search depth-first.
type StackFrontier struct {
	nodes  []*Node
	states map[Cell]int
}

// NewStackFrontier creates an empty LIFO frontier.
func NewStackFrontier() *StackFrontier {
	return &StackFrontier{states: make(map[Cell]int)}
}

// Add pushes a node onto the stack.
func (f *StackFrontier) Add(n *Node) {
	f.nodes = append(f.nodes, n)
	f.states[n.State]++
}

// IsEmpty reports whether the frontier holds no nodes.
func (f *StackFrontier) IsEmpty() bool {
	return len(f.nodes) == 0
}

// ContainsState reports whether a node with the given state is queued.
func (f *StackFrontier) ContainsState(c Cell) bool {
	return f.states[c] > 0
}

// Remove pops the last-added node.
func (f *StackFrontier) Remove() (*Node, error) {
	if f.IsEmpty() {
		return nil, ErrFrontierEmpty
	}
	lastIndex := len(f.nodes) - 1
	popped := f.nodes[lastIndex]
	f.nodes = f.nodes[:lastIndex]
	f.forget(popped.State)
	return popped, nil
}

func (f *StackFrontier) forget(c Cell) {
	if f.states[c] <= 1 {
		delete(f.states, c)
	} else {
		f.states[c]--
	}
}

// QueueFrontier removes the least recently added node first, which
// makes the search breadth-first. Everything except Remove comes from
// StackFrontier.
type QueueFrontier struct {
	StackFrontier
}

// NewQueueFrontier creates an empty FIFO frontier.
func NewQueueFrontier() *QueueFrontier {
	return &QueueFrontier{StackFrontier{states: make(map[Cell]int)}}
}

// Remove pops the first-added node.
func (f *QueueFrontier) Remove() (*Node, error) {
	if f.IsEmpty() {
		return nil, ErrFrontierEmpty
	}
	popped := f.nodes[0]
	f.nodes = f.nodes[1:]
	f.forget(popped.State)
	return popped, nil
}

// Strategy selects which frontier discipline a search runs with. It is
// an explicit parameter of Solve; there is no package default.
type Strategy int

const (
	// DFS expands the deepest discovered node first (stack frontier).
	DFS Strategy = iota
	// BFS expands the shallowest discovered node first (queue frontier).
	BFS
)

var strategyNames = [...]string{"dfs", "bfs"}

// String returns the lowercase name of the strategy.
func (s Strategy) String() string {
	if s < DFS || s > BFS {
		return fmt.Sprintf("strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// ParseStrategy maps "dfs" or "bfs" to its Strategy value.
func ParseStrategy(name string) (Strategy, error) {
	for i, n := range strategyNames {
		if n == name {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// newFrontier builds the frontier variant the strategy stands for.
func (s Strategy) newFrontier() (Frontier, error) {
	switch s {
	case DFS:
		return NewStackFrontier(), nil
	case BFS:
		return NewQueueFrontier(), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
}

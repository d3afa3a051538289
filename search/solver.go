/*
Package search finds paths through 2D grid mazes with a frontier-driven
state-space search.

The frontier is the whole strategy. A stack frontier expands the deepest
discovered node first and realizes depth-first search; a queue frontier
expands the shallowest and realizes breadth-first search. Nothing else
about the loop changes between the two.

Solve runs the loop to completion in the calling goroutine and reports
either the ordered start-to-goal moves or a definitive no-path result,
along with a snapshot of every cell it expanded on the way.
*/
package search

// Result is the outcome of one search run.
//
// Found distinguishes the two terminal states; a no-path outcome is a
// normal result, not an error. Steps holds the ordered moves from start
// to goal and stays empty when the start already sits on the goal.
// Explored snapshots every expanded cell, for callers that visualize
// the search.
type Result struct {
	Found    bool
	Steps    []Move
	Explored map[Cell]struct{}
}

// Solve searches the grid under the frontier discipline the strategy
// selects. The strategy must not change mid-search, so it is fixed at
// the call. The only error conditions are an unknown strategy value and
// a frontier precondition violation; an unreachable goal yields a
// Result with Found false once the start's connected component is
// exhausted.
func Solve(g *Grid, strategy Strategy) (*Result, error) {
	frontier, err := strategy.newFrontier()
	if err != nil {
		return nil, err
	}

	explored := make(map[Cell]struct{})
	frontier.Add(&Node{State: g.Start()})

	for {
		if frontier.IsEmpty() {
			return &Result{Explored: explored}, nil
		}

		node, err := frontier.Remove()
		if err != nil {
			return nil, err
		}

		// The goal test comes before marking the node explored, so a
		// search that starts on the goal reports an empty explored set.
		if node.State == g.Goal() {
			return &Result{Found: true, Steps: pathTo(node), Explored: explored}, nil
		}

		explored[node.State] = struct{}{}

		// A state already explored, or already waiting in the frontier,
		// is never re-added. Dropping either check changes the
		// algorithm: duplicate frontier entries or rediscovery loops.
		for _, m := range g.Neighbors(node.State) {
			if _, seen := explored[m.To]; seen {
				continue
			}
			if frontier.ContainsState(m.To) {
				continue
			}
			frontier.Add(&Node{State: m.To, Parent: node, Action: m.Action})
		}
	}
}

// pathTo materializes the start-to-goal moves by walking parent
// references back from the goal node, then reversing in place.
func pathTo(n *Node) []Move {
	var steps []Move
	for n.Parent != nil {
		steps = append(steps, Move{Action: n.Action, To: n.State})
		n = n.Parent
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps
}

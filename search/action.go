package search

import "fmt"

// Action is one of the four moves between adjacent cells.
type Action int

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
)

var actionNames = [...]string{"up", "down", "left", "right"}

// String returns the lowercase name of the action.
func (a Action) String() string {
	if a < ActionUp || a > ActionRight {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

// ParseAction maps a lowercase action name back to its Action value.
func ParseAction(name string) (Action, error) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("unknown action: %q", name)
}

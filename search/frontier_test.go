package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStackFrontier(t *testing.T) {
	t.Run("removes the most recently added node first", func(t *testing.T) {
		f := NewStackFrontier()
		first := &Node{State: Cell{Row: 0, Col: 0}}
		second := &Node{State: Cell{Row: 0, Col: 1}}
		third := &Node{State: Cell{Row: 0, Col: 2}}
		f.Add(first)
		f.Add(second)
		f.Add(third)

		for _, want := range []*Node{third, second, first} {
			got, err := f.Remove()
			assert.NoError(t, err)
			assert.Same(t, want, got)
		}
		assert.True(t, f.IsEmpty())
	})

	t.Run("remove on empty frontier fails", func(t *testing.T) {
		f := NewStackFrontier()
		_, err := f.Remove()
		assert.ErrorIs(t, err, ErrFrontierEmpty)
	})

	t.Run("tracks queued states", func(t *testing.T) {
		f := NewStackFrontier()
		state := Cell{Row: 2, Col: 3}
		assert.False(t, f.ContainsState(state))

		f.Add(&Node{State: state})
		assert.True(t, f.ContainsState(state))

		_, err := f.Remove()
		assert.NoError(t, err)
		assert.False(t, f.ContainsState(state))
	})

	t.Run("keeps duplicate states visible until all are removed", func(t *testing.T) {
		f := NewStackFrontier()
		state := Cell{Row: 1, Col: 1}
		f.Add(&Node{State: state})
		f.Add(&Node{State: state})

		_, err := f.Remove()
		assert.NoError(t, err)
		assert.True(t, f.ContainsState(state))

		_, err = f.Remove()
		assert.NoError(t, err)
		assert.False(t, f.ContainsState(state))
	})
}

func TestQueueFrontier(t *testing.T) {
	t.Run("removes the least recently added node first", func(t *testing.T) {
		f := NewQueueFrontier()
		first := &Node{State: Cell{Row: 0, Col: 0}}
		second := &Node{State: Cell{Row: 0, Col: 1}}
		third := &Node{State: Cell{Row: 0, Col: 2}}
		f.Add(first)
		f.Add(second)
		f.Add(third)

		for _, want := range []*Node{first, second, third} {
			got, err := f.Remove()
			assert.NoError(t, err)
			assert.Same(t, want, got)
		}
		assert.True(t, f.IsEmpty())
	})

	t.Run("remove on empty frontier fails", func(t *testing.T) {
		f := NewQueueFrontier()
		_, err := f.Remove()
		assert.ErrorIs(t, err, ErrFrontierEmpty)
	})

	t.Run("tracks queued states", func(t *testing.T) {
		f := NewQueueFrontier()
		state := Cell{Row: 4, Col: 0}
		f.Add(&Node{State: state})
		assert.True(t, f.ContainsState(state))

		_, err := f.Remove()
		assert.NoError(t, err)
		assert.False(t, f.ContainsState(state))
	})
}

func TestParseStrategy(t *testing.T) {
	t.Run("recognizes dfs and bfs", func(t *testing.T) {
		s, err := ParseStrategy("dfs")
		assert.NoError(t, err)
		assert.Equal(t, DFS, s)

		s, err = ParseStrategy("bfs")
		assert.NoError(t, err)
		assert.Equal(t, BFS, s)
	})

	t.Run("rejects anything else", func(t *testing.T) {
		_, err := ParseStrategy("astar")
		assert.ErrorIs(t, err, ErrUnknownStrategy)
	})
}

func TestStrategyString(t *testing.T) {
	assert.Equal(t, "dfs", DFS.String())
	assert.Equal(t, "bfs", BFS.String())
}

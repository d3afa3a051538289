package search

// Node is one record of the search tree: the state it stands for, the
// node it was expanded from, and the action that produced it. The root
// node has a nil Parent, and its Action carries no meaning.
//
// Nodes are owned by a single search run. Parent references form a tree
// rooted at the start node; each state is expanded at most once, so the
// chain back from any node is finite and cycle free.
type Node struct {
	State  Cell
	Parent *Node
	Action Action
}

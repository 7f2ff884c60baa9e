// Package record keeps the in-memory move list shown next to the board.
// Undo steps back along the list; playing a different move afterwards opens a variation.
package record

import (
	"checkers-local/engine/notation"
	"checkers-local/types"
)

// Entry is one move of the record.
type Entry struct {
	Player types.Player
	Text   string // "11-15", "22x15"
}

// Node is a single position in the move tree.
type Node struct {
	Entry    Entry
	Parent   *Node
	Children []*Node // First child = main line
}

// Tree is the move record of one game.
type Tree struct {
	GameID  string
	Root    *Node
	Current *Node
	depth   int
}

// NewTree creates an empty record for the game.
func NewTree(gameID string) *Tree {
	root := &Node{}
	return &Tree{GameID: gameID, Root: root, Current: root}
}

// Depth returns the number of moves from the root to the current node.
func (t *Tree) Depth() int {
	return t.depth
}

// AddMove adds a child move to the current node and advances to it.
// If a child with the same entry already exists, navigates to it instead of creating a duplicate.
func (t *Tree) AddMove(e Entry) *Node {
	for _, child := range t.Current.Children {
		if child.Entry == e {
			t.Current = child
			t.depth++
			return child
		}
	}
	node := &Node{Entry: e, Parent: t.Current}
	t.Current.Children = append(t.Current.Children, node)
	t.Current = node
	t.depth++
	return node
}

// Back moves current to its parent. Returns false if already at root.
func (t *Tree) Back() bool {
	if t.Current == t.Root {
		return false
	}
	t.Current = t.Current.Parent
	t.depth--
	return true
}

// Follow brings the record in line with a board snapshot: it steps back while the
// record is ahead of the snapshot's move number and appends the snapshot's last move
// when the snapshot is exactly one move ahead. A new game id starts a fresh record.
func (t *Tree) Follow(state *types.BoardState) {
	if state == nil {
		return
	}
	if state.GameID != t.GameID {
		*t = *NewTree(state.GameID)
	}
	for t.depth > state.MoveNumber {
		if !t.Back() {
			break
		}
	}
	if state.MoveNumber == t.depth+1 && state.LastMove != nil {
		t.AddMove(Entry{Player: state.LastMove.Player, Text: notation.FormatMove(*state.LastMove)})
	}
}

// PathFromRoot returns the entries from root to current (excluding the root).
func (t *Tree) PathFromRoot() []Entry {
	var path []Entry
	for node := t.Current; node != t.Root; node = node.Parent {
		path = append(path, node.Entry)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// NumVariations returns the number of siblings at the current node's level.
// Returns 0 if at root.
func (t *Tree) NumVariations() int {
	if t.Current.Parent == nil {
		return 0
	}
	return len(t.Current.Parent.Children)
}

// VariationIndex returns which child of parent the current node is (0-based).
// Returns -1 if at root.
func (t *Tree) VariationIndex() int {
	if t.Current.Parent == nil {
		return -1
	}
	for i, child := range t.Current.Parent.Children {
		if child == t.Current {
			return i
		}
	}
	return -1
}

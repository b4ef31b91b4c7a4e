package trie

import "sort"

// Node is the trie's node
type Node struct {
	children map[rune]*Node
	terminal bool
}

// Child return the child labeled c, or nil
func (n *Node) Child(c rune) *Node {
	return n.children[c]
}

func (n *Node) hasChild(c rune) bool {
	return n.Child(c) != nil
}

// InsertChild return the child labeled c, creating it when absent
func (n *Node) InsertChild(c rune) *Node {
	if child := n.Child(c); child != nil {
		return child
	}

	child := newNode()
	if n.children == nil {
		n.children = map[rune]*Node{}
	}
	n.children[c] = child
	return child
}

// SetTerminal marks whether the path ending at n spells a word
func (n *Node) SetTerminal(terminal bool) {
	n.terminal = terminal
}

func (n *Node) IsTerminal() bool {
	return n.terminal
}

// ValidNextCharacters return the child labels in ascending order
func (n *Node) ValidNextCharacters() []rune {
	chars := make([]rune, 0, len(n.children))
	for c := range n.children {
		chars = append(chars, c)
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
	return chars
}

func (n *Node) equals(other *Node) bool {
	if n.terminal != other.terminal {
		return false
	}

	if len(n.children) != len(other.children) {
		return false
	}

	for k, v := range n.children {
		o, ok := other.children[k]
		if !ok || !v.equals(o) {
			return false
		}
	}

	return true
}

func newNode() *Node {
	return &Node{}
}

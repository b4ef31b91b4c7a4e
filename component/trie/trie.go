package trie

import (
	"container/list"
	"unicode/utf8"

	"github.com/Dreamacro/lexicon/component/casefold"
	C "github.com/Dreamacro/lexicon/constant"
)

var (
	_ C.Dictionary   = (*Trie)(nil)
	_ C.AutoComplete = (*Trie)(nil)
)

type Option = func(t *Trie)

// WithFolder replaces the ASCII lower-casing applied to every word and prefix
func WithFolder(f casefold.Folder) Option {
	return func(t *Trie) {
		t.fold = f
	}
}

// Trie is a character-indexed prefix tree storing case-folded words.
// It is not safe for concurrent mutation; wrap it when sharing.
// Strings that are not valid UTF-8 are never stored, matched or completed.
type Trie struct {
	root *Node
	size int
	fold casefold.Folder
}

// AddWord implements C.Dictionary
func (t *Trie) AddWord(word string) bool {
	if !utf8.ValidString(word) {
		return false
	}

	node := t.root
	for _, c := range t.fold(word) {
		child := node.Child(c)
		if child == nil {
			child = node.InsertChild(c)
		}
		node = child
	}

	if node.IsTerminal() {
		return false
	}

	node.SetTerminal(true)
	t.size++
	return true
}

// IsWord implements C.Dictionary
func (t *Trie) IsWord(word string) bool {
	if !utf8.ValidString(word) {
		return false
	}

	node := t.search(t.fold(word))
	return node != nil && node.IsTerminal()
}

// Size implements C.Dictionary
func (t *Trie) Size() int {
	return t.size
}

// search return the node reached by key, or nil when key leaves the tree
func (t *Trie) search(key string) *Node {
	node := t.root
	for _, c := range key {
		if !node.hasChild(c) {
			return nil
		}
		node = node.Child(c)
	}
	return node
}

type entry struct {
	node *Node
	text string
}

// PredictCompletions implements C.AutoComplete.
// The tree is searched level by level from the prefix node, so a shorter
// word is always returned before a longer one; words of equal length come
// out in ascending rune order.
func (t *Trie) PredictCompletions(prefix string, numCompletions int) []string {
	completions := []string{}
	if numCompletions <= 0 || !utf8.ValidString(prefix) {
		return completions
	}

	prefix = t.fold(prefix)
	stem := t.search(prefix)
	if stem == nil {
		return completions
	}

	queue := list.New()
	queue.PushBack(entry{stem, prefix})

	for queue.Len() > 0 && numCompletions > 0 {
		cur := queue.Remove(queue.Front()).(entry)
		if cur.node.IsTerminal() {
			completions = append(completions, cur.text)
			numCompletions--
		}

		for _, c := range cur.node.ValidNextCharacters() {
			queue.PushBack(entry{cur.node.Child(c), cur.text + string(c)})
		}
	}

	return completions
}

// WalkFunc is called for every node in pre-order with the word spelled by
// the path to it. Returning false stops the walk.
type WalkFunc func(word string, terminal bool) bool

// Walk visits every node from the root in pre-order, children in ascending
// rune order
func (t *Trie) Walk(fn WalkFunc) {
	walk(t.root, "", fn)
}

func walk(node *Node, word string, fn WalkFunc) bool {
	if !fn(word, node.IsTerminal()) {
		return false
	}

	for _, c := range node.ValidNextCharacters() {
		if !walk(node.Child(c), word+string(c), fn) {
			return false
		}
	}
	return true
}

// Words return every stored word in lexicographic rune order
func (t *Trie) Words() []string {
	words := make([]string, 0, t.Size())
	t.Walk(func(word string, terminal bool) bool {
		if terminal {
			words = append(words, word)
		}
		return true
	})
	return words
}

// New return a empty Trie
func New(options ...Option) *Trie {
	t := &Trie{
		root: newNode(),
		fold: casefold.ASCII,
	}

	for _, option := range options {
		option(t)
	}

	return t
}

// Package linear implements a Dictionary that scans a linked list of words.
// It exists as a reference for the trie and answers no completion queries.
package linear

import (
	"container/list"
	"unicode/utf8"

	"github.com/Dreamacro/lexicon/component/casefold"
	C "github.com/Dreamacro/lexicon/constant"
)

// Assert that Dictionary implements C.Dictionary.
var _ C.Dictionary = (*Dictionary)(nil)

type Dictionary struct {
	words *list.List
	fold  casefold.Folder
}

// AddWord implements C.Dictionary
func (d *Dictionary) AddWord(word string) bool {
	if !utf8.ValidString(word) {
		return false
	}

	word = d.fold(word)
	if d.contains(word) {
		return false
	}

	d.words.PushBack(word)
	return true
}

// IsWord implements C.Dictionary
func (d *Dictionary) IsWord(word string) bool {
	if !utf8.ValidString(word) {
		return false
	}
	return d.contains(d.fold(word))
}

// Size implements C.Dictionary
func (d *Dictionary) Size() int {
	return d.words.Len()
}

func (d *Dictionary) contains(word string) bool {
	for e := d.words.Front(); e != nil; e = e.Next() {
		if e.Value.(string) == word {
			return true
		}
	}
	return false
}

// New return a empty Dictionary, folding words with fold (ASCII when nil)
func New(fold casefold.Folder) *Dictionary {
	if fold == nil {
		fold = casefold.ASCII
	}

	return &Dictionary{
		words: list.New(),
		fold:  fold,
	}
}

// Package dictionary builds, guards and fills the word dictionaries served
// by lexicon.
package dictionary

import (
	"github.com/Dreamacro/lexicon/component/casefold"
	"github.com/Dreamacro/lexicon/component/linear"
	"github.com/Dreamacro/lexicon/component/trie"
	C "github.com/Dreamacro/lexicon/constant"
)

// New return a empty dictionary of the given backend
func New(tp C.DictionaryType, fold casefold.Folder) (C.Dictionary, error) {
	if fold == nil {
		fold = casefold.ASCII
	}

	switch tp {
	case C.Trie:
		return trie.New(trie.WithFolder(fold)), nil
	case C.Linear:
		return linear.New(fold), nil
	default:
		return nil, C.ErrUnknownDictionaryType
	}
}

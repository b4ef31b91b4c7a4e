package dictionary

import (
	"errors"
	"sync"

	"github.com/Dreamacro/lexicon/component/trie"
	C "github.com/Dreamacro/lexicon/constant"
)

var (
	_ C.Dictionary   = (*Guarded)(nil)
	_ C.AutoComplete = (*Guarded)(nil)

	ErrNotTrie = errors.New("dictionary is not a trie")
)

// Guarded serializes writers against readers of a dictionary that is not
// safe for concurrent use. Readers share the lock.
type Guarded struct {
	mux  sync.RWMutex
	dict C.Dictionary
}

// AddWord implements C.Dictionary
func (g *Guarded) AddWord(word string) bool {
	g.mux.Lock()
	defer g.mux.Unlock()
	return g.dict.AddWord(word)
}

// AddWords inserts every word under a single write lock and return how many were new
func (g *Guarded) AddWords(words []string) int {
	g.mux.Lock()
	defer g.mux.Unlock()

	added := 0
	for _, w := range words {
		if g.dict.AddWord(w) {
			added++
		}
	}
	return added
}

// IsWord implements C.Dictionary
func (g *Guarded) IsWord(word string) bool {
	g.mux.RLock()
	defer g.mux.RUnlock()
	return g.dict.IsWord(word)
}

// Size implements C.Dictionary
func (g *Guarded) Size() int {
	g.mux.RLock()
	defer g.mux.RUnlock()
	return g.dict.Size()
}

// SupportCompletion reports whether the wrapped dictionary implements C.AutoComplete
func (g *Guarded) SupportCompletion() bool {
	_, ok := g.dict.(C.AutoComplete)
	return ok
}

// PredictCompletions implements C.AutoComplete.
// It return a empty slice when the wrapped dictionary can't complete.
func (g *Guarded) PredictCompletions(prefix string, numCompletions int) []string {
	ac, ok := g.dict.(C.AutoComplete)
	if !ok {
		return []string{}
	}

	g.mux.RLock()
	defer g.mux.RUnlock()
	return ac.PredictCompletions(prefix, numCompletions)
}

// View runs fn on the wrapped trie while holding the read lock
func (g *Guarded) View(fn func(t *trie.Trie) error) error {
	t, ok := g.dict.(*trie.Trie)
	if !ok {
		return ErrNotTrie
	}

	g.mux.RLock()
	defer g.mux.RUnlock()
	return fn(t)
}

func NewGuarded(dict C.Dictionary) *Guarded {
	return &Guarded{dict: dict}
}

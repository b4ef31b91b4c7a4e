// Package textgen generates text from a first-order Markov chain of words.
package textgen

import (
	"math/rand"
	"strings"
	"sync"
)

type link struct {
	word string
	next []string
}

// Generator learns which word follows which in a training text and walks
// those transitions at random. It is safe for concurrent use.
type Generator struct {
	mux     sync.Mutex
	rand    *rand.Rand
	starter string
	links   []*link
	index   map[string]*link
}

// Train adds the word transitions of text to the generator. The last word
// transitions back to the first, and the first word becomes the starter.
func (g *Generator) Train(text string) {
	g.mux.Lock()
	defer g.mux.Unlock()
	g.train(text)
}

// Retrain forgets everything learned so far and trains on text
func (g *Generator) Retrain(text string) {
	g.mux.Lock()
	defer g.mux.Unlock()

	g.starter = ""
	g.links = nil
	g.index = map[string]*link{}
	g.train(text)
}

func (g *Generator) train(text string) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return
	}

	g.starter = words[0]
	for i, w := range words {
		l, exist := g.index[w]
		if !exist {
			l = &link{word: w}
			g.index[w] = l
			g.links = append(g.links, l)
		}
		l.next = append(l.next, words[(i+1)%len(words)])
	}
}

// Generate return numWords words joined by a space, starting with the starter
func (g *Generator) Generate(numWords int) string {
	g.mux.Lock()
	defer g.mux.Unlock()

	if numWords <= 0 || g.starter == "" {
		return ""
	}

	out := make([]string, 0, numWords)
	cur := g.starter
	out = append(out, cur)
	for len(out) < numWords {
		next := g.index[cur].next
		cur = next[g.rand.Intn(len(next))]
		out = append(out, cur)
	}

	return strings.Join(out, " ")
}

// Trained reports whether any text was learned
func (g *Generator) Trained() bool {
	g.mux.Lock()
	defer g.mux.Unlock()
	return g.starter != ""
}

func (g *Generator) String() string {
	g.mux.Lock()
	defer g.mux.Unlock()

	sb := strings.Builder{}
	for _, l := range g.links {
		sb.WriteString(l.word)
		sb.WriteString(": ")
		for _, n := range l.next {
			sb.WriteString(n)
			sb.WriteString("->")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// New return a untrained Generator drawing from r
func New(r *rand.Rand) *Generator {
	return &Generator{
		rand:  r,
		index: map[string]*link{},
	}
}

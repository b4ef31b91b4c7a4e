package route

import (
	"bytes"
	"net/http"

	"github.com/Dreamacro/lexicon/component/trie"
	"github.com/Dreamacro/lexicon/dictionary"
	"github.com/Dreamacro/lexicon/log"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func debugRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/tree", dumpTree)
	return r
}

// dumpTree writes the whole trie in pre-order. The dump is rendered into
// memory under the read lock, and the lock is released before any byte
// goes to the client.
func dumpTree(w http.ResponseWriter, r *http.Request) {
	buf := &bytes.Buffer{}
	err := rt.Dictionary.View(func(t *trie.Trie) error {
		return dictionary.Dump(buf, t)
	})
	if err == dictionary.ErrNotTrie {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, ErrNotFound)
		return
	}
	if err != nil {
		log.Warnln("[Debug] dump tree failed: %s", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, newError(err.Error()))
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		log.Debugln("[Debug] write tree dump: %s", err)
	}
}

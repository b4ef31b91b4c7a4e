package route

import (
	"context"
	"net/http"
	"net/url"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type contextKey string

const CtxKeyWord = contextKey("word")

func wordRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/", getWords)
	r.Put("/", addWords)

	r.Route("/{word}", func(r chi.Router) {
		r.Use(parseWord)
		r.Get("/", getWord)
	})
	return r
}

func parseWord(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		word := chi.URLParam(r, "word")
		if word, err := url.PathUnescape(word); err == nil && utf8.ValidString(word) {
			ctx := context.WithValue(r.Context(), CtxKeyWord, word)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrBadRequest)
	})
}

func getWords(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, render.M{
		"size":       rt.Dictionary.Size(),
		"backend":    rt.Backend,
		"completion": rt.Dictionary.SupportCompletion(),
	})
}

type addWordsRequest struct {
	Words []string `json:"words"`
}

func addWords(w http.ResponseWriter, r *http.Request) {
	req := addWordsRequest{}
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrBadRequest)
		return
	}

	added := rt.Dictionary.AddWords(req.Words)
	render.JSON(w, r, render.M{
		"added": added,
		"size":  rt.Dictionary.Size(),
	})
}

func getWord(w http.ResponseWriter, r *http.Request) {
	word := r.Context().Value(CtxKeyWord).(string)
	render.JSON(w, r, render.M{
		"word":   word,
		"exists": rt.Dictionary.IsWord(word),
	})
}

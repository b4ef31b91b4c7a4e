package route

import (
	"net/http"
	"strconv"

	"github.com/go-chi/render"
)

const defaultGenerateWords = 20

func generate(w http.ResponseWriter, r *http.Request) {
	n := defaultGenerateWords
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, ErrBadRequest)
			return
		}
		n = parsed
	}

	if !rt.Generator.Trained() {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, ErrNotTrained)
		return
	}

	render.JSON(w, r, render.M{"text": rt.Generator.Generate(n)})
}

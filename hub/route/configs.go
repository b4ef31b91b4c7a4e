package route

import (
	"net/http"

	"github.com/Dreamacro/lexicon/log"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func configRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/", getConfigs)
	r.Patch("/", patchConfigs)
	return r
}

func getConfigs(w http.ResponseWriter, r *http.Request) {
	cfg := rt.Config
	render.JSON(w, r, render.M{
		"log-level":  log.Level(),
		"dictionary": cfg.Dictionary,
		"completion": cfg.Completion,
	})
}

func patchConfigs(w http.ResponseWriter, r *http.Request) {
	general := struct {
		LogLevel *log.LogLevel `json:"log-level"`
	}{}
	if err := render.DecodeJSON(r.Body, &general); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrBadRequest)
		return
	}

	if general.LogLevel != nil {
		log.SetLevel(*general.LogLevel)
	}

	render.NoContent(w, r)
}

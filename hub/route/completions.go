package route

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Dreamacro/lexicon/context"
	"github.com/Dreamacro/lexicon/log"

	"github.com/go-chi/render"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/singleflight"
)

var (
	group singleflight.Group

	errInvalidCount = errors.New("invalid count")
)

type Completions struct {
	Prefix      string   `json:"prefix"`
	Completions []string `json:"completions"`
}

// completionCount reads the n query parameter, falling back to the
// configured default and capping it at the configured maximum
func completionCount(r *http.Request) (int, error) {
	completion := rt.Config.Completion

	raw := r.URL.Query().Get("n")
	if raw == "" {
		return completion.DefaultCount, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errInvalidCount
	}

	if n > completion.MaxCount {
		n = completion.MaxCount
	}
	return n, nil
}

func predict(prefix string, n int) []string {
	key := strconv.Itoa(n) + ":" + prefix
	ret, _, _ := group.Do(key, func() (interface{}, error) {
		return rt.Dictionary.PredictCompletions(prefix, n), nil
	})
	return ret.([]string)
}

func getCompletions(w http.ResponseWriter, r *http.Request) {
	n, err := completionCount(r)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, newError(err.Error()))
		return
	}

	if !rt.Dictionary.SupportCompletion() {
		render.Status(r, http.StatusNotImplemented)
		render.JSON(w, r, ErrNotImplemented)
		return
	}

	if websocket.IsWebSocketUpgrade(r) {
		streamCompletions(w, r, n)
		return
	}

	prefix := r.URL.Query().Get("prefix")
	render.JSON(w, r, Completions{
		Prefix:      prefix,
		Completions: predict(prefix, n),
	})
}

// streamCompletions answers every text frame, read as a prefix, with a
// Completions frame until the client goes away
func streamCompletions(w http.ResponseWriter, r *http.Request, n int) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	session := context.NewSession(context.SessionTypeWebSocket)
	log.Debugln("[Completion] session %s opened", session.ID())
	defer func() {
		log.Debugln("[Completion] session %s closed after %d queries", session.ID(), session.Queries())
	}()

	for {
		tp, buf, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if tp != websocket.TextMessage {
			continue
		}

		session.Query()
		prefix := string(buf)
		if err := conn.WriteJSON(Completions{
			Prefix:      prefix,
			Completions: predict(prefix, n),
		}); err != nil {
			return
		}
	}
}

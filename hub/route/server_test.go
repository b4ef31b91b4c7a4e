package route

import (
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Dreamacro/lexicon/component/linear"
	"github.com/Dreamacro/lexicon/component/trie"
	"github.com/Dreamacro/lexicon/config"
	C "github.com/Dreamacro/lexicon/constant"
	"github.com/Dreamacro/lexicon/dictionary"
	"github.com/Dreamacro/lexicon/hub/executor"
	"github.com/Dreamacro/lexicon/log"
	"github.com/Dreamacro/lexicon/textgen"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, dict C.Dictionary, secret string) *httptest.Server {
	cfg, err := config.Parse([]byte("completion: {default-count: 3, max-count: 5}"))
	require.NoError(t, err)

	g := dictionary.NewGuarded(dict)
	g.AddWords([]string{"step", "stem", "stew", "steer", "steep", "cat", "car"})

	rt = &executor.Runtime{
		Dictionary: g,
		Generator:  textgen.New(rand.New(rand.NewSource(42))),
		Backend:    C.Trie,
		Config:     cfg,
	}
	serverSecret = secret

	server := httptest.NewServer(router())
	t.Cleanup(func() {
		server.Close()
		serverSecret = ""
	})
	return server
}

func do(t *testing.T, method, url, body string, header http.Header) (int, map[string]interface{}) {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, r)
	require.NoError(t, err)
	for k, v := range header {
		req.Header[k] = v
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	m := map[string]interface{}{}
	buf, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(buf) != 0 {
		require.NoError(t, json.Unmarshal(buf, &m), string(buf))
	}
	return resp.StatusCode, m
}

func get(t *testing.T, url string) (int, map[string]interface{}) {
	return do(t, http.MethodGet, url, "", nil)
}

func TestHello(t *testing.T) {
	server := newTestServer(t, trie.New(), "")

	status, body := get(t, server.URL+"/")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, C.Name, body["hello"])

	status, body = get(t, server.URL+"/version")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, C.Version, body["version"])
}

func TestAuthentication(t *testing.T) {
	server := newTestServer(t, trie.New(), "s3cret")

	status, body := get(t, server.URL+"/")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, ErrUnauthorized.Message, body["message"])

	status, _ = do(t, http.MethodGet, server.URL+"/", "", http.Header{"Authorization": {"Bearer nope"}})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = do(t, http.MethodGet, server.URL+"/", "", http.Header{"Authorization": {"Bearer s3cret"}})
	assert.Equal(t, http.StatusOK, status)
}

func TestWords(t *testing.T) {
	server := newTestServer(t, trie.New(), "")

	status, body := get(t, server.URL+"/words")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(7), body["size"])
	assert.Equal(t, "trie", body["backend"])
	assert.Equal(t, true, body["completion"])

	status, body = get(t, server.URL+"/words/STEM")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "STEM", body["word"])
	assert.Equal(t, true, body["exists"])

	status, body = get(t, server.URL+"/words/dog")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["exists"])

	status, body = do(t, http.MethodPut, server.URL+"/words", `{"words":["dog","Cat","dogs"]}`, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(2), body["added"])
	assert.Equal(t, float64(9), body["size"])

	status, _ = do(t, http.MethodPut, server.URL+"/words", `{"words":`, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	// escapes that decode to bytes outside UTF-8
	for _, path := range []string{"/words/%FF", "/words/caf%E9"} {
		status, body = get(t, server.URL+path)
		assert.Equal(t, http.StatusBadRequest, status, path)
		assert.Equal(t, ErrBadRequest.Message, body["message"])
	}

	status, body = get(t, server.URL+"/words/caf%C3%A9")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "caf\u00e9", body["word"])
	assert.Equal(t, false, body["exists"])
}

func completions(t *testing.T, body map[string]interface{}) []string {
	raw, ok := body["completions"].([]interface{})
	require.True(t, ok, "%v", body)
	words := make([]string, 0, len(raw))
	for _, w := range raw {
		words = append(words, w.(string))
	}
	return words
}

func TestCompletions(t *testing.T) {
	server := newTestServer(t, trie.New(), "")

	status, body := get(t, server.URL+"/completions?prefix=ste&n=4")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ste", body["prefix"])
	assert.Equal(t, []string{"stem", "step", "stew", "steep"}, completions(t, body))

	// default count
	_, body = get(t, server.URL+"/completions?prefix=ste")
	assert.Equal(t, []string{"stem", "step", "stew"}, completions(t, body))

	// capped at max count
	_, body = get(t, server.URL+"/completions?prefix=&n=50")
	assert.Len(t, completions(t, body), 5)

	_, body = get(t, server.URL+"/completions?prefix=ste&n=0")
	assert.Empty(t, completions(t, body))

	_, body = get(t, server.URL+"/completions?prefix=ste&n=-5")
	assert.Empty(t, completions(t, body))

	_, body = get(t, server.URL+"/completions?prefix=dog&n=5")
	assert.Empty(t, completions(t, body))

	status, _ = get(t, server.URL+"/completions?prefix=ste&n=many")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestCompletions_NotSupported(t *testing.T) {
	server := newTestServer(t, linear.New(nil), "")

	status, body := get(t, server.URL+"/completions?prefix=ste")
	assert.Equal(t, http.StatusNotImplemented, status)
	assert.Equal(t, ErrNotImplemented.Message, body["message"])

	status, _ = get(t, server.URL+"/debug/tree")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCompletions_WebSocket(t *testing.T) {
	server := newTestServer(t, trie.New(), "s3cret")

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/completions?n=2&token=s3cret"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	for _, tc := range []struct {
		prefix string
		want   []string
	}{
		{"ste", []string{"stem", "step"}},
		{"CA", []string{"car", "cat"}},
		{"dog", []string{}},
	} {
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(tc.prefix)))

		got := Completions{}
		require.NoError(t, conn.ReadJSON(&got))
		assert.Equal(t, tc.prefix, got.Prefix)
		assert.Equal(t, tc.want, got.Completions)
	}

	bad := "ws" + strings.TrimPrefix(server.URL, "http") + "/completions?token=wrong"
	_, resp, err := websocket.DefaultDialer.Dial(bad, nil)
	assert.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGenerate(t *testing.T) {
	server := newTestServer(t, trie.New(), "")

	status, body := get(t, server.URL+"/generate")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, ErrNotTrained.Message, body["message"])

	rt.Generator.Train("hi there hi Leo")
	status, body = get(t, server.URL+"/generate?n=5")
	assert.Equal(t, http.StatusOK, status)
	text := body["text"].(string)
	assert.Len(t, strings.Fields(text), 5)
	assert.True(t, strings.HasPrefix(text, "hi "))

	status, _ = get(t, server.URL+"/generate?n=five")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestConfigs(t *testing.T) {
	server := newTestServer(t, trie.New(), "")
	defer log.SetLevel(log.Level())

	status, body := get(t, server.URL+"/configs")
	assert.Equal(t, http.StatusOK, status)
	completion := body["completion"].(map[string]interface{})
	assert.Equal(t, float64(3), completion["default-count"])
	assert.Equal(t, float64(5), completion["max-count"])
	dict := body["dictionary"].(map[string]interface{})
	assert.Equal(t, "trie", dict["backend"])

	status, _ = do(t, http.MethodPatch, server.URL+"/configs", `{"log-level":"error"}`, nil)
	assert.Equal(t, http.StatusNoContent, status)
	assert.Equal(t, log.ERROR, log.Level())

	status, _ = do(t, http.MethodPatch, server.URL+"/configs", `{"log-level":"loud"}`, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestDumpTree(t *testing.T) {
	tr := trie.New()
	server := newTestServer(t, tr, "")

	resp, err := http.Get(server.URL + "/debug/tree")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	buf, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(buf), "        stem *\n")
	assert.Contains(t, string(buf), "          steep *\n")
}

// stallWriter accepts the response header and then blocks on the first body
// write until released, like a client that stopped reading.
type stallWriter struct {
	header  http.Header
	once    sync.Once
	writing chan struct{}
	release chan struct{}
}

func (w *stallWriter) Header() http.Header { return w.header }

func (w *stallWriter) WriteHeader(int) {}

func (w *stallWriter) Write(b []byte) (int, error) {
	w.once.Do(func() { close(w.writing) })
	<-w.release
	return len(b), nil
}

func TestDumpTree_StalledClient(t *testing.T) {
	newTestServer(t, trie.New(), "")
	words := make([]string, 0, 5000)
	for i := 0; i < 5000; i++ {
		words = append(words, "word"+strings.Repeat("x", i%7)+string(rune('a'+i%26))+string(rune('a'+i/26%26)))
	}
	rt.Dictionary.AddWords(words)

	w := &stallWriter{
		header:  http.Header{},
		writing: make(chan struct{}),
		release: make(chan struct{}),
	}
	defer close(w.release)

	go dumpTree(w, httptest.NewRequest(http.MethodGet, "/debug/tree", nil))

	select {
	case <-w.writing:
	case <-time.After(5 * time.Second):
		require.FailNow(t, "dump never started writing")
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		rt.Dictionary.AddWord("zebra")
		rt.Dictionary.PredictCompletions("ste", 3)
		rt.Dictionary.IsWord("zebra")
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		require.FailNow(t, "dictionary blocked while the dump waits on the client")
	}
	assert.True(t, rt.Dictionary.IsWord("zebra"))
	assert.Equal(t, "text/plain; charset=utf-8", w.header.Get("Content-Type"))
}

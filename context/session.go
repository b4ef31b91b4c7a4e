package context

import (
	"github.com/gofrs/uuid"
	"go.uber.org/atomic"
)

const (
	SessionTypeHTTP      = "http"
	SessionTypeWebSocket = "websocket"
)

// Session follows one client asking for completions
type Session struct {
	id      uuid.UUID
	tp      string
	queries *atomic.Int64
}

func NewSession(tp string) *Session {
	id, _ := uuid.NewV4()
	return &Session{
		id:      id,
		tp:      tp,
		queries: atomic.NewInt64(0),
	}
}

// ID return the session identifier
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Type return the transport of the session
func (s *Session) Type() string {
	return s.tp
}

// Query counts a completion query and return the running total
func (s *Session) Query() int64 {
	return s.queries.Inc()
}

// Queries return how many completion queries the session made
func (s *Session) Queries() int64 {
	return s.queries.Load()
}

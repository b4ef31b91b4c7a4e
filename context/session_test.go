package context

import (
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSession(t *testing.T) {
	a := NewSession(SessionTypeWebSocket)
	b := NewSession(SessionTypeHTTP)

	assert.NotEqual(t, uuid.Nil, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, SessionTypeWebSocket, a.Type())

	assert.Equal(t, int64(0), a.Queries())
	assert.Equal(t, int64(1), a.Query())
	assert.Equal(t, int64(2), a.Query())
	assert.Equal(t, int64(2), a.Queries())
}

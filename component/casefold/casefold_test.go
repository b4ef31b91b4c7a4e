package casefold

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestASCII(t *testing.T) {
	assert.Equal(t, "hello", ASCII("HeLLo"))
	assert.Equal(t, "don't-stop 42", ASCII("Don't-Stop 42"))
	assert.Equal(t, "already", ASCII("already"))
	// non-ASCII letters are opaque
	assert.Equal(t, "Éclair", ASCII("ÉCLAIR"))
}

func TestUnicode(t *testing.T) {
	assert.Equal(t, Unicode("STRASSE"), Unicode("Straße"))
	assert.Equal(t, "éclair", Unicode("ÉCLAIR"))
}

func TestParse(t *testing.T) {
	f, err := Parse("")
	assert.Nil(t, err)
	assert.Equal(t, "abc", f("ABC"))

	f, err = Parse("Unicode")
	assert.Nil(t, err)
	assert.Equal(t, "éa", f("ÉA"))

	_, err = Parse("ebcdic")
	assert.Equal(t, ErrUnknownFolder, err)
}

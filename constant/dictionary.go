package constant

import (
	"errors"
	"strings"
)

// Dictionary Type
const (
	Trie DictionaryType = iota
	Linear
)

const (
	DefaultCompletions    = 10
	DefaultMaxCompletions = 100
	DefaultLoadConcurrent = 4
)

var (
	// DictionaryTypeMapping is a mapping for DictionaryType enum
	DictionaryTypeMapping = map[string]DictionaryType{
		Trie.String():   Trie,
		Linear.String(): Linear,
	}

	ErrUnknownDictionaryType = errors.New("unknown dictionary type")
)

// Dictionary stores words and answers membership queries.
// Words are compared case-insensitively.
type Dictionary interface {
	// AddWord inserts word and reports whether it was not already present
	AddWord(word string) bool

	// IsWord reports whether word was inserted before
	IsWord(word string) bool

	Size() int
}

// AutoComplete predicts words that start with a prefix
type AutoComplete interface {
	// PredictCompletions returns up to numCompletions stored words beginning
	// with prefix, in non-decreasing length order. A prefix that is itself a
	// stored word is included.
	PredictCompletions(prefix string, numCompletions int) []string
}

// DictionaryType is enum of dictionary backend
type DictionaryType int

func (dt DictionaryType) String() string {
	switch dt {
	case Trie:
		return "trie"
	case Linear:
		return "linear"
	default:
		return "unknown"
	}
}

// ParseDictionaryType return the DictionaryType named by s
func ParseDictionaryType(s string) (DictionaryType, error) {
	tp, exist := DictionaryTypeMapping[strings.ToLower(s)]
	if !exist {
		return Trie, ErrUnknownDictionaryType
	}
	return tp, nil
}

// UnmarshalYAML deserialize DictionaryType with yaml
func (dt *DictionaryType) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var tp string
	if err := unmarshal(&tp); err != nil {
		return err
	}
	parsed, err := ParseDictionaryType(tp)
	if err != nil {
		return err
	}
	*dt = parsed
	return nil
}

// MarshalYAML serialize DictionaryType with yaml
func (dt DictionaryType) MarshalYAML() (interface{}, error) {
	return dt.String(), nil
}

// MarshalJSON serialize DictionaryType with json
func (dt DictionaryType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + dt.String() + `"`), nil
}

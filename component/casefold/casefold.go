// Package casefold normalizes words before they reach a dictionary.
package casefold

import (
	"errors"
	"strings"

	"golang.org/x/text/cases"
)

// Folder maps a word onto its case-insensitive form
type Folder func(string) string

var (
	// FolderMapping is a mapping from config name to Folder
	FolderMapping = map[string]Folder{
		"ascii":   ASCII,
		"unicode": Unicode,
	}

	ErrUnknownFolder = errors.New("unknown case folding")
)

// ASCII lower-cases A-Z and passes every other rune through untouched
func ASCII(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			return strings.Map(lowerASCII, s)
		}
	}
	return s
}

func lowerASCII(r rune) rune {
	if 'A' <= r && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// Unicode applies full Unicode case folding, e.g. "Straße" and "STRASSE" fold equal
func Unicode(s string) string {
	// a Caser keeps state, so it is never shared
	return cases.Fold().String(s)
}

// Parse return the Folder registered under name
func Parse(name string) (Folder, error) {
	if name == "" {
		return ASCII, nil
	}
	f, exist := FolderMapping[strings.ToLower(name)]
	if !exist {
		return nil, ErrUnknownFolder
	}
	return f, nil
}

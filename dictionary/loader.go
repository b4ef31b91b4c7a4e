package dictionary

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/Dreamacro/lexicon/common/batch"
	C "github.com/Dreamacro/lexicon/constant"
	"github.com/Dreamacro/lexicon/log"
)

var (
	// ErrDefaultNotFound is returned when no system word list can be loaded
	ErrDefaultNotFound = errors.New("unable to find default dictionary")

	dictionaryLocations = []string{
		"/usr/share/dict/words",
		"/usr/dict/words",
	}
)

// ReadWords reads one word per line. Surrounding space is trimmed, blank lines,
// lines starting with '#' and lines that are not valid UTF-8 are skipped.
func ReadWords(r io.Reader) ([]string, error) {
	words := []string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || !utf8.ValidString(line) {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// Load adds every word read from r to d and return how many were new
func Load(d C.Dictionary, r io.Reader) (int, error) {
	words, err := ReadWords(r)
	if err != nil {
		return 0, err
	}
	return addWords(d, words), nil
}

// LoadFile adds every word of the file at path to d
func LoadFile(d C.Dictionary, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	added, err := Load(d, f)
	if err != nil {
		return added, fmt.Errorf("read %s: %w", path, err)
	}
	return added, nil
}

// LoadFiles reads the files in parallel, at most concurrency at a time, and
// inserts them into d. The first failure stops files not started yet.
func LoadFiles(ctx context.Context, d *Guarded, paths []string, concurrency int) (int, error) {
	b, _ := batch.New(ctx, batch.WithConcurrencyNum(concurrency))

	for _, path := range paths {
		path := path
		b.Go(path, func() (interface{}, error) {
			f, err := os.Open(path)
			if err != nil {
				return nil, err
			}
			defer f.Close()

			words, err := ReadWords(f)
			if err != nil {
				return nil, err
			}

			added := d.AddWords(words)
			log.Debugln("[Dictionary] %s: %d words, %d new", path, len(words), added)
			return added, nil
		})
	}

	result, bErr := b.WaitAndGetResult()

	total := 0
	for _, r := range result {
		if n, ok := r.Value.(int); ok {
			total += n
		}
	}

	if bErr != nil {
		return total, fmt.Errorf("load %w", bErr)
	}
	return total, nil
}

// Default loads the first readable system word list into d
func Default(d C.Dictionary) (int, error) {
	for _, filename := range dictionaryLocations {
		added, err := LoadFile(d, filename)
		if err == nil {
			return added, nil
		}
	}

	return 0, ErrDefaultNotFound
}

func addWords(d C.Dictionary, words []string) int {
	if g, ok := d.(*Guarded); ok {
		return g.AddWords(words)
	}

	added := 0
	for _, w := range words {
		if d.AddWord(w) {
			added++
		}
	}
	return added
}

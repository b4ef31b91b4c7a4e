package dictionary

import (
	"bufio"
	"io"
	"strings"

	"github.com/Dreamacro/lexicon/component/trie"
)

// Dump writes every node of t in pre-order, one line each, indented by depth.
// Nodes ending a word are marked with '*'.
func Dump(w io.Writer, t *trie.Trie) error {
	bw := bufio.NewWriter(w)

	var err error
	t.Walk(func(word string, terminal bool) bool {
		depth := len([]rune(word))
		line := strings.Repeat("  ", depth) + word
		if terminal {
			line += " *"
		}
		_, err = bw.WriteString(line + "\n")
		return err == nil
	})
	if err != nil {
		return err
	}

	return bw.Flush()
}

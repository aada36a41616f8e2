package sandhi

import (
	"bufio"
	"os"
	"strings"
	"sync"

	"github.com/gahlautabhinav/Chand-Identifier/data"
)

// Lexicon is a read-only set of known Devanagari word forms used to rank
// candidate decompositions. The zero value is an empty lexicon.
//
// Lexicons are built once and never mutated afterwards, so a single
// Lexicon may be shared by any number of concurrent generators.
type Lexicon struct {
	words map[string]struct{}
}

// NewLexicon builds a lexicon from explicit words. Words are
// whitespace-trimmed; blanks are ignored.
func NewLexicon(words ...string) Lexicon {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return Lexicon{words: set}
}

// Load reads a newline-delimited word list from path. A missing or
// unreadable file is not an error: it yields an empty lexicon, degrading
// lexicon-overlap scoring to zero.
func Load(path string) Lexicon {
	f, err := os.Open(path)
	if err != nil {
		return Lexicon{}
	}
	defer f.Close()

	set := make(map[string]struct{})
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w != "" {
			set[w] = struct{}{}
		}
	}
	if sc.Err() != nil {
		return Lexicon{}
	}
	return Lexicon{words: set}
}

var (
	bootstrapOnce sync.Once
	bootstrapLex  Lexicon
)

// Bootstrap returns the small embedded lexicon that ships with the
// module. It is parsed once and shared.
func Bootstrap() Lexicon {
	bootstrapOnce.Do(func() {
		bootstrapLex = NewLexicon(strings.Split(data.BootstrapLexicon, "\n")...)
	})
	return bootstrapLex
}

// Contains reports whether w is a known word.
func (l Lexicon) Contains(w string) bool {
	_, ok := l.words[w]
	return ok
}

// Len returns the number of known words.
func (l Lexicon) Len() int {
	return len(l.words)
}

// Union returns a new lexicon holding the words of both l and other.
// Neither input is modified.
func (l Lexicon) Union(other Lexicon) Lexicon {
	set := make(map[string]struct{}, len(l.words)+len(other.words))
	for w := range l.words {
		set[w] = struct{}{}
	}
	for w := range other.words {
		set[w] = struct{}{}
	}
	return Lexicon{words: set}
}

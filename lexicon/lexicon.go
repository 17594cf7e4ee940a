// Package lexicon provides the word authority for the trainer: membership
// tests and ordered enumeration over a fixed, immutable word list.
package lexicon

import (
	"bufio"
	"errors"
	"io"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

// ErrUnavailable is returned by entry points that refuse to operate
// against an empty or unloaded lexicon. Generating or validating with a
// partial word set would silently reject everything.
var ErrUnavailable = errors.New("lexicon is not loaded or is empty")

// MinWordLength and MaxWordLength bound the words a lexicon accepts.
const (
	MinWordLength = 2
	MaxWordLength = 15
)

// Lexicon is an immutable set of legal words. Construct it once before
// first use; it is safe for concurrent readers thereafter.
type Lexicon struct {
	name  string
	words []string
	set   map[string]struct{}
}

// New builds a Lexicon from a word list. Words are uppercased; anything
// non-alphabetic or outside the 2-15 length range is dropped.
func New(name string, words []string) *Lexicon {
	lex := &Lexicon{
		name: name,
		set:  map[string]struct{}{},
	}
	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if !acceptable(w) {
			continue
		}
		if _, seen := lex.set[w]; seen {
			continue
		}
		lex.set[w] = struct{}{}
		lex.words = append(lex.words, w)
	}
	// Ascending length, then lexical.
	sort.Slice(lex.words, func(i, j int) bool {
		if len(lex.words[i]) != len(lex.words[j]) {
			return len(lex.words[i]) < len(lex.words[j])
		}
		return lex.words[i] < lex.words[j]
	})
	log.Debug().Str("lexicon", name).Int("words", len(lex.words)).
		Msg("built lexicon")
	return lex
}

// Load reads a word list, one word per line, and builds a Lexicon from it.
// Lines starting with '#' are skipped.
func Load(name string, r io.Reader) (*Lexicon, error) {
	scanner := bufio.NewScanner(r)
	var words []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return New(name, words), nil
}

func acceptable(w string) bool {
	if len(w) < MinWordLength || len(w) > MaxWordLength {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return false
		}
	}
	return true
}

// Name returns the lexicon's name.
func (lex *Lexicon) Name() string {
	return lex.name
}

// Size returns the number of words.
func (lex *Lexicon) Size() int {
	return len(lex.words)
}

// Ready returns ErrUnavailable if the lexicon is nil or empty.
func (lex *Lexicon) Ready() error {
	if lex == nil || len(lex.words) == 0 {
		return ErrUnavailable
	}
	return nil
}

// HasWord reports whether the word is legal. Lookups are case-sensitive;
// callers pass uppercase.
func (lex *Lexicon) HasWord(word string) bool {
	_, ok := lex.set[word]
	return ok
}

// Words returns all words, ascending by length and then lexically.
// Callers must not modify the returned slice.
func (lex *Lexicon) Words() []string {
	return lex.words
}

// WordsOfLength returns the words whose length is within [min, max],
// preserving the Words ordering.
func (lex *Lexicon) WordsOfLength(min, max int) []string {
	lo := sort.Search(len(lex.words), func(i int) bool {
		return len(lex.words[i]) >= min
	})
	hi := sort.Search(len(lex.words), func(i int) bool {
		return len(lex.words[i]) > max
	})
	return lex.words[lo:hi]
}

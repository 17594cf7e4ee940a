package lexicon

import (
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestNewFiltersAndSorts(t *testing.T) {
	is := is.New(t)
	lex := New("test", []string{
		"cat", "ZA", "a", "dog's", "house", "CAT", "toolongwordtoolongword", "an",
	})
	is.Equal(lex.Size(), 4) // cat deduped; a, dog's, long word dropped
	is.Equal(lex.Words(), []string{"AN", "ZA", "CAT", "HOUSE"})
}

func TestLoad(t *testing.T) {
	is := is.New(t)
	r := strings.NewReader("# a comment\nCAT\n\ndog\nQI\n")
	lex, err := Load("test", r)
	is.NoErr(err)
	is.Equal(lex.Size(), 3)
	is.True(lex.HasWord("DOG"))
	is.True(lex.HasWord("QI"))
	is.True(!lex.HasWord("# a comment"))
}

func TestHasWord(t *testing.T) {
	lex := New("test", []string{"CAT", "CATS"})
	assert.True(t, lex.HasWord("CAT"))
	assert.False(t, lex.HasWord("cat"))
	assert.False(t, lex.HasWord("DOG"))
}

func TestWordsOfLength(t *testing.T) {
	is := is.New(t)
	lex := New("test", []string{"AT", "CAT", "COAT", "COATS", "STOATS"})
	is.Equal(lex.WordsOfLength(3, 5), []string{"CAT", "COAT", "COATS"})
	is.Equal(lex.WordsOfLength(7, 15), []string{})
	is.Equal(len(lex.WordsOfLength(2, 15)), 5)
}

func TestReady(t *testing.T) {
	is := is.New(t)
	var nilLex *Lexicon
	is.Equal(nilLex.Ready(), ErrUnavailable)
	is.Equal(New("empty", nil).Ready(), ErrUnavailable)
	is.NoErr(New("ok", []string{"CAT"}).Ready())
}

package movegen

import (
	"context"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/rackdrill/rackdrill/board"
	"github.com/rackdrill/rackdrill/lexicon"
	"github.com/rackdrill/rackdrill/move"
	"github.com/rackdrill/rackdrill/testhelpers"
	"github.com/rackdrill/rackdrill/tiles"
)

// catBoard returns a board with CAT across the middle row, all three
// squares premium-consumed.
func catBoard() (*board.Board, board.Consumed) {
	b := board.New()
	consumed := board.NewConsumed()
	for i, letter := range []byte("CAT") {
		b.SetLetter(7, 6+i, letter)
		consumed.Mark(board.Pos{Row: 7, Col: 6 + i})
	}
	return b, consumed
}

func enumerate(t *testing.T, rackLetters string) []*move.Play {
	t.Helper()
	b, consumed := catBoard()
	e, err := NewEnumerator(testhelpers.TestLexicon())
	if err != nil {
		t.Fatal(err)
	}
	rack, err := tiles.RackFromString(rackLetters)
	if err != nil {
		t.Fatal(err)
	}
	plays, err := e.Enumerate(context.Background(), b, rack, consumed)
	if err != nil {
		t.Fatal(err)
	}
	return plays
}

func findPlay(plays []*move.Play, word, coords string) *move.Play {
	for _, p := range plays {
		if p.Word == word && p.BoardCoords() == coords {
			return p
		}
	}
	return nil
}

func TestEnumerateHooksS(t *testing.T) {
	is := is.New(t)
	plays := enumerate(t, "S")

	cats := findPlay(plays, "CATS", "8G")
	is.True(cats != nil)
	is.Equal(cats.Score, 6) // 3+1+1+1, the S square carries no premium
	is.Equal(cats.FreshCount(), 1)

	// AS hangs vertically off the existing A.
	as := findPlay(plays, "AS", "H8")
	is.True(as != nil)
}

func TestEnumerateFailsClosed(t *testing.T) {
	is := is.New(t)
	_, err := NewEnumerator(lexicon.New("empty", nil))
	is.Equal(err, lexicon.ErrUnavailable)
}

func TestEnumerateProperties(t *testing.T) {
	lex := testhelpers.TestLexicon()
	plays := enumerate(t, "SENATOR")
	assert.NotEmpty(t, plays)

	seen := map[string]bool{}
	rack, _ := tiles.RackFromString("SENATOR")
	for _, p := range plays {
		// The word is legal.
		assert.True(t, lex.HasWord(p.Word), "play %v", p)

		// Fresh letters are a sub-multiset of the rack.
		var used [26]int
		for _, tile := range p.FreshTiles() {
			used[tile.Letter-'A']++
		}
		for c := byte('A'); c <= 'Z'; c++ {
			assert.LessOrEqual(t, used[c-'A'], rack.Count(c), "play %v", p)
		}

		// The play reuses at least one board tile and places at least one.
		assert.Greater(t, p.FreshCount(), 0, "play %v", p)
		assert.Less(t, p.FreshCount(), len(p.Tiles), "play %v", p)

		// No duplicates.
		key := p.Word + p.BoardCoords()
		assert.False(t, seen[key], "duplicate play %v", p)
		seen[key] = true
	}
}

func TestEnumerateOrdering(t *testing.T) {
	plays := enumerate(t, "SENATOR")
	for i := 1; i < len(plays); i++ {
		assert.True(t, move.Less(plays[i-1], plays[i]) || plays[i-1].Equals(plays[i]),
			"plays out of order at %d", i)
	}
}

func TestEnumerateSingleThreadMatchesParallel(t *testing.T) {
	is := is.New(t)
	b, consumed := catBoard()
	lex := testhelpers.TestLexicon()
	rack, _ := tiles.RackFromString("SENATOR")

	e1, _ := NewEnumerator(lex)
	e1.SetThreads(1)
	e4, _ := NewEnumerator(lex)
	e4.SetThreads(4)

	p1, err := e1.Enumerate(context.Background(), b, rack, consumed)
	is.NoErr(err)
	p4, err := e4.Enumerate(context.Background(), b, rack, consumed)
	is.NoErr(err)

	is.Equal(len(p1), len(p4))
	for i := range p1 {
		is.True(p1[i].Equals(p4[i]))
		is.Equal(p1[i].Score, p4[i].Score)
	}
}

func TestEnumerateCancellation(t *testing.T) {
	is := is.New(t)
	b, consumed := catBoard()
	e, err := NewEnumerator(testhelpers.TestLexicon())
	is.NoErr(err)
	rack, _ := tiles.RackFromString("SENATOR")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = e.Enumerate(ctx, b, rack, consumed)
	is.Equal(err, context.Canceled)
}

package boardgen

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/rackdrill/rackdrill/board"
	"github.com/rackdrill/rackdrill/lexicon"
	"github.com/rackdrill/rackdrill/testhelpers"
	"github.com/rackdrill/rackdrill/tiles"
)

// buildOne retries Build across seeds until a board comes out; the
// builder is allowed to fail individual attempts.
func buildOne(t *testing.T) (*board.Board, board.Consumed) {
	t.Helper()
	for seed := uint64(1); seed <= 50; seed++ {
		bd, err := NewBuilder(testhelpers.TestLexicon(), tiles.NewRNG(seed))
		if err != nil {
			t.Fatal(err)
		}
		b, consumed, err := bd.Build()
		if err == nil {
			return b, consumed
		}
	}
	t.Fatal("no seed in 1..50 produced a board")
	return nil, nil
}

func TestNewBuilderFailsClosed(t *testing.T) {
	is := is.New(t)
	_, err := NewBuilder(lexicon.New("empty", nil), tiles.NewRNG(1))
	is.Equal(err, lexicon.ErrUnavailable)
}

func TestBuildCoversCenter(t *testing.T) {
	is := is.New(t)
	b, _ := buildOne(t)
	c := board.Center()
	is.True(b.HasLetter(c.Row, c.Col))
}

func TestBuildAllRunsAreWords(t *testing.T) {
	lex := testhelpers.TestLexicon()
	b, _ := buildOne(t)
	for _, run := range b.Runs() {
		assert.True(t, lex.HasWord(run.Word), "latent invalid word %q", run.Word)
	}
}

func TestBuildDensityBounds(t *testing.T) {
	is := is.New(t)
	b, _ := buildOne(t)
	is.True(b.TilesPlayed() >= 3)
	is.True(b.TilesPlayed() <= 40)
}

func TestBuildConsumesEveryTile(t *testing.T) {
	b, consumed := buildOne(t)
	for _, p := range b.FilledPositions() {
		assert.True(t, consumed.Has(p), "unconsumed tile at %v", p)
	}
}

func TestBuildIsConnected(t *testing.T) {
	is := is.New(t)
	b, _ := buildOne(t)
	filled := b.FilledPositions()
	is.True(len(filled) > 0)

	seen := map[board.Pos]bool{filled[0]: true}
	queue := []board.Pos{filled[0]}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, n := range []board.Pos{
			{Row: p.Row - 1, Col: p.Col}, {Row: p.Row + 1, Col: p.Col},
			{Row: p.Row, Col: p.Col - 1}, {Row: p.Row, Col: p.Col + 1},
		} {
			if b.HasLetter(n.Row, n.Col) && !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	is.Equal(len(seen), len(filled))
}

func TestBuildDeterministicForSeed(t *testing.T) {
	lex := testhelpers.TestLexicon()
	for seed := uint64(1); seed <= 5; seed++ {
		bd1, _ := NewBuilder(lex, tiles.NewRNG(seed))
		bd2, _ := NewBuilder(lex, tiles.NewRNG(seed))
		b1, _, err1 := bd1.Build()
		b2, _, err2 := bd2.Build()
		assert.Equal(t, err1 == nil, err2 == nil, "seed %d", seed)
		if err1 == nil {
			assert.Equal(t, b1.ToDisplayText(), b2.ToDisplayText(), "seed %d", seed)
		}
	}
}

package board

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestStandardLayoutCounts(t *testing.T) {
	b := New()
	counts := map[Bonus]int{}
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			counts[b.Bonus(r, c)]++
		}
	}
	assert.Equal(t, 8, counts[Bonus3WS])
	assert.Equal(t, 17, counts[Bonus2WS])
	assert.Equal(t, 12, counts[Bonus3LS])
	assert.Equal(t, 24, counts[Bonus2LS])
	assert.Equal(t, Bonus2WS, b.Bonus(7, 7)) // the center star doubles words
}

func TestBonusMultipliers(t *testing.T) {
	is := is.New(t)
	is.Equal(Bonus3WS.WordMultiplier(), 3)
	is.Equal(Bonus2WS.WordMultiplier(), 2)
	is.Equal(Bonus3LS.WordMultiplier(), 1)
	is.Equal(Bonus3LS.LetterMultiplier(), 3)
	is.Equal(Bonus2LS.LetterMultiplier(), 2)
	is.Equal(BonusNone.LetterMultiplier(), 1)
	is.Equal(BonusNone.WordMultiplier(), 1)
}

func placeWord(b *Board, word string, row, col int, vertical bool) {
	for i := 0; i < len(word); i++ {
		if vertical {
			b.SetLetter(row+i, col, word[i])
		} else {
			b.SetLetter(row, col+i, word[i])
		}
	}
}

func TestSetLetterNeverOverwrites(t *testing.T) {
	b := New()
	b.SetLetter(7, 7, 'A')
	// Re-placing the same letter is a no-op.
	b.SetLetter(7, 7, 'A')
	assert.Equal(t, 1, b.TilesPlayed())
	assert.Panics(t, func() { b.SetLetter(7, 7, 'B') })
}

func TestRunsSimpleCross(t *testing.T) {
	is := is.New(t)
	b := New()
	placeWord(b, "CAT", 7, 6, false)  // C(7,6) A(7,7) T(7,8)
	placeWord(b, "ANT", 7, 7, true)   // A(7,7) N(8,7) T(9,7), shares A
	runs := b.Runs()
	is.Equal(len(runs), 2)
	is.Equal(runs[0], Run{"CAT", Pos{7, 6}, false})
	is.Equal(runs[1], Run{"ANT", Pos{7, 7}, true})
}

func TestCrossWord(t *testing.T) {
	is := is.New(t)
	b := New()
	placeWord(b, "CAT", 7, 6, false)
	// Placing an S at (7,9) as part of a vertical word: the horizontal
	// cross word is CATS.
	word, start := b.CrossWord(Pos{7, 9}, 'S', true)
	is.Equal(word, "CATS")
	is.Equal(start, Pos{7, 6})

	// A new tile under the A forms a vertical cross word for a
	// horizontal main word.
	word, start = b.CrossWord(Pos{8, 7}, 'N', false)
	is.Equal(word, "AN")
	is.Equal(start, Pos{7, 7})

	// No neighbors: no cross word.
	word, _ = b.CrossWord(Pos{12, 12}, 'Q', false)
	is.Equal(word, "Q")
}

func TestCrossWordBothSides(t *testing.T) {
	is := is.New(t)
	b := New()
	b.SetLetter(6, 7, 'B')
	b.SetLetter(8, 7, 'N')
	// A placed between B and N vertically spans both.
	word, start := b.CrossWord(Pos{7, 7}, 'A', false)
	is.Equal(word, "BAN")
	is.Equal(start, Pos{6, 7})
}

func TestConsumed(t *testing.T) {
	is := is.New(t)
	c := NewConsumed()
	p := Pos{3, 4}
	is.True(!c.Has(p))
	c.Mark(p)
	is.True(c.Has(p))
	cp := c.Copy()
	cp.Mark(Pos{5, 5})
	is.True(!c.Has(Pos{5, 5}))
	is.True(cp.Has(p))
}

func TestCenterDistance(t *testing.T) {
	is := is.New(t)
	is.Equal(Center().CenterDistance(), 0)
	is.Equal(Pos{0, 0}.CenterDistance(), 14)
	is.Equal(Pos{7, 9}.CenterDistance(), 2)
}

func TestFilledPositions(t *testing.T) {
	b := New()
	placeWord(b, "AT", 7, 7, false)
	assert.Equal(t, []Pos{{7, 7}, {7, 8}}, b.FilledPositions())
}

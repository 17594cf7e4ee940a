package move

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/rackdrill/rackdrill/board"
)

func TestBoardCoords(t *testing.T) {
	type testCase struct {
		row      int
		col      int
		vertical bool
		coords   string
	}
	testCases := []testCase{
		{7, 3, false, "8D"},
		{7, 3, true, "D8"},
		{0, 0, false, "1A"},
		{14, 14, true, "O15"},
		{9, 7, false, "10H"},
	}
	for _, tc := range testCases {
		p := &Play{Row: tc.row, Col: tc.col, Vertical: tc.vertical}
		assert.Equal(t, tc.coords, p.BoardCoords())

		row, col, vertical, err := ParseBoardCoords(tc.coords)
		assert.NoError(t, err)
		assert.Equal(t, tc.row, row)
		assert.Equal(t, tc.col, col)
		assert.Equal(t, tc.vertical, vertical)
	}
}

func TestParseBoardCoordsInvalid(t *testing.T) {
	for _, coords := range []string{"", "8", "Z8", "8Z", "16A", "A16", "AA"} {
		_, _, _, err := ParseBoardCoords(coords)
		assert.Error(t, err, "coords %q", coords)
	}
}

func TestFreshTiles(t *testing.T) {
	is := is.New(t)
	p := &Play{
		Word: "CATS",
		Tiles: []Tile{
			{board.Pos{Row: 7, Col: 6}, 'C', false},
			{board.Pos{Row: 7, Col: 7}, 'A', false},
			{board.Pos{Row: 7, Col: 8}, 'T', false},
			{board.Pos{Row: 7, Col: 9}, 'S', true},
		},
	}
	is.Equal(p.FreshCount(), 1)
	is.Equal(p.FreshTiles()[0].Letter, byte('S'))
	is.Equal(p.PlacedMap(), map[board.Pos]byte{{Row: 7, Col: 9}: 'S'})
}

func TestLessOrdering(t *testing.T) {
	is := is.New(t)
	a := &Play{Word: "BAT", Row: 7, Col: 6, Score: 20}
	b := &Play{Word: "CAT", Row: 7, Col: 6, Score: 10}
	c := &Play{Word: "CAT", Row: 7, Col: 6, Score: 20}
	is.True(Less(a, b))  // higher score wins
	is.True(Less(a, c))  // equal score: lexically earlier word wins
	is.True(!Less(c, a)) // total order

	d := &Play{Word: "CAT", Row: 7, Col: 6, Vertical: true, Score: 20}
	is.True(Less(c, d)) // horizontal before vertical on full tie
}

func TestDefenseLess(t *testing.T) {
	is := is.New(t)
	a := &Play{Word: "ZA", Defense: 12.5}
	b := &Play{Word: "AB", Defense: -3}
	is.True(DefenseLess(a, b))
	b.Defense = 12.5
	is.True(DefenseLess(b, a)) // tie broken by word
}

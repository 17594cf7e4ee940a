// Package move defines the Play type: a single legal tile placement with
// its word, coordinates, orientation and scores.
package move

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rackdrill/rackdrill/board"
)

// A Tile is one cell of a play. Fresh tiles come off the rack this turn;
// the rest were already on the board and are played through.
type Tile struct {
	Pos    board.Pos
	Letter byte
	Fresh  bool
}

// A Play is a single placement: the full word formed in the main
// direction, its starting coordinate, orientation, ordered tiles, point
// score, and defensive heuristic value.
type Play struct {
	Word     string
	Row      int
	Col      int
	Vertical bool
	Tiles    []Tile
	Score    int
	Defense  float64
}

// FreshTiles returns only the tiles placed from the rack this turn.
func (p *Play) FreshTiles() []Tile {
	out := make([]Tile, 0, len(p.Tiles))
	for _, t := range p.Tiles {
		if t.Fresh {
			out = append(out, t)
		}
	}
	return out
}

// FreshCount returns how many rack tiles the play uses.
func (p *Play) FreshCount() int {
	n := 0
	for _, t := range p.Tiles {
		if t.Fresh {
			n++
		}
	}
	return n
}

// PlacedMap returns the play's fresh tiles as a coordinate-to-letter map,
// the shape a placement validator consumes.
func (p *Play) PlacedMap() map[board.Pos]byte {
	out := map[board.Pos]byte{}
	for _, t := range p.Tiles {
		if t.Fresh {
			out[t.Pos] = t.Letter
		}
	}
	return out
}

// BoardCoords returns the play's position in conventional notation: row
// number first for horizontal plays ("8D"), column letter first for
// vertical plays ("D8").
func (p *Play) BoardCoords() string {
	row := strconv.Itoa(p.Row + 1)
	col := string(rune('A' + p.Col))
	if p.Vertical {
		return col + row
	}
	return row + col
}

// ParseBoardCoords parses conventional coordinate notation back into row,
// column and orientation.
func ParseBoardCoords(coords string) (row, col int, vertical bool, err error) {
	coords = strings.ToUpper(strings.TrimSpace(coords))
	if len(coords) < 2 {
		return 0, 0, false, fmt.Errorf("badly formatted coordinate %q", coords)
	}
	if coords[0] >= 'A' && coords[0] <= 'O' {
		vertical = true
		col = int(coords[0] - 'A')
		row, err = strconv.Atoi(coords[1:])
	} else {
		last := coords[len(coords)-1]
		if last < 'A' || last > 'O' {
			return 0, 0, false, fmt.Errorf("badly formatted coordinate %q", coords)
		}
		col = int(last - 'A')
		row, err = strconv.Atoi(coords[:len(coords)-1])
	}
	if err != nil || row < 1 || row > board.Dim {
		return 0, 0, false, fmt.Errorf("badly formatted coordinate %q", coords)
	}
	return row - 1, col, vertical, nil
}

// String renders the play for display, e.g. `8D CAT (score: 10)`.
func (p *Play) String() string {
	return fmt.Sprintf("%s %s (score: %d)", p.BoardCoords(), p.Word, p.Score)
}

// Equals reports whether two plays describe the same placement.
func (p *Play) Equals(o *Play) bool {
	return p.Word == o.Word && p.Row == o.Row && p.Col == o.Col &&
		p.Vertical == o.Vertical
}

// Less is the canonical play ordering: higher score first, then word,
// row, column, and horizontal before vertical. It is a total order over
// distinct placements, so "best play" selection is reproducible.
func Less(a, b *Play) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return tieLess(a, b)
}

// DefenseLess orders by the defensive heuristic, with the same
// deterministic tie-break as Less.
func DefenseLess(a, b *Play) bool {
	if a.Defense != b.Defense {
		return a.Defense > b.Defense
	}
	return tieLess(a, b)
}

func tieLess(a, b *Play) bool {
	if a.Word != b.Word {
		return a.Word < b.Word
	}
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	if a.Col != b.Col {
		return a.Col < b.Col
	}
	return !a.Vertical && b.Vertical
}

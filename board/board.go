// Package board implements the 15x15 crossword game board: squares with
// bonus markings, letters in play, and the premium-consumption set that
// tracks multipliers already spent by earlier simulated turns.
package board

import (
	"fmt"
)

// Dim is the dimension of the (square) board.
const Dim = 15

// center is the star square.
const center = Dim / 2

// A Bonus is a premium-square marking, using the conventional plaintext
// runes.
type Bonus byte

const (
	// BonusNone is a plain square.
	BonusNone Bonus = ' '
	// Bonus3WS is a triple word score.
	Bonus3WS Bonus = '='
	// Bonus2WS is a double word score.
	Bonus2WS Bonus = '-'
	// Bonus3LS is a triple letter score.
	Bonus3LS Bonus = '"'
	// Bonus2LS is a double letter score.
	Bonus2LS Bonus = '\''
)

// LetterMultiplier returns the letter multiplier for this bonus (1 if the
// bonus is not a letter bonus).
func (b Bonus) LetterMultiplier() int {
	switch b {
	case Bonus2LS:
		return 2
	case Bonus3LS:
		return 3
	}
	return 1
}

// WordMultiplier returns the word multiplier for this bonus (1 if the
// bonus is not a word bonus).
func (b Bonus) WordMultiplier() int {
	switch b {
	case Bonus2WS:
		return 2
	case Bonus3WS:
		return 3
	}
	return 1
}

// standardLayout is the official premium-square layout: 8 triple words,
// 17 double words (center star included), 12 triple letters, 24 double
// letters.
var standardLayout = []string{
	`=  '   =   '  =`,
	` -   "   "   - `,
	`  -   ' '   -  `,
	`'  -   '   -  '`,
	`    -     -    `,
	` "   "   "   " `,
	`  '   ' '   '  `,
	`=  '   -   '  =`,
	`  '   ' '   '  `,
	` "   "   "   " `,
	`    -     -    `,
	`'  -   '   -  '`,
	`  -   ' '   -  `,
	` -   "   "   - `,
	`=  '   =   '  =`,
}

// Pos is a board coordinate. Row and Col are 0-based from the top left.
type Pos struct {
	Row int
	Col int
}

// InBounds reports whether the position is on the board.
func (p Pos) InBounds() bool {
	return p.Row >= 0 && p.Row < Dim && p.Col >= 0 && p.Col < Dim
}

// CenterDistance is the Manhattan distance from the center star.
func (p Pos) CenterDistance() int {
	return abs(p.Row-center) + abs(p.Col-center)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Center returns the star square's position.
func Center() Pos {
	return Pos{center, center}
}

// A Square is a single board square: its bonus marking and its letter,
// 0 if empty.
type Square struct {
	letter byte
	bonus  Bonus
}

// Board is the 15x15 grid. The generator mutates it while building; once
// a scenario is produced it is treated as read-only.
type Board struct {
	squares     [Dim][Dim]Square
	tilesPlayed int
}

// New creates an empty board with the standard premium-square layout.
func New() *Board {
	b := &Board{}
	for r, rowDesc := range standardLayout {
		for c := 0; c < Dim; c++ {
			b.squares[r][c].bonus = Bonus(rowDesc[c])
		}
	}
	return b
}

// Bonus returns the bonus marking at the given square.
func (b *Board) Bonus(row, col int) Bonus {
	return b.squares[row][col].bonus
}

// Letter returns the letter at the given square, or 0 if it is empty.
func (b *Board) Letter(row, col int) byte {
	return b.squares[row][col].letter
}

// HasLetter reports whether the square holds a letter. Out-of-bounds
// coordinates are empty.
func (b *Board) HasLetter(row, col int) bool {
	if !(Pos{row, col}).InBounds() {
		return false
	}
	return b.squares[row][col].letter != 0
}

// SetLetter writes a letter to a square. It panics if the square already
// holds a different letter; generator-placed tiles are never overwritten.
func (b *Board) SetLetter(row, col int, letter byte) {
	cur := b.squares[row][col].letter
	if cur == letter {
		return
	}
	if cur != 0 {
		panic(fmt.Sprintf("overwriting tile %c at %d,%d with %c",
			cur, row, col, letter))
	}
	b.squares[row][col].letter = letter
	b.tilesPlayed++
}

// TilesPlayed returns the number of tiles on the board.
func (b *Board) TilesPlayed() int {
	return b.tilesPlayed
}

// IsEmpty returns whether the board has no tiles.
func (b *Board) IsEmpty() bool {
	return b.tilesPlayed == 0
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	n := &Board{}
	n.squares = b.squares
	n.tilesPlayed = b.tilesPlayed
	return n
}

// FilledPositions returns every position holding a letter, in row-major
// order.
func (b *Board) FilledPositions() []Pos {
	out := make([]Pos, 0, b.tilesPlayed)
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			if b.squares[r][c].letter != 0 {
				out = append(out, Pos{r, c})
			}
		}
	}
	return out
}

// Consumed is the set of squares whose premium multiplier was already
// spent by a tile placed on an earlier simulated turn. A square in this
// set never re-applies its bonus.
type Consumed map[Pos]struct{}

// NewConsumed creates an empty consumption set.
func NewConsumed() Consumed {
	return Consumed{}
}

// Mark records the square's premium as spent.
func (c Consumed) Mark(p Pos) {
	c[p] = struct{}{}
}

// Has reports whether the square's premium has been spent.
func (c Consumed) Has(p Pos) bool {
	_, ok := c[p]
	return ok
}

// Copy returns a copy of the consumption set.
func (c Consumed) Copy() Consumed {
	n := make(Consumed, len(c))
	for p := range c {
		n[p] = struct{}{}
	}
	return n
}

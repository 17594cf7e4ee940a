package board

import (
	"fmt"
	"strings"
)

// A Run is a maximal horizontal or vertical sequence of contiguous
// letters on the board.
type Run struct {
	Word     string
	Start    Pos
	Vertical bool
}

// Runs returns every maximal run of length >= 2, horizontal runs first,
// both in row-major order of their starting square.
func (b *Board) Runs() []Run {
	var runs []Run
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			if b.HasLetter(r, c) && !b.HasLetter(r, c-1) {
				word, end := b.runFrom(r, c, false)
				if len(word) >= 2 {
					runs = append(runs, Run{word, Pos{r, c}, false})
				}
				c = end
			}
		}
	}
	for c := 0; c < Dim; c++ {
		for r := 0; r < Dim; r++ {
			if b.HasLetter(r, c) && !b.HasLetter(r-1, c) {
				word, end := b.runFrom(r, c, true)
				if len(word) >= 2 {
					runs = append(runs, Run{word, Pos{r, c}, true})
				}
				r = end
			}
		}
	}
	return runs
}

// runFrom walks forward from a run's first square, returning the word and
// the index (row for vertical, column for horizontal) of its last square.
func (b *Board) runFrom(row, col int, vertical bool) (string, int) {
	var sb strings.Builder
	r, c := row, col
	for b.HasLetter(r, c) {
		sb.WriteByte(b.Letter(r, c))
		if vertical {
			r++
		} else {
			c++
		}
	}
	if vertical {
		return sb.String(), r - 1
	}
	return sb.String(), c - 1
}

// CrossWord derives the full perpendicular run that would be formed by
// placing letter at pos as part of a play in the given main direction.
// It walks outward through contiguous existing letters on both sides.
// A length-1 result means the tile forms no cross word there.
func (b *Board) CrossWord(pos Pos, letter byte, mainVertical bool) (string, Pos) {
	dr, dc := 0, 1
	if !mainVertical {
		dr, dc = 1, 0
	}
	start := pos
	for b.HasLetter(start.Row-dr, start.Col-dc) {
		start.Row -= dr
		start.Col -= dc
	}
	var sb strings.Builder
	p := start
	for {
		if p == pos {
			sb.WriteByte(letter)
		} else {
			sb.WriteByte(b.Letter(p.Row, p.Col))
		}
		next := Pos{p.Row + dr, p.Col + dc}
		if next != pos && !b.HasLetter(next.Row, next.Col) {
			break
		}
		p = next
	}
	return sb.String(), start
}

// ToDisplayText returns a human-readable rendering of the board, with
// bonus squares shown by their markings on empty squares.
func (b *Board) ToDisplayText() string {
	var str string
	row := "   "
	for i := 0; i < Dim; i++ {
		row = row + fmt.Sprintf("%c", 'A'+i) + " "
	}
	str = str + row + "\n"
	str = str + "   " + strings.Repeat("-", Dim*2) + "\n"
	for r := 0; r < Dim; r++ {
		row := fmt.Sprintf("%2d|", r+1)
		for c := 0; c < Dim; c++ {
			row = row + b.displaySquare(r, c) + " "
		}
		row = row + "|"
		str = str + row + "\n"
	}
	str = str + "   " + strings.Repeat("-", Dim*2) + "\n"
	return "\n" + str
}

func (b *Board) displaySquare(row, col int) string {
	if b.HasLetter(row, col) {
		return string(b.Letter(row, col))
	}
	if bonus := b.Bonus(row, col); bonus != BonusNone {
		return string(byte(bonus))
	}
	return "."
}

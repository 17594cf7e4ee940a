// Package scoring computes the point value of a play under official
// multiplier rules: letter and word premiums on fresh, unspent squares,
// cross-word scores for every fresh tile, and the bingo bonus.
package scoring

import (
	"github.com/rackdrill/rackdrill/board"
	"github.com/rackdrill/rackdrill/move"
	"github.com/rackdrill/rackdrill/tiles"
)

// BingoBonus is awarded when a play uses the whole rack.
const BingoBonus = 50

// ScorePlay scores a play's tiles against the board. Premium squares only
// apply on tiles that are fresh this turn and whose square is not in the
// consumption set. Each fresh tile's perpendicular cross word (length >= 2)
// is scored with the same rule and added. ScorePlay never mutates its
// inputs; identical inputs always produce the identical score.
func ScorePlay(b *board.Board, consumed board.Consumed, playTiles []move.Tile,
	vertical bool) int {

	mainScore := 0
	wordMultiplier := 1
	crossTotal := 0
	freshCount := 0

	for _, t := range playTiles {
		value := tiles.Value(t.Letter)
		if !t.Fresh {
			// A played-through tile scores face value only; its cross
			// word, if any, was scored on a previous turn.
			mainScore += value
			continue
		}
		freshCount++
		lm, wm := 1, 1
		if !consumed.Has(t.Pos) {
			bonus := b.Bonus(t.Pos.Row, t.Pos.Col)
			lm = bonus.LetterMultiplier()
			wm = bonus.WordMultiplier()
		}
		mainScore += value * lm
		wordMultiplier *= wm

		if cross, _ := b.CrossWord(t.Pos, t.Letter, vertical); len(cross) >= 2 {
			crossTotal += crossWordScore(cross, t.Letter, lm, wm)
		}
	}

	total := mainScore*wordMultiplier + crossTotal
	if freshCount == tiles.RackSize {
		total += BingoBonus
	}
	return total
}

// crossWordScore scores a single cross word. Only the fresh tile can
// carry a premium; every other letter in the run is already on the board.
func crossWordScore(cross string, letter byte, lm, wm int) int {
	score := tiles.WordValue(cross) - tiles.Value(letter)
	score += tiles.Value(letter) * lm
	return score * wm
}

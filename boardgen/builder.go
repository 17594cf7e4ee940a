// Package boardgen grows a connected, fully rule-valid mid-game board
// from an empty grid by repeatedly hooking random words onto tiles
// already in play.
package boardgen

import (
	"errors"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/rackdrill/rackdrill/board"
	"github.com/rackdrill/rackdrill/lexicon"
)

const (
	// seed words run through the center square.
	seedMinLen = 3
	seedMaxLen = 5
	// growth words hook onto existing tiles.
	growthMinLen = 3
	growthMaxLen = 6

	// placementAttempts bounds the growth loop.
	placementAttempts = 200
	// targetTiles is where growth may stop, with stopChance per check.
	targetTiles = 18
	stopChance  = 0.4
	// maxTiles is the hard ceiling on board density.
	maxTiles = 40
)

// ErrNoBoard is returned when a build attempt does not produce a valid
// board. Callers retry; this is ordinary, recoverable failure.
var ErrNoBoard = errors.New("boardgen: could not build a valid board")

// Builder constructs random mid-game boards. It is not safe for
// concurrent use; each goroutine should own its own Builder.
type Builder struct {
	lex        *lexicon.Lexicon
	rng        *frand.RNG
	seedPool   []string
	growthPool []string
}

// NewBuilder creates a Builder over the given lexicon and randomizer.
// It fails closed if the lexicon is not ready.
func NewBuilder(lex *lexicon.Lexicon, rng *frand.RNG) (*Builder, error) {
	if err := lex.Ready(); err != nil {
		return nil, err
	}
	b := &Builder{
		lex:        lex,
		rng:        rng,
		seedPool:   lex.WordsOfLength(seedMinLen, seedMaxLen),
		growthPool: lex.WordsOfLength(growthMinLen, growthMaxLen),
	}
	if len(b.seedPool) == 0 || len(b.growthPool) == 0 {
		return nil, ErrNoBoard
	}
	return b, nil
}

// Build produces a connected board along with its premium-consumption
// set, or ErrNoBoard if this attempt failed. Every square a committed
// word touches is premium-consumed.
func (bd *Builder) Build() (*board.Board, board.Consumed, error) {
	b := board.New()
	consumed := board.NewConsumed()

	bd.placeSeed(b, consumed)

	for attempt := 0; attempt < placementAttempts; attempt++ {
		if bd.growOnce(b, consumed) {
			if b.TilesPlayed() >= maxTiles {
				break
			}
			if b.TilesPlayed() >= targetTiles && bd.rng.Float64() < stopChance {
				break
			}
		}
	}

	// Individual placement checks can miss compositions once several
	// words interact; scan every maximal run before accepting the board.
	for _, run := range b.Runs() {
		if !bd.lex.HasWord(run.Word) {
			log.Debug().Str("word", run.Word).Msg("rejecting board with invalid run")
			return nil, nil, ErrNoBoard
		}
	}
	return b, consumed, nil
}

// placeSeed centers a random 3-5 letter word horizontally through the
// middle row, covering the center square.
func (bd *Builder) placeSeed(b *board.Board, consumed board.Consumed) {
	word := bd.seedPool[bd.rng.Intn(len(bd.seedPool))]
	row := board.Center().Row
	col := board.Center().Col - len(word)/2
	for i := 0; i < len(word); i++ {
		b.SetLetter(row, col+i, word[i])
		consumed.Mark(board.Pos{Row: row, Col: col + i})
	}
}

// growOnce tries a single random word placement hooked onto a random
// existing tile. It reports whether a word was committed.
func (bd *Builder) growOnce(b *board.Board, consumed board.Consumed) bool {
	word := bd.growthPool[bd.rng.Intn(len(bd.growthPool))]
	filled := b.FilledPositions()
	anchor := filled[bd.rng.Intn(len(filled))]
	anchorLetter := b.Letter(anchor.Row, anchor.Col)

	var matches []int
	for i := 0; i < len(word); i++ {
		if word[i] == anchorLetter {
			matches = append(matches, i)
		}
	}
	if len(matches) == 0 {
		return false
	}
	hook := matches[bd.rng.Intn(len(matches))]
	vertical := bd.rng.Intn(2) == 1

	start := board.Pos{Row: anchor.Row, Col: anchor.Col - hook}
	if vertical {
		start = board.Pos{Row: anchor.Row - hook, Col: anchor.Col}
	}
	if !bd.placementLegal(b, word, start, vertical) {
		return false
	}

	for i := 0; i < len(word); i++ {
		p := cellAt(start, i, vertical)
		b.SetLetter(p.Row, p.Col, word[i])
		consumed.Mark(p)
	}
	return true
}

// placementLegal applies the same placement rules the validator enforces:
// in bounds, every overlap matches, at least one tile reused, the word is
// not extensible past its own ends, and every cross word a new letter
// forms is already legal.
func (bd *Builder) placementLegal(b *board.Board, word string, start board.Pos,
	vertical bool) bool {

	end := cellAt(start, len(word)-1, vertical)
	if !start.InBounds() || !end.InBounds() {
		return false
	}
	before := cellAt(start, -1, vertical)
	after := cellAt(start, len(word), vertical)
	if b.HasLetter(before.Row, before.Col) || b.HasLetter(after.Row, after.Col) {
		// Would silently lengthen an unintended word.
		return false
	}

	reused := 0
	for i := 0; i < len(word); i++ {
		p := cellAt(start, i, vertical)
		if b.HasLetter(p.Row, p.Col) {
			if b.Letter(p.Row, p.Col) != word[i] {
				return false
			}
			reused++
			continue
		}
		if cross, _ := b.CrossWord(p, word[i], vertical); len(cross) >= 2 {
			if !bd.lex.HasWord(cross) {
				return false
			}
		}
	}
	// Reusing a tile is what guarantees connectivity. A placement that
	// reuses every tile is a no-op replay.
	return reused >= 1 && reused < len(word)
}

func cellAt(start board.Pos, offset int, vertical bool) board.Pos {
	if vertical {
		return board.Pos{Row: start.Row + offset, Col: start.Col}
	}
	return board.Pos{Row: start.Row, Col: start.Col + offset}
}

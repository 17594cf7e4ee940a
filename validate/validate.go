// Package validate checks an ad-hoc set of user-placed tiles against the
// full placement rules and scores the resulting play. Every rejection is
// a typed value with a user-facing message; nothing here panics or
// returns an error past this boundary.
package validate

import (
	"fmt"
	"sort"

	"github.com/rackdrill/rackdrill/board"
	"github.com/rackdrill/rackdrill/lexicon"
	"github.com/rackdrill/rackdrill/move"
	"github.com/rackdrill/rackdrill/scoring"
)

// Reason classifies a placement rejection.
type Reason int

const (
	// ReasonNone means the placement is valid.
	ReasonNone Reason = iota
	// ReasonEmpty: no tiles were placed.
	ReasonEmpty
	// ReasonShape: tiles span multiple rows and multiple columns.
	ReasonShape
	// ReasonGap: an empty square sits inside the word's span.
	ReasonGap
	// ReasonNotAWord: the formed word is not in the lexicon, or a single
	// tile forms no word at all.
	ReasonNotAWord
	// ReasonDisconnected: the play does not touch the existing board.
	ReasonDisconnected
	// ReasonCrossWord: a perpendicular word formed by a new tile is not
	// in the lexicon.
	ReasonCrossWord
	// ReasonUnavailable: the lexicon is not loaded; validation fails
	// closed.
	ReasonUnavailable
)

// Result is the outcome of a validation: either a scored play, or a
// rejection reason plus the word that caused it (when one exists).
type Result struct {
	Play   *move.Play
	Reason Reason
	// Word is the offending word for ReasonNotAWord and ReasonCrossWord.
	Word string
}

// Valid reports whether the placement was accepted.
func (r *Result) Valid() bool {
	return r.Reason == ReasonNone
}

// Message returns a user-facing description of the outcome.
func (r *Result) Message() string {
	switch r.Reason {
	case ReasonNone:
		return fmt.Sprintf("valid play: %s", r.Play)
	case ReasonEmpty:
		return "place at least one tile"
	case ReasonShape:
		return "tiles must be in one row or one column"
	case ReasonGap:
		return "tiles must form one contiguous word"
	case ReasonNotAWord:
		if r.Word == "" {
			return "no word formed"
		}
		return fmt.Sprintf("%s is not a word", r.Word)
	case ReasonDisconnected:
		return "the play must connect to the existing board"
	case ReasonCrossWord:
		return fmt.Sprintf("%s is not a word", r.Word)
	case ReasonUnavailable:
		return "word list is not loaded yet"
	}
	return "invalid play"
}

// Validator validates user placements. Boards handed to it are treated
// as read-only.
type Validator struct {
	lex *lexicon.Lexicon
}

// NewValidator creates a Validator over the given lexicon.
func NewValidator(lex *lexicon.Lexicon) *Validator {
	return &Validator{lex: lex}
}

// Validate runs the placement state machine over the newly placed tiles.
// Placed coordinates must be empty board squares; colliding with an
// existing tile is the caller's rejection case, before validation.
func (v *Validator) Validate(b *board.Board, consumed board.Consumed,
	placed map[board.Pos]byte) *Result {

	if err := v.lex.Ready(); err != nil {
		return &Result{Reason: ReasonUnavailable}
	}
	if len(placed) == 0 {
		return &Result{Reason: ReasonEmpty}
	}

	positions := make([]board.Pos, 0, len(placed))
	for p := range placed {
		positions = append(positions, p)
	}
	sameRow, sameCol := true, true
	for _, p := range positions[1:] {
		if p.Row != positions[0].Row {
			sameRow = false
		}
		if p.Col != positions[0].Col {
			sameCol = false
		}
	}

	switch {
	case len(positions) == 1:
		return v.validateAmbiguous(b, consumed, placed, positions[0])
	case sameRow:
		return v.validateLine(b, consumed, placed, false)
	case sameCol:
		return v.validateLine(b, consumed, placed, true)
	default:
		return &Result{Reason: ReasonShape}
	}
}

// validateAmbiguous resolves the single-tile case: extract in both
// orientations and keep the longer word, horizontal on a tie.
func (v *Validator) validateAmbiguous(b *board.Board, consumed board.Consumed,
	placed map[board.Pos]byte, pos board.Pos) *Result {

	h, hOK := extractWord(b, placed, false)
	vert, vOK := extractWord(b, placed, true)
	switch {
	case hOK && len(h.word) >= 2 && (!vOK || len(vert.word) < 2 || len(h.word) >= len(vert.word)):
		return v.finish(b, consumed, placed, h, false)
	case vOK && len(vert.word) >= 2:
		return v.finish(b, consumed, placed, vert, true)
	default:
		return &Result{Reason: ReasonNotAWord}
	}
}

func (v *Validator) validateLine(b *board.Board, consumed board.Consumed,
	placed map[board.Pos]byte, vertical bool) *Result {

	ext, ok := extractWord(b, placed, vertical)
	if !ok {
		return &Result{Reason: ReasonGap}
	}
	return v.finish(b, consumed, placed, ext, vertical)
}

// extraction is a derived main word: its text, span start, and whether
// the span runs through any existing board tile.
type extraction struct {
	word      string
	start     board.Pos
	usesBoard bool
}

// extractWord extends outward from the placed tiles along the given
// orientation through contiguous filled squares, then walks the span.
// It fails if an empty square lies strictly inside the span.
func extractWord(b *board.Board, placed map[board.Pos]byte,
	vertical bool) (extraction, bool) {

	filled := func(p board.Pos) bool {
		if _, ok := placed[p]; ok {
			return true
		}
		return b.HasLetter(p.Row, p.Col)
	}
	letterAt := func(p board.Pos) byte {
		if l, ok := placed[p]; ok {
			return l
		}
		return b.Letter(p.Row, p.Col)
	}
	step := func(p board.Pos, d int) board.Pos {
		if vertical {
			return board.Pos{Row: p.Row + d, Col: p.Col}
		}
		return board.Pos{Row: p.Row, Col: p.Col + d}
	}

	// The span runs from the outermost placed tiles, extended through
	// any adjoining existing tiles.
	first, last := placedExtent(placed, vertical)
	for next := step(first, -1); next.InBounds() && filled(next); next = step(first, -1) {
		first = next
	}
	for next := step(last, 1); next.InBounds() && filled(next); next = step(last, 1) {
		last = next
	}

	ext := extraction{start: first}
	word := []byte{}
	for p := first; ; p = step(p, 1) {
		if !filled(p) {
			return extraction{}, false // gap inside the span
		}
		word = append(word, letterAt(p))
		if _, isNew := placed[p]; !isNew {
			ext.usesBoard = true
		}
		if p == last {
			break
		}
	}
	ext.word = string(word)
	return ext, true
}

// placedExtent returns the first and last placed positions along the
// orientation.
func placedExtent(placed map[board.Pos]byte, vertical bool) (board.Pos, board.Pos) {
	positions := sortedPositions(placed, vertical)
	return positions[0], positions[len(positions)-1]
}

// finish runs the word, connectivity and cross-word checks, then scores.
func (v *Validator) finish(b *board.Board, consumed board.Consumed,
	placed map[board.Pos]byte, ext extraction, vertical bool) *Result {

	if len(ext.word) < 2 {
		return &Result{Reason: ReasonNotAWord}
	}
	if !v.lex.HasWord(ext.word) {
		// Report the word that was actually formed; combining with
		// existing board letters can surprise the user.
		return &Result{Reason: ReasonNotAWord, Word: ext.word}
	}

	// Connectivity: run through an existing tile, or hang at least one
	// legal cross word off one.
	connected := ext.usesBoard
	for p, letter := range placed {
		if cross, _ := b.CrossWord(p, letter, vertical); len(cross) >= 2 &&
			v.lex.HasWord(cross) {
			connected = true
		}
	}
	if !connected {
		return &Result{Reason: ReasonDisconnected}
	}

	// Every cross word must independently be legal.
	for _, p := range sortedPositions(placed, vertical) {
		if cross, _ := b.CrossWord(p, placed[p], vertical); len(cross) >= 2 &&
			!v.lex.HasWord(cross) {
			return &Result{Reason: ReasonCrossWord, Word: cross}
		}
	}

	play := buildPlay(b, placed, ext, vertical)
	play.Score = scoring.ScorePlay(b, consumed, play.Tiles, vertical)
	return &Result{Play: play}
}

func sortedPositions(placed map[board.Pos]byte, vertical bool) []board.Pos {
	positions := make([]board.Pos, 0, len(placed))
	for p := range placed {
		positions = append(positions, p)
	}
	sort.Slice(positions, func(i, j int) bool {
		if vertical {
			return positions[i].Row < positions[j].Row
		}
		return positions[i].Col < positions[j].Col
	})
	return positions
}

func buildPlay(b *board.Board, placed map[board.Pos]byte, ext extraction,
	vertical bool) *move.Play {

	play := &move.Play{
		Word:     ext.word,
		Row:      ext.start.Row,
		Col:      ext.start.Col,
		Vertical: vertical,
	}
	p := ext.start
	for i := 0; i < len(ext.word); i++ {
		_, isNew := placed[p]
		play.Tiles = append(play.Tiles, move.Tile{
			Pos:    p,
			Letter: ext.word[i],
			Fresh:  isNew,
		})
		if vertical {
			p.Row++
		} else {
			p.Col++
		}
	}
	return play
}

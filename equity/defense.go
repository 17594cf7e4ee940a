// Package equity contains post-score play heuristics. The trainer's only
// calculator is defensive: it rewards claiming premium squares and
// penalizes plays that open lanes toward triple-word corners or sprawl
// away from the center.
package equity

import (
	"github.com/rackdrill/rackdrill/board"
	"github.com/rackdrill/rackdrill/move"
)

// Calculator is a calculator of positional play value. It is not a point
// score and may be negative.
type Calculator interface {
	Defense(play *move.Play, b *board.Board) float64
}

// Weights are the tunable parameters of the defense calculator. They are
// planning knobs, not rule constants.
type Weights struct {
	TripleWord   float64 `mapstructure:"triple-word"`
	DoubleWord   float64 `mapstructure:"double-word"`
	TripleLetter float64 `mapstructure:"triple-letter"`
	DoubleLetter float64 `mapstructure:"double-letter"`
	// LanePenalty applies per triple-word corner that shares a row or
	// column with a fresh tile within LaneReach Manhattan distance.
	LanePenalty float64 `mapstructure:"lane-penalty"`
	LaneReach   int     `mapstructure:"lane-reach"`
	// CenterDistance is multiplied by each fresh tile's Manhattan
	// distance from the center star.
	CenterDistance float64 `mapstructure:"center-distance"`
	// WordLength is multiplied by the length of the main word.
	WordLength float64 `mapstructure:"word-length"`
}

// DefaultWeights returns the stock tuning.
func DefaultWeights() Weights {
	return Weights{
		TripleWord:     60,
		DoubleWord:     25,
		TripleLetter:   15,
		DoubleLetter:   8,
		LanePenalty:    -12,
		LaneReach:      5,
		CenterDistance: -1.5,
		WordLength:     -2,
	}
}

// tripleWordSquares are the eight triple-word corners of the standard
// layout.
var tripleWordSquares = []board.Pos{
	{Row: 0, Col: 0}, {Row: 0, Col: 7}, {Row: 0, Col: 14},
	{Row: 7, Col: 0}, {Row: 7, Col: 14},
	{Row: 14, Col: 0}, {Row: 14, Col: 7}, {Row: 14, Col: 14},
}

// DefenseCalculator scores plays by positional safety.
type DefenseCalculator struct {
	weights Weights
}

// NewDefenseCalculator creates a calculator with the given weights.
func NewDefenseCalculator(w Weights) *DefenseCalculator {
	return &DefenseCalculator{weights: w}
}

// Defense computes the heuristic over the play's fresh tiles only:
// tiles already on the board neither claim premiums nor open lanes.
func (dc *DefenseCalculator) Defense(play *move.Play, b *board.Board) float64 {
	w := dc.weights
	score := 0.0
	for _, t := range play.Tiles {
		if !t.Fresh {
			continue
		}
		switch b.Bonus(t.Pos.Row, t.Pos.Col) {
		case board.Bonus3WS:
			score += w.TripleWord
		case board.Bonus2WS:
			score += w.DoubleWord
		case board.Bonus3LS:
			score += w.TripleLetter
		case board.Bonus2LS:
			score += w.DoubleLetter
		}
		for _, tw := range tripleWordSquares {
			if tw.Row != t.Pos.Row && tw.Col != t.Pos.Col {
				continue
			}
			dist := manhattan(tw, t.Pos)
			if dist > 0 && dist <= w.LaneReach {
				score += w.LanePenalty
			}
		}
		score += w.CenterDistance * float64(t.Pos.CenterDistance())
	}
	score += w.WordLength * float64(len(play.Word))
	return score
}

func manhattan(a, b board.Pos) int {
	d := 0
	if a.Row > b.Row {
		d += a.Row - b.Row
	} else {
		d += b.Row - a.Row
	}
	if a.Col > b.Col {
		d += a.Col - b.Col
	} else {
		d += b.Col - a.Col
	}
	return d
}

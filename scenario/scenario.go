// Package scenario orchestrates the engine into ready-to-play training
// positions: a generated board, a sampled rack, and the best offensive
// and defensive reference plays for that rack.
package scenario

import (
	"context"
	"errors"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/rackdrill/rackdrill/board"
	"github.com/rackdrill/rackdrill/boardgen"
	"github.com/rackdrill/rackdrill/equity"
	"github.com/rackdrill/rackdrill/lexicon"
	"github.com/rackdrill/rackdrill/move"
	"github.com/rackdrill/rackdrill/movegen"
	"github.com/rackdrill/rackdrill/tiles"
)

// ErrExhausted is returned when the generation budgets run out without
// producing a playable scenario. It is ordinary, recoverable failure:
// retry, or tell the user to try again.
var ErrExhausted = errors.New("scenario: generation budget exhausted")

// errTooFewPlays drives a retry of the whole scenario attempt.
var errTooFewPlays = errors.New("scenario: rack has too few legal plays")

// A Scenario is one training position.
type Scenario struct {
	Board    *board.Board
	Consumed board.Consumed
	Rack     *tiles.Rack
	// Plays are all legal plays for the rack, canonically ordered.
	Plays []*move.Play
	// BestOffense is the highest-scoring play; BestDefense the play with
	// the highest defensive heuristic. Ties break deterministically by
	// word, then row, then column.
	BestOffense *move.Play
	BestDefense *move.Play
}

// Generator produces scenarios. It is not safe for concurrent use; run
// one generation at a time, or give each goroutine its own Generator.
type Generator struct {
	// BoardBuildAttempts and Attempts bound the retry loops; MinPlays is
	// the fewest legal plays a sampled rack must have.
	BoardBuildAttempts uint
	Attempts           uint
	MinPlays           int

	lex     *lexicon.Lexicon
	rng     *frand.RNG
	builder *boardgen.Builder
	enum    *movegen.Enumerator
	calc    equity.Calculator
}

// NewGenerator wires a Generator with default budgets. It fails closed
// if the lexicon is not ready.
func NewGenerator(lex *lexicon.Lexicon, rng *frand.RNG,
	calc equity.Calculator) (*Generator, error) {

	builder, err := boardgen.NewBuilder(lex, rng)
	if err != nil {
		return nil, err
	}
	enum, err := movegen.NewEnumerator(lex)
	if err != nil {
		return nil, err
	}
	return &Generator{
		BoardBuildAttempts: 20,
		Attempts:           40,
		MinPlays:           4,
		lex:                lex,
		rng:                rng,
		builder:            builder,
		enum:               enum,
		calc:               calc,
	}, nil
}

// Enumerator exposes the generator's move enumerator, so a host can tune
// its worker count.
func (g *Generator) Enumerator() *movegen.Enumerator {
	return g.enum
}

// Generate produces a Scenario, retrying board builds and whole attempts
// within budget. Cancel the context to abandon a stale request; a
// canceled generation returns the context's error, never a partial
// scenario.
func (g *Generator) Generate(ctx context.Context) (*Scenario, error) {
	if err := g.lex.Ready(); err != nil {
		return nil, err
	}

	var sc *Scenario
	err := retry.Do(
		func() error {
			var err error
			sc, err = g.attempt(ctx)
			return err
		},
		retry.Attempts(g.Attempts),
		retry.Context(ctx),
		retry.DelayType(retry.FixedDelay),
		retry.Delay(0),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Debug().Err(err).Msg("scenario generation exhausted")
		return nil, ErrExhausted
	}
	return sc, nil
}

// attempt runs one full scenario attempt: board, rack, enumeration.
func (g *Generator) attempt(ctx context.Context) (*Scenario, error) {
	b, consumed, err := g.buildBoard(ctx)
	if err != nil {
		return nil, err
	}
	rack := tiles.Sample(g.rng, tiles.RackSize)

	plays, err := g.enum.Enumerate(ctx, b, rack, consumed)
	if err != nil {
		// Context errors must not burn further attempts.
		return nil, retry.Unrecoverable(err)
	}
	if len(plays) < g.MinPlays {
		log.Debug().Str("rack", rack.String()).Int("plays", len(plays)).
			Msg("rack too weak, retrying scenario")
		return nil, errTooFewPlays
	}

	for _, p := range plays {
		p.Defense = g.calc.Defense(p, b)
	}

	return &Scenario{
		Board:    b,
		Consumed: consumed,
		Rack:     rack,
		Plays:    plays,
		BestOffense: lo.MaxBy(plays, func(a, b *move.Play) bool {
			return move.Less(a, b)
		}),
		BestDefense: lo.MaxBy(plays, func(a, b *move.Play) bool {
			return move.DefenseLess(a, b)
		}),
	}, nil
}

func (g *Generator) buildBoard(ctx context.Context) (*board.Board, board.Consumed, error) {
	var b *board.Board
	var consumed board.Consumed
	err := retry.Do(
		func() error {
			var err error
			b, consumed, err = g.builder.Build()
			return err
		},
		retry.Attempts(g.BoardBuildAttempts),
		retry.Context(ctx),
		retry.DelayType(retry.FixedDelay),
		retry.Delay(0),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, nil, err
	}
	return b, consumed, nil
}

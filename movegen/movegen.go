// Package movegen enumerates every legal play available to a rack on a
// given board. The search is exhaustive: every lexicon word, both
// orientations, every start square the word fits from. The lexicon is
// sharded across worker goroutines; cancel the context to abandon an
// in-flight enumeration.
package movegen

import (
	"context"
	"runtime"
	"sort"
	"strconv"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/rackdrill/rackdrill/board"
	"github.com/rackdrill/rackdrill/lexicon"
	"github.com/rackdrill/rackdrill/move"
	"github.com/rackdrill/rackdrill/scoring"
	"github.com/rackdrill/rackdrill/tiles"
)

// cancelCheckInterval is how many words a worker processes between
// context checks.
const cancelCheckInterval = 64

// Enumerator finds all legal plays. It is stateless between calls and
// safe for concurrent use.
type Enumerator struct {
	lex     *lexicon.Lexicon
	threads int
}

// NewEnumerator creates an Enumerator. It fails closed on an unloaded
// lexicon.
func NewEnumerator(lex *lexicon.Lexicon) (*Enumerator, error) {
	if err := lex.Ready(); err != nil {
		return nil, err
	}
	threads := runtime.NumCPU()
	if threads < 1 {
		threads = 1
	}
	return &Enumerator{lex: lex, threads: threads}, nil
}

// SetThreads overrides the worker count, mainly for tests.
func (e *Enumerator) SetThreads(n int) {
	if n >= 1 {
		e.threads = n
	}
}

// Enumerate returns every legal play for the rack, scored, with
// duplicates suppressed. Plays are returned in canonical order (score
// descending, then word, row, column).
func (e *Enumerator) Enumerate(ctx context.Context, b *board.Board,
	rack *tiles.Rack, consumed board.Consumed) ([]*move.Play, error) {

	words := e.lex.Words()
	shards := make([][]*move.Play, e.threads)

	g, ctx := errgroup.WithContext(ctx)
	for t := 0; t < e.threads; t++ {
		t := t
		g.Go(func() error {
			var found []*move.Play
			for i := t; i < len(words); i += e.threads {
				if i/e.threads%cancelCheckInterval == 0 {
					select {
					case <-ctx.Done():
						return ctx.Err()
					default:
					}
				}
				found = e.tryWord(found, b, rack, consumed, words[i])
			}
			shards[t] = found
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var plays []*move.Play
	seen := map[uint64]struct{}{}
	for _, shard := range shards {
		for _, p := range shard {
			key := xxhash.Sum64String(playKey(p))
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			plays = append(plays, p)
		}
	}
	sort.Slice(plays, func(i, j int) bool { return move.Less(plays[i], plays[j]) })
	log.Debug().Int("plays", len(plays)).Str("rack", rack.String()).
		Msg("enumerated plays")
	return plays, nil
}

func playKey(p *move.Play) string {
	dir := "H"
	if p.Vertical {
		dir = "V"
	}
	return p.Word + "|" + strconv.Itoa(p.Row) + "|" + strconv.Itoa(p.Col) + "|" + dir
}

// tryWord appends every legal placement of one word to found.
func (e *Enumerator) tryWord(found []*move.Play, b *board.Board,
	rack *tiles.Rack, consumed board.Consumed, word string) []*move.Play {

	for _, vertical := range []bool{false, true} {
		lines, slots := board.Dim, board.Dim-len(word)+1
		if slots <= 0 {
			continue
		}
		for line := 0; line < lines; line++ {
			for slot := 0; slot < slots; slot++ {
				start := board.Pos{Row: line, Col: slot}
				if vertical {
					start = board.Pos{Row: slot, Col: line}
				}
				if p := e.tryPlacement(b, rack, consumed, word, start, vertical); p != nil {
					found = append(found, p)
				}
			}
		}
	}
	return found
}

// tryPlacement simulates placing word from start and returns the scored
// play if every legality condition holds:
//   - every occupied square matches the word's letter there,
//   - every empty square is covered by an available rack tile,
//   - at least one tile is reused (the play touches the board),
//   - at least one tile is fresh (not a replay of an existing word),
//   - no existing letter extends the word beyond either end,
//   - every cross word a fresh tile forms is a legal word.
func (e *Enumerator) tryPlacement(b *board.Board, rack *tiles.Rack,
	consumed board.Consumed, word string, start board.Pos,
	vertical bool) *move.Play {

	before := cellAt(start, -1, vertical)
	after := cellAt(start, len(word), vertical)
	if b.HasLetter(before.Row, before.Col) || b.HasLetter(after.Row, after.Col) {
		return nil
	}

	var need [26]int
	playTiles := make([]move.Tile, len(word))
	existing, fresh := 0, 0
	for i := 0; i < len(word); i++ {
		p := cellAt(start, i, vertical)
		letter := word[i]
		if b.HasLetter(p.Row, p.Col) {
			if b.Letter(p.Row, p.Col) != letter {
				return nil
			}
			existing++
			playTiles[i] = move.Tile{Pos: p, Letter: letter, Fresh: false}
			continue
		}
		need[letter-'A']++
		if need[letter-'A'] > rack.Count(letter) {
			return nil
		}
		if cross, _ := b.CrossWord(p, letter, vertical); len(cross) >= 2 {
			if !e.lex.HasWord(cross) {
				return nil
			}
		}
		fresh++
		playTiles[i] = move.Tile{Pos: p, Letter: letter, Fresh: true}
	}
	if existing == 0 || fresh == 0 {
		return nil
	}

	return &move.Play{
		Word:     word,
		Row:      start.Row,
		Col:      start.Col,
		Vertical: vertical,
		Tiles:    playTiles,
		Score:    scoring.ScorePlay(b, consumed, playTiles, vertical),
	}
}

func cellAt(start board.Pos, offset int, vertical bool) board.Pos {
	if vertical {
		return board.Pos{Row: start.Row + offset, Col: start.Col}
	}
	return board.Pos{Row: start.Row, Col: start.Col + offset}
}

// Package shell is the interactive trainer front end. It owns input and
// display only; all rules live in the engine packages it consumes.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/rackdrill/rackdrill/board"
	"github.com/rackdrill/rackdrill/config"
	"github.com/rackdrill/rackdrill/equity"
	"github.com/rackdrill/rackdrill/lexicon"
	"github.com/rackdrill/rackdrill/move"
	"github.com/rackdrill/rackdrill/scenario"
	"github.com/rackdrill/rackdrill/tiles"
	"github.com/rackdrill/rackdrill/validate"
)

// generateTimeout bounds a single scenario generation.
const generateTimeout = 60 * time.Second

// Controller runs the interactive loop.
type Controller struct {
	l   *readline.Instance
	cfg *config.Config
	lex *lexicon.Lexicon

	gen       *scenario.Generator
	validator *validate.Validator
	cur       *scenario.Scenario
	revealed  bool
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

var completer = readline.NewPrefixCompleter(
	readline.PcItem("gen"),
	readline.PcItem("show"),
	readline.PcItem("rack"),
	readline.PcItem("moves"),
	readline.PcItem("best"),
	readline.PcItem("play"),
	readline.PcItem("seed"),
	readline.PcItem("help"),
	readline.PcItem("exit"),
)

// NewController wires the shell over a loaded lexicon and config.
func NewController(cfg *config.Config, lex *lexicon.Lexicon) (*Controller, error) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mrackdrill>\033[0m ",
		HistoryFile:     "/tmp/rackdrill_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		AutoComplete:        completer,
		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	sc := &Controller{l: l, cfg: cfg, lex: lex}
	if err := sc.reseed(cfg.Seed); err != nil {
		return nil, err
	}
	sc.validator = validate.NewValidator(lex)
	return sc, nil
}

// reseed rebuilds the generator around a fresh randomizer.
func (sc *Controller) reseed(seed uint64) error {
	gen, err := scenario.NewGenerator(sc.lex, tiles.NewRNG(seed),
		equity.NewDefenseCalculator(sc.cfg.DefenseWeights))
	if err != nil {
		return err
	}
	gen.BoardBuildAttempts = sc.cfg.BoardBuildAttempts
	gen.Attempts = sc.cfg.ScenarioAttempts
	gen.MinPlays = sc.cfg.MinPlays
	if sc.cfg.Threads > 0 {
		gen.Enumerator().SetThreads(sc.cfg.Threads)
	}
	sc.gen = gen
	return nil
}

// Loop reads and executes commands until exit.
func (sc *Controller) Loop() {
	defer sc.l.Close()
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields, err := shellquote.Split(line)
		if err != nil {
			showMessage("bad input: "+err.Error(), sc.l.Stderr())
			continue
		}
		if fields[0] == "exit" || fields[0] == "quit" {
			break
		}
		sc.execute(fields[0], fields[1:])
	}
	log.Debug().Msg("exiting readline loop")
}

func (sc *Controller) execute(cmd string, args []string) {
	var err error
	switch cmd {
	case "gen":
		err = sc.generate()
	case "show":
		err = sc.show()
	case "rack":
		err = sc.showRack()
	case "moves":
		err = sc.moves(args)
	case "best":
		err = sc.best()
	case "play":
		err = sc.play(args)
	case "seed":
		err = sc.seed(args)
	case "help":
		usage(sc.l.Stderr())
	default:
		err = fmt.Errorf("unknown command %q; try help", cmd)
	}
	if err != nil {
		showMessage(err.Error(), sc.l.Stderr())
	}
}

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "gen - generate a new training scenario\n")
	io.WriteString(w, "show - display the board and your rack\n")
	io.WriteString(w, "rack - display your rack\n")
	io.WriteString(w, "moves [n] - show the top n legal plays (default 10)\n")
	io.WriteString(w, "best - reveal the best offensive and defensive plays\n")
	io.WriteString(w, "play <coords> <word> - try a placement, e.g. play 8D CATS\n")
	io.WriteString(w, "    row-first coords (8D) play across, column-first (D8) play down\n")
	io.WriteString(w, "seed <n> - reseed the generator for reproducible scenarios\n")
	io.WriteString(w, "exit - leave the trainer\n")
}

func (sc *Controller) generate() error {
	ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
	defer cancel()

	newSc, err := sc.gen.Generate(ctx)
	if err != nil {
		if errors.Is(err, scenario.ErrExhausted) {
			return errors.New("could not generate a scenario, try again")
		}
		return err
	}
	sc.cur = newSc
	sc.revealed = false
	return sc.show()
}

func (sc *Controller) scenarioReady() error {
	if sc.cur == nil {
		return errors.New("no scenario yet; run gen first")
	}
	return nil
}

func (sc *Controller) show() error {
	if err := sc.scenarioReady(); err != nil {
		return err
	}
	showMessage(sc.cur.Board.ToDisplayText(), sc.l.Stderr())
	return sc.showRack()
}

func (sc *Controller) showRack() error {
	if err := sc.scenarioReady(); err != nil {
		return err
	}
	showMessage("rack: "+sc.cur.Rack.String(), sc.l.Stderr())
	return nil
}

func (sc *Controller) moves(args []string) error {
	if err := sc.scenarioReady(); err != nil {
		return err
	}
	n := 10
	if len(args) > 0 {
		var err error
		if n, err = strconv.Atoi(args[0]); err != nil || n < 1 {
			return errors.New("moves takes a positive count")
		}
	}
	plays := make([]*move.Play, len(sc.cur.Plays))
	copy(plays, sc.cur.Plays)
	sort.Slice(plays, func(i, j int) bool { return move.Less(plays[i], plays[j]) })
	if n > len(plays) {
		n = len(plays)
	}
	for i := 0; i < n; i++ {
		showMessage(fmt.Sprintf("%2d: %s (defense: %.1f)", i+1, plays[i],
			plays[i].Defense), sc.l.Stderr())
	}
	return nil
}

func (sc *Controller) best() error {
	if err := sc.scenarioReady(); err != nil {
		return err
	}
	sc.revealed = true
	showMessage("best offensive: "+sc.cur.BestOffense.String(), sc.l.Stderr())
	showMessage(fmt.Sprintf("best defensive: %s (defense: %.1f)",
		sc.cur.BestDefense, sc.cur.BestDefense.Defense), sc.l.Stderr())
	return nil
}

func (sc *Controller) play(args []string) error {
	if err := sc.scenarioReady(); err != nil {
		return err
	}
	if len(args) != 2 {
		return errors.New("play takes coordinates and a word, e.g. play 8D CATS")
	}
	row, col, vertical, err := move.ParseBoardCoords(args[0])
	if err != nil {
		return err
	}
	word := strings.ToUpper(args[1])

	placed, err := sc.placedTiles(word, row, col, vertical)
	if err != nil {
		return err
	}
	res := sc.validator.Validate(sc.cur.Board, sc.cur.Consumed, placed)
	showMessage(res.Message(), sc.l.Stderr())
	if res.Valid() {
		sc.gradePlay(res.Play)
	}
	return nil
}

// placedTiles maps the typed word onto the board, playing through any
// matching tiles already there. Colliding with a different letter is
// rejected here, before the validator sees the placement.
func (sc *Controller) placedTiles(word string, row, col int,
	vertical bool) (map[board.Pos]byte, error) {

	placed := map[board.Pos]byte{}
	b := sc.cur.Board
	for i := 0; i < len(word); i++ {
		p := board.Pos{Row: row, Col: col + i}
		if vertical {
			p = board.Pos{Row: row + i, Col: col}
		}
		if !p.InBounds() {
			return nil, errors.New("that word runs off the board")
		}
		if b.HasLetter(p.Row, p.Col) {
			if b.Letter(p.Row, p.Col) != word[i] {
				return nil, fmt.Errorf("the %s square already holds %c",
					(&move.Play{Row: p.Row, Col: p.Col}).BoardCoords(),
					b.Letter(p.Row, p.Col))
			}
			continue
		}
		placed[p] = word[i]
	}
	if len(placed) == 0 {
		return nil, errors.New("that word is already on the board")
	}
	return placed, nil
}

func (sc *Controller) seed(args []string) error {
	if len(args) != 1 {
		return errors.New("seed takes one number")
	}
	n, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return errors.New("seed takes one number")
	}
	if err := sc.reseed(n); err != nil {
		return err
	}
	sc.cur = nil
	sc.revealed = false
	showMessage("reseeded; run gen for a fresh scenario", sc.l.Stderr())
	return nil
}

func (sc *Controller) gradePlay(p *move.Play) {
	w := sc.l.Stderr()
	best := sc.cur.BestOffense
	switch {
	case p.Score >= best.Score:
		showMessage("that is the best play available!", w)
	default:
		showMessage(fmt.Sprintf("good for %d points; the best play scores %d",
			p.Score, best.Score), w)
		if !sc.revealed {
			showMessage("type best to reveal the top plays", w)
		}
	}
}

package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rackdrill/rackdrill/config"
	"github.com/rackdrill/rackdrill/lexicon"
	"github.com/rackdrill/rackdrill/shell"
)

var (
	configPath = flag.String("config", "", "path to a rackdrill config file")
	debug      = flag.Bool("debug", false, "enable debug logging")
)

func main() {
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}

	f, err := os.Open(cfg.LexiconPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.LexiconPath).
			Msg("opening word list; set RACKDRILL_LEXICON_PATH")
	}
	lex, err := lexicon.Load(cfg.LexiconName, f)
	f.Close()
	if err != nil {
		log.Fatal().Err(err).Msg("loading word list")
	}
	if err := lex.Ready(); err != nil {
		log.Fatal().Err(err).Msg("word list is empty")
	}
	log.Info().Str("lexicon", lex.Name()).Int("words", lex.Size()).
		Msg("lexicon loaded")

	sc, err := shell.NewController(cfg, lex)
	if err != nil {
		log.Fatal().Err(err).Msg("starting shell")
	}
	sc.Loop()
}

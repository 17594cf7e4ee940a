// Package config loads trainer configuration from an optional config
// file and RACKDRILL_-prefixed environment variables.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/rackdrill/rackdrill/equity"
)

// Config holds everything the trainer binary needs to wire the engine.
type Config struct {
	// LexiconPath is the word list file, one word per line.
	LexiconPath string
	// LexiconName labels the loaded lexicon.
	LexiconName string
	// Seed makes generation reproducible; 0 means random.
	Seed uint64
	// Threads overrides the move enumerator's worker count; 0 means one
	// per CPU.
	Threads int

	// Retry budgets for scenario generation.
	BoardBuildAttempts uint
	ScenarioAttempts   uint
	// MinPlays is the fewest legal plays a scenario must offer.
	MinPlays int

	// DefenseWeights tunes the defensive heuristic.
	DefenseWeights equity.Weights
}

// Load reads configuration. A non-empty configFile must exist; otherwise
// an optional rackdrill.yaml in the working directory is used if present.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("rackdrill")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("lexicon-path", "./data/words.txt")
	v.SetDefault("lexicon-name", "default")
	v.SetDefault("seed", 0)
	v.SetDefault("threads", 0)
	v.SetDefault("board-build-attempts", 20)
	v.SetDefault("scenario-attempts", 40)
	v.SetDefault("min-plays", 4)

	dw := equity.DefaultWeights()
	v.SetDefault("defense.triple-word", dw.TripleWord)
	v.SetDefault("defense.double-word", dw.DoubleWord)
	v.SetDefault("defense.triple-letter", dw.TripleLetter)
	v.SetDefault("defense.double-letter", dw.DoubleLetter)
	v.SetDefault("defense.lane-penalty", dw.LanePenalty)
	v.SetDefault("defense.lane-reach", dw.LaneReach)
	v.SetDefault("defense.center-distance", dw.CenterDistance)
	v.SetDefault("defense.word-length", dw.WordLength)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName("rackdrill")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
				return nil, err
			}
		}
	}

	return &Config{
		LexiconPath:        v.GetString("lexicon-path"),
		LexiconName:        v.GetString("lexicon-name"),
		Seed:               v.GetUint64("seed"),
		Threads:            v.GetInt("threads"),
		BoardBuildAttempts: v.GetUint("board-build-attempts"),
		ScenarioAttempts:   v.GetUint("scenario-attempts"),
		MinPlays:           v.GetInt("min-plays"),
		DefenseWeights: equity.Weights{
			TripleWord:     v.GetFloat64("defense.triple-word"),
			DoubleWord:     v.GetFloat64("defense.double-word"),
			TripleLetter:   v.GetFloat64("defense.triple-letter"),
			DoubleLetter:   v.GetFloat64("defense.double-letter"),
			LanePenalty:    v.GetFloat64("defense.lane-penalty"),
			LaneReach:      v.GetInt("defense.lane-reach"),
			CenterDistance: v.GetFloat64("defense.center-distance"),
			WordLength:     v.GetFloat64("defense.word-length"),
		},
	}, nil
}

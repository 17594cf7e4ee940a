// Package testhelpers provides a small fixed lexicon for engine tests,
// so tests do not depend on an external word list file.
package testhelpers

import (
	"github.com/rackdrill/rackdrill/lexicon"
)

// testWords is a compact, heavily interlocking word set. Short hooks
// (AN, AT, TA, etc.) make random board growth and move enumeration
// productive even with a tiny list.
var testWords = []string{
	// two letters
	"AB", "AN", "AR", "AS", "AT", "BA", "BE", "EN", "ER", "ES", "ET",
	"IN", "IS", "IT", "LA", "NA", "NE", "NO", "ON", "OR", "OS", "RE",
	"SO", "TA", "TI", "TO",
	// three letters
	"ANT", "ARE", "ART", "ATE", "BAN", "BAR", "BAT", "BET", "CAT",
	"COT", "EAR", "EAT", "ERA", "ETA", "NET", "NOR", "NOT", "OAR",
	"OAT", "ONE", "ORE", "RAN", "RAT", "ROE", "ROT", "SEA", "SET",
	"SIT", "SON", "TAN", "TAR", "TEA", "TEN", "TIE", "TIN", "TON",
	"TOE", "TOR",
	// four letters
	"ANTE", "ANTS", "BANS", "BARE", "BARN", "BATS", "BEAR", "BEAT",
	"CATS", "COTS", "EARN", "EARS", "EAST", "EATS", "NEAR", "NEAT",
	"NEST", "NOTE", "OARS", "OATS", "RANT", "RATE", "RATS", "RENT",
	"ROTE", "SANE", "SEAT", "SENT", "STAR", "TANS", "TARE", "TARS",
	"TEAR", "TEAS", "TENS", "TINS", "TONE", "TONS", "TORE", "TORN",
	// five and six letters
	"ANTES", "BARNS", "BEARS", "BEATS", "EARNS", "NEARS", "NOTES",
	"RANTS", "RATES", "RENTS", "ROTES", "SEATS", "STARE", "TEARS",
	"TONES", "ASTERN", "RATTAN", "SONATA",
}

// TestLexicon returns the fixed test word list as a built Lexicon.
func TestLexicon() *lexicon.Lexicon {
	return lexicon.New("test", testWords)
}

// TestWords returns a copy of the raw test word list.
func TestWords() []string {
	out := make([]string, len(testWords))
	copy(out, testWords)
	return out
}

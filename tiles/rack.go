package tiles

import (
	"fmt"
	"sort"
)

// Rack is a multiset of up to RackSize uppercase letters. The zero count
// array maps letter - 'A' to the number of that tile on the rack.
type Rack struct {
	counts     [26]int
	numLetters int
}

// NewRack creates an empty rack.
func NewRack() *Rack {
	return &Rack{}
}

// RackFromString creates a Rack from a string of uppercase letters.
func RackFromString(letters string) (*Rack, error) {
	r := NewRack()
	for i := 0; i < len(letters); i++ {
		c := letters[i]
		if c < 'A' || c > 'Z' {
			return nil, fmt.Errorf("rack: invalid letter %q", string(c))
		}
		r.Add(c)
	}
	return r, nil
}

// Add puts a tile on the rack.
func (r *Rack) Add(letter byte) {
	r.counts[letter-'A']++
	r.numLetters++
}

// Take removes one tile of the given letter. It returns false if the rack
// has none of that letter.
func (r *Rack) Take(letter byte) bool {
	if letter < 'A' || letter > 'Z' || r.counts[letter-'A'] == 0 {
		return false
	}
	r.counts[letter-'A']--
	r.numLetters--
	return true
}

// Count returns how many tiles of the given letter are on the rack.
func (r *Rack) Count(letter byte) int {
	if letter < 'A' || letter > 'Z' {
		return 0
	}
	return r.counts[letter-'A']
}

// NumTiles returns the number of tiles on the rack.
func (r *Rack) NumTiles() int {
	return r.numLetters
}

// Copy returns a deep copy of this rack.
func (r *Rack) Copy() *Rack {
	n := &Rack{numLetters: r.numLetters}
	n.counts = r.counts
	return n
}

// CopyFrom overwrites this rack's contents with another's.
func (r *Rack) CopyFrom(other *Rack) {
	r.counts = other.counts
	r.numLetters = other.numLetters
}

// Letters returns the rack's tiles in alphabetical order.
func (r *Rack) Letters() []byte {
	out := make([]byte, 0, r.numLetters)
	for i, count := range r.counts {
		for j := 0; j < count; j++ {
			out = append(out, byte('A'+i))
		}
	}
	return out
}

// ScoreOn returns the total base point value of the tiles on the rack.
func (r *Rack) ScoreOn() int {
	score := 0
	for i, count := range r.counts {
		score += count * letterValues[i]
	}
	return score
}

// String returns the rack's letters in alphabetical order.
func (r *Rack) String() string {
	letters := r.Letters()
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return string(letters)
}

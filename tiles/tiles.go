// Package tiles holds the English tile set: letter point values, the
// standard distribution used for rack sampling, and the Rack multiset.
package tiles

import (
	"lukechampine.com/frand"
)

// RackSize is the number of tiles on a full rack.
const RackSize = 7

// letterValues are the standard English point values, indexed by letter - 'A'.
var letterValues = [26]int{
	1,  // A
	3,  // B
	3,  // C
	2,  // D
	1,  // E
	4,  // F
	2,  // G
	4,  // H
	1,  // I
	8,  // J
	5,  // K
	1,  // L
	3,  // M
	1,  // N
	1,  // O
	3,  // P
	10, // Q
	1,  // R
	1,  // S
	1,  // T
	1,  // U
	4,  // V
	4,  // W
	8,  // X
	4,  // Y
	10, // Z
}

// distribution is the standard English tile distribution without blanks.
// There is no bag or exchange mechanic; this only drives rack sampling.
var distribution = [26]int{
	9, 2, 2, 4, 12, 2, 3, 2, 9, 1, 1, 4, 2,
	6, 8, 2, 1, 6, 4, 6, 4, 2, 2, 1, 2, 1,
}

// Value returns the point value of an uppercase letter. Unknown bytes
// are worth zero.
func Value(letter byte) int {
	if letter < 'A' || letter > 'Z' {
		return 0
	}
	return letterValues[letter-'A']
}

// WordValue sums the base point values of every letter in the word,
// with no multipliers applied.
func WordValue(word string) int {
	score := 0
	for i := 0; i < len(word); i++ {
		score += Value(word[i])
	}
	return score
}

// Sample draws n tiles without replacement from the standard distribution,
// using the given randomizer. It never draws more of a letter than the
// distribution holds.
func Sample(rng *frand.RNG, n int) *Rack {
	pool := make([]byte, 0, 98)
	for i, count := range distribution {
		for j := 0; j < count; j++ {
			pool = append(pool, byte('A'+i))
		}
	}
	if n > len(pool) {
		n = len(pool)
	}
	// Partial Fisher-Yates: only the first n positions need shuffling.
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	r := NewRack()
	for i := 0; i < n; i++ {
		r.Add(pool[i])
	}
	return r
}

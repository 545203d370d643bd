// Package generator draws combinations that have not been emitted yet.
//
// A draw first tries a bounded number of uniform random samples and, if all
// of them hit already seen keys, walks the whole space in a fixed order and
// returns the first unseen combination. Random attempts may repeat the same
// combination; they are plain rejection sampling.
//
// The generator only reads the seen set. Callers add the key once the
// result is actually shown.
package generator

import (
	"iter"

	"github.com/sandevgo/fakenews/internal/core"
)

// Space is a finite set of combinations of type C.
type Space[C any] interface {
	// Sample draws one combination uniformly from each axis.
	Sample(r core.Rand) C
	// All yields every combination in a deterministic order.
	All() iter.Seq[C]
	// Key identifies a combination for uniqueness tracking.
	Key(c C) string
	// Size is the number of distinct keys in the space.
	Size() int
}

// Generate returns a combination whose key is not in seen, or
// core.ErrExhausted when every combination of space has been seen.
func Generate[C any](space Space[C], seen *SeenSet, attempts int, r core.Rand) (C, error) {
	if c, ok := tryRandom(space, seen, attempts, r); ok {
		return c, nil
	}
	if c, ok := enumerateExhaustive(space, seen); ok {
		return c, nil
	}
	var zero C
	return zero, core.ErrExhausted
}

func tryRandom[C any](space Space[C], seen *SeenSet, attempts int, r core.Rand) (C, bool) {
	for range attempts {
		c := space.Sample(r)
		if !seen.Has(space.Key(c)) {
			return c, true
		}
	}
	var zero C
	return zero, false
}

func enumerateExhaustive[C any](space Space[C], seen *SeenSet) (C, bool) {
	for c := range space.All() {
		if !seen.Has(space.Key(c)) {
			return c, true
		}
	}
	var zero C
	return zero, false
}

// Exhausted reports whether seen already covers the whole space.
// Cheap check done before Generate to skip the fallback scan.
func Exhausted[C any](space Space[C], seen *SeenSet) bool {
	return seen.Len() >= space.Size()
}

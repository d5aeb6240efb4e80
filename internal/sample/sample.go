// Package sample draws entries of extracted analyzer output for manual audit.
package sample

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/farcloser/assay/internal/types"
)

var (
	ErrTooManySamples  = errors.New("more samples requested than entries available")
	ErrNegativeSamples = errors.New("sample count must not be negative")
)

// Uniform draws count distinct entries of the set without replacement, in random order.
// The count is validated before anything is drawn.
func Uniform(set types.StringSet, count int) ([]string, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSamples, count)
	}

	if count > len(set) {
		return nil, fmt.Errorf("%w: you requested %d samples, but I only have %d entries",
			ErrTooManySamples, count, len(set))
	}

	if count == 0 {
		return []string{}, nil
	}

	// Sorting gives the index space a stable meaning, randomness only comes from the draw.
	entries := set.Sorted()
	indices := make([]int, count)

	sampleuv.WithoutReplacement(indices, len(entries), nil)

	samples := make([]string, count)
	for i, idx := range indices {
		samples[i] = entries[idx]
	}

	return samples, nil
}

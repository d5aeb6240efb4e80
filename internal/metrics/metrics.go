// Package metrics computes retrieval metrics over extracted analyzer output.
package metrics

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/farcloser/assay/internal/integration/fsio"
	"github.com/farcloser/assay/internal/types"
)

var (
	// ErrEmptyReference is returned when a metric is computed against an empty reference.
	ErrEmptyReference = errors.New("empty reference")
	// ErrUndefinedF1 is returned when precision and recall are both zero.
	ErrUndefinedF1 = errors.New("F1 score undefined when precision and recall are both zero")
)

// TimeMarkerPrefix starts the analyzer's timing line.
const TimeMarkerPrefix = "time="

// RecallResult contains recall results.
type RecallResult struct {
	Value    float64
	Found    int
	Expected int
	// Missing lists reference entries absent from the found set, sorted.
	Missing []string
}

// Recall is the share of the reference found: (|reference| - |reference - found|) / |reference|.
func Recall(found, reference types.StringSet) (*RecallResult, error) {
	if len(reference) == 0 {
		return nil, fmt.Errorf("recall: %w", ErrEmptyReference)
	}

	missing := reference.Difference(found)
	expected := len(reference)
	hits := expected - len(missing)

	return &RecallResult{
		Value:    float64(hits) / float64(expected),
		Found:    hits,
		Expected: expected,
		Missing:  missing.Sorted(),
	}, nil
}

// Mismatch is a reference key whose found value differs from the expected one.
type Mismatch struct {
	Key      string
	Got      string
	Expected string
}

// PrecisionResult contains precision results.
type PrecisionResult struct {
	Value   float64
	Matches int
	Total   int
	// ReferenceNotCovered is set when some reference key is absent from the found keys.
	ReferenceNotCovered bool
	// MissingKeys lists reference keys without a found value, sorted.
	MissingKeys []string
	Mismatches  []Mismatch
}

// Precision is the share of reference keys whose found value equals the reference value.
// Keys absent from found, or found with an empty value, count as non-matches.
func Precision(found, reference map[string]string) (*PrecisionResult, error) {
	if len(reference) == 0 {
		return nil, fmt.Errorf("precision: %w", ErrEmptyReference)
	}

	res := &PrecisionResult{Total: len(reference)}

	keys := make([]string, 0, len(reference))
	for key := range reference {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	for _, key := range keys {
		expected := reference[key]

		got, ok := found[key]
		if !ok {
			res.ReferenceNotCovered = true
		}

		switch {
		case got == "":
			res.MissingKeys = append(res.MissingKeys, key)
		case got == expected:
			res.Matches++
		default:
			res.Mismatches = append(res.Mismatches, Mismatch{Key: key, Got: got, Expected: expected})
		}
	}

	res.Value = float64(res.Matches) / float64(res.Total)

	return res, nil
}

// VerdictPrecision is the share of true verdicts. It is absent when there are no verdicts at all.
func VerdictPrecision(trueCount, falseCount int) (float64, bool) {
	return Ratio(float64(trueCount), float64(trueCount+falseCount))
}

// F1 is the harmonic mean of precision and recall.
func F1(precision, recall float64) (float64, error) {
	if precision+recall == 0 {
		return 0, ErrUndefinedF1
	}

	return stat.HarmonicMean([]float64{precision, recall}, nil), nil
}

// Ratio divides, reporting false instead of dividing by zero. Reports omit the metric in that case.
func Ratio(numerator, denominator float64) (float64, bool) {
	if denominator == 0 {
		return 0, false
	}

	return numerator / denominator, true
}

// TimeMarker returns the first line of the file starting with "time=".
func TimeMarker(path string) (string, bool, error) {
	var marker string

	errFound := errors.New("found")

	err := fsio.EachLine(path, func(line string) error {
		if strings.HasPrefix(line, TimeMarkerPrefix) {
			marker = line

			return errFound
		}

		return nil
	})

	switch {
	case errors.Is(err, errFound):
		return marker, true, nil
	case err != nil:
		return "", false, err
	default:
		return "", false, nil
	}
}

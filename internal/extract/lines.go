package extract

import (
	"strings"

	"github.com/farcloser/assay/internal/integration/fsio"
	"github.com/farcloser/assay/internal/types"
)

// LineSet returns the right-trimmed lines of a file as a set.
func LineSet(path string) (types.StringSet, error) {
	set := make(types.StringSet)

	err := fsio.EachLine(path, func(line string) error {
		set.Add(strings.TrimRightFunc(line, isSpace))

		return nil
	})
	if err != nil {
		return nil, err
	}

	return set, nil
}

// ColonLines returns the distinct lines containing a ": " separator.
func ColonLines(path string) (types.StringSet, error) {
	set := make(types.StringSet)

	err := fsio.EachLine(path, func(line string) error {
		if strings.Contains(line, ": ") {
			set.Add(line)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return set, nil
}

// Verdicts counts the lines of a precision verdict file. A line starting with T is a true verdict, any other line
// a false one.
func Verdicts(path string) (int, int, error) {
	var trueCount, falseCount int

	err := fsio.EachLine(path, func(line string) error {
		if strings.HasPrefix(line, "T") {
			trueCount++
		} else {
			falseCount++
		}

		return nil
	})

	return trueCount, falseCount, err
}

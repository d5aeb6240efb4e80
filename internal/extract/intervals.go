package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/farcloser/assay/internal/integration/fsio"
	"github.com/farcloser/assay/internal/types"
)

var functionIntervalRe = regexp.MustCompile(`^Function: ([a-zA-Z0-9_, *()]+) \{return index \d+\}\t(.+)$`)

// parseFunctionInterval splits a tab-joined spec record into function signature and interval.
// Records of other diagnostics sharing the section do not match.
func parseFunctionInterval(record string) (string, string, bool) {
	match := functionIntervalRe.FindStringSubmatch(record)
	if match == nil {
		return "", "", false
	}

	return match[1], match[2], true
}

// FunctionIntervals maps function signatures to their inferred error-return interval.
func FunctionIntervals(checks types.StringSet) map[string]string {
	res := make(map[string]string, len(checks))

	for _, record := range checks.Sorted() {
		if name, interval, ok := parseFunctionInterval(record); ok {
			res[name] = interval
		}
	}

	return res
}

// FunctionIntervalNames returns the function signatures found in spec records.
func FunctionIntervalNames(checks types.StringSet) types.StringSet {
	names := make(types.StringSet)
	for name := range FunctionIntervals(checks) {
		names.Add(name)
	}

	return names
}

// FunctionNames reads a name:rest list and returns the names.
func FunctionNames(path string) (types.StringSet, error) {
	names := make(types.StringSet)
	lineNumber := 0

	err := fsio.EachLine(path, func(line string) error {
		lineNumber++

		name, _, ok := strings.Cut(line, ":")
		if !ok {
			return fmt.Errorf("%w: %s:%d: no colon in %q", ErrMalformedLine, path, lineNumber, line)
		}

		names.Add(name)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return names, nil
}

func parseGroundTruthLine(line string) (string, string, bool) {
	fields := strings.Split(strings.TrimRightFunc(line, isSpace), "\t")
	if len(fields) != 2 {
		return "", "", false
	}

	return fields[0], fields[1], true
}

// GroundTruth reads name<TAB>interval lines. Lines with another field count are skipped.
func GroundTruth(path string) (map[string]string, error) {
	res := make(map[string]string)

	err := fsio.EachLine(path, func(line string) error {
		if name, interval, ok := parseGroundTruthLine(line); ok {
			res[name] = interval
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

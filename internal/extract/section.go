package extract

import (
	"bufio"
	"fmt"
	"iter"
	"log/slog"
	"os"
	"strings"

	"github.com/farcloser/primordium/fault"

	"github.com/farcloser/assay/internal/integration/fsio"
	"github.com/farcloser/assay/internal/types"
)

/*
Section scanning

Analyzer reports interleave free text with delimited sections. A section opens on a line starting with one of
its markers and closes on a line starting with one of its terminators:

	Function error return intervals (42 functions):
	Function: int foo(void) {return index 0}
	[-1, -1]
	Function: int bar(int) {return index 0}
	[-2147483648, -1]
	time=12.3s

Each entry occupies exactly two physical lines, which Pair joins into one record:

	"Function: int foo(void) {return index 0}\t[-1, -1]"

Marker and terminator lines themselves never belong to the section. A marker seen while already inside keeps the
scanner inside.
*/

// Section describes a delimited region of an analyzer report.
type Section struct {
	Name        string
	Markers     []string
	Terminators []string
	// Separator joins the two lines of an entry.
	Separator string
}

//nolint:gochecknoglobals // configuration data, effectively const
var (
	// SpecSection holds the inferred function error-return intervals.
	SpecSection = Section{
		Name:        "spec",
		Markers:     []string{"Function error return intervals ("},
		Terminators: []string{"time=", "Skip: ", "Potential bug"},
		Separator:   "\t",
	}

	// SimilaritySection holds the safety checks found through similarity, as compared by the diff command.
	SimilaritySection = Section{
		Name:        "similarity",
		Markers:     []string{"Safety checks found using similarities:"},
		Terminators: []string{"["},
		Separator:   "\n",
	}

	// BugReportSection accepts either section of a bug report.
	BugReportSection = Section{
		Name:        "bug-report",
		Markers:     []string{"Safety checks found using similarities:", "Function error return intervals ("},
		Terminators: []string{"[", "time=", "Skip: ", "Potential bug"},
		Separator:   "\t",
	}
)

type scanState int

const (
	outside scanState = iota
	inside
)

func hasAnyPrefix(line string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}

	return false
}

// next applies the transition rules to one raw line and reports whether the line belongs to the section.
func (s Section) next(state scanState, line string) (scanState, bool) {
	switch {
	case hasAnyPrefix(line, s.Markers):
		return inside, false
	case hasAnyPrefix(line, s.Terminators):
		return outside, false
	default:
		return state, state == inside
	}
}

// Lines yields the whitespace-trimmed lines inside the section. Callers check scanner.Err once iteration ends.
func (s Section) Lines(scanner *bufio.Scanner) iter.Seq[string] {
	return func(yield func(string) bool) {
		state := outside

		for scanner.Scan() {
			var keep bool

			state, keep = s.next(state, scanner.Text())
			if keep && !yield(strings.TrimSpace(scanner.Text())) {
				return
			}
		}
	}
}

// Pair joins consecutive lines two by two. A trailing unpaired line is dropped, as are empty records.
func Pair(lines []string, separator string) types.StringSet {
	records := make(types.StringSet, len(lines)/2)

	for i := 0; i+1 < len(lines); i += 2 {
		record := lines[i] + separator + lines[i+1]
		if record == "" {
			continue
		}

		records.Add(record)
	}

	return records
}

// Checks extracts the two-line records of a section from a report file.
func Checks(path string, section Section) (types.StringSet, error) {
	slog.Debug("extract.Checks", "path", path, "section", section.Name, "stage", "start")

	file, err := os.Open(path) //nolint:gosec // CLI tool opens user-specified report files
	if err != nil {
		return nil, fmt.Errorf("%w: %w", fault.ErrReadFailure, err)
	}
	defer file.Close()

	scanner := fsio.Scanner(file)

	var lines []string
	for line := range section.Lines(scanner) {
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", fault.ErrReadFailure, path, err)
	}

	if len(lines)%2 != 0 {
		slog.Debug("extract.Checks", "path", path, "section", section.Name, "stage", "odd line count")
	}

	records := Pair(lines, section.Separator)

	slog.Debug("extract.Checks", "path", path, "section", section.Name, "records", len(records), "stage", "done")

	return records, nil
}

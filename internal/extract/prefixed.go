package extract

import (
	"strings"
	"unicode"

	"github.com/farcloser/assay"
	"github.com/farcloser/assay/internal/integration/fsio"
	"github.com/farcloser/assay/internal/types"
)

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// parseFoundBug matches a report line against the bug kind prefixes, first match wins.
func parseFoundBug(line string) (types.FoundBug, bool) {
	for _, kind := range assay.BugKinds {
		rest, ok := strings.CutPrefix(line, kind.Prefix())
		if !ok {
			continue
		}

		return types.FoundBug{Kind: kind, Identifier: strings.TrimRightFunc(rest, isSpace)}, true
	}

	return types.FoundBug{}, false
}

// FoundBugs returns the potential bugs of an analyzer report, one per announcing line, in file order.
func FoundBugs(path string) ([]types.FoundBug, error) {
	var found []types.FoundBug

	err := fsio.EachLine(path, func(line string) error {
		if bug, ok := parseFoundBug(line); ok {
			found = append(found, bug)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

// FoundBugsByKind returns the identifiers of an analyzer report grouped by bug kind.
func FoundBugsByKind(path string) (map[assay.BugKind]types.StringSet, error) {
	found, err := FoundBugs(path)
	if err != nil {
		return nil, err
	}

	return types.GroupByKind(found), nil
}

package extract

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/farcloser/assay"
	"github.com/farcloser/assay/internal/integration/fsio"
	"github.com/farcloser/assay/internal/types"
)

var (
	// ErrMalformedLine is returned for a line lacking a required field.
	ErrMalformedLine = errors.New("malformed line")
	// ErrDuplicateIdentifier is returned when a bug database lists the same identifier twice.
	ErrDuplicateIdentifier = errors.New("identifier already in the bug database")
)

// BugDatabase loads a ground-truth bug database.
//
// Each line is tab separated: the first field is the category, the last field the identifier, anything in between
// is ignored. Blank lines and lines starting with # are comments.
func BugDatabase(path string) (*types.BugMap, error) {
	bugMap := types.NewBugMap()
	lineNumber := 0

	err := fsio.EachLine(path, func(line string) error {
		lineNumber++

		line = strings.TrimRightFunc(line, isSpace)
		if line == "" || line[0] == '#' {
			return nil
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			return fmt.Errorf("%w: %s:%d: %q", ErrMalformedLine, path, lineNumber, line)
		}

		category := assay.Category(fields[0])
		identifier := fields[len(fields)-1]

		if !bugMap.Insert(identifier, category) {
			return fmt.Errorf("%w: %s:%d: %q", ErrDuplicateIdentifier, path, lineNumber, identifier)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("extract.BugDatabase", "path", path, "identifiers", bugMap.Len())

	return bugMap, nil
}

// BugIdentifiers returns the identifiers of a bug database.
func BugIdentifiers(path string) (types.StringSet, error) {
	bugMap, err := BugDatabase(path)
	if err != nil {
		return nil, err
	}

	return bugMap.Identifiers(), nil
}

// BugCategories returns the identifiers of a bug database grouped by category.
func BugCategories(path string) (map[assay.Category]types.StringSet, error) {
	bugMap, err := BugDatabase(path)
	if err != nil {
		return nil, err
	}

	return bugMap.ByCategory(), nil
}

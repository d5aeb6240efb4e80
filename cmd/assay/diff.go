//nolint:wrapcheck
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/farcloser/assay/internal/extract"
	"github.com/farcloser/assay/internal/types"
)

var (
	errDiffArgs = errors.New("expected exactly two arguments: actual output file and expected output file")
	errMismatch = errors.New("actual output does not match expected output")
)

func diffCommand() *cli.Command {
	return &cli.Command{
		Name:      "diff",
		Usage:     "Compare the similarity safety checks of two analyzer outputs, failing on any difference",
		ArgsUsage: "<actual> <expected>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 2 {
				return fmt.Errorf("%w: got %d", errDiffArgs, cmd.NArg())
			}

			actualPath := cmd.Args().Get(0)
			expectedPath := cmd.Args().Get(1)

			actual, err := extract.Checks(actualPath, extract.SimilaritySection)
			if err != nil {
				return err
			}

			expected, err := extract.Checks(expectedPath, extract.SimilaritySection)
			if err != nil {
				return err
			}

			if actual.Equal(expected) {
				return nil
			}

			printDiff(os.Stdout, expectedPath, actual, expected)

			return fmt.Errorf("%w: %s", errMismatch, expectedPath)
		},
	}
}

func printDiff(out io.Writer, expectedPath string, actual, expected types.StringSet) {
	fmt.Fprintln(out, "NOT MATCHING:", expectedPath)
	fmt.Fprintln(out)

	if extra := actual.Difference(expected); len(extra) > 0 {
		fmt.Fprintln(out, "Actual output has but missing in expected output:")
		printRecords(out, extra)
	}

	fmt.Fprintln(out)

	if missing := expected.Difference(actual); len(missing) > 0 {
		fmt.Fprintln(out, "Expected output has but missing in actual output:")
		printRecords(out, missing)
	}
}

// printRecords renders each two-line record on a single tab-joined line.
func printRecords(out io.Writer, records types.StringSet) {
	for _, record := range records.Sorted() {
		fmt.Fprintln(out, strings.ReplaceAll(record, "\n", "\t"))
	}
}

//nolint:wrapcheck
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/farcloser/assay/internal/extract"
	"github.com/farcloser/assay/internal/metrics"
	"github.com/farcloser/assay/internal/types"
)

const separatorLine = "--------------------------"

var (
	errSpecStatsArgs = errors.New(
		"expected exactly three arguments: eesi output, eesi precision verdicts and recall reference files",
	)
	errMyStatsArgs = errors.New("expected exactly one argument: program name (e.g. openssl, zlib, ...)")
)

func specStatsCommand() *cli.Command {
	return &cli.Command{
		Name:      "spec-stats",
		Usage:     "Compute recall, precision and F1 of an EESI specification output",
		ArgsUsage: "<eesi-output> <eesi-precision-file> <recall-reference-file>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 3 {
				return fmt.Errorf("%w: got %d", errSpecStatsArgs, cmd.NArg())
			}

			names, err := extract.FunctionNames(cmd.Args().Get(0))
			if err != nil {
				return err
			}

			reference, err := extract.LineSet(cmd.Args().Get(2))
			if err != nil {
				return err
			}

			trueCount, falseCount, err := extract.Verdicts(cmd.Args().Get(1))
			if err != nil {
				return err
			}

			out := os.Stdout

			recall, recallErr := metrics.Recall(names, reference)
			if recallErr == nil {
				printRecall(out, recall)
			}

			precision, ok := metrics.VerdictPrecision(trueCount, falseCount)
			if ok {
				fmt.Fprintf(out, "Precision: %d/%d = %.2f%%\n", trueCount, trueCount+falseCount, precision*100)
			}

			if recallErr == nil && ok {
				printF1(out, precision, recall.Value)
			}

			return nil
		},
	}
}

func myStatsCommand() *cli.Command {
	return &cli.Command{
		Name:      "my-stats",
		Usage:     "Compute recall, precision and F1 of the analyzer's inferred error-return intervals",
		ArgsUsage: "<program>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "dir",
				Usage: "Directory holding my-<program>-output and the <program>-* reference files",
				Value: ".",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("%w: got %d", errMyStatsArgs, cmd.NArg())
			}

			program := cmd.Args().First()
			dir := cmd.String("dir")

			return runMyStats(os.Stdout, dir, program)
		},
	}
}

func runMyStats(out io.Writer, dir, program string) error {
	programFile := func(pattern string) string {
		return filepath.Join(dir, fmt.Sprintf(pattern, program))
	}

	outputPath := programFile("my-%s-output")

	checks, err := extract.Checks(outputPath, extract.SpecSection)
	if err != nil {
		return err
	}

	intervals := extract.FunctionIntervals(checks)
	names := extract.FunctionIntervalNames(checks)

	recall, recallErr := myRecall(out, names, programFile("%s-recall-sample"))
	if recallErr != nil {
		fmt.Fprintln(out, recallErr)
	}

	fmt.Fprintln(out, separatorLine)

	precision, precisionErr := myPrecision(
		out,
		intervals,
		programFile("%s-precision-ground-truth"),
		programFile("%s-random-functions-for-precision-my-tool"),
	)
	if precisionErr != nil {
		fmt.Fprintln(out, precisionErr)
	}

	fmt.Fprintln(out, separatorLine)

	if recallErr == nil && precisionErr == nil {
		printF1(out, precision.Value, recall.Value)
	}

	marker, found, err := metrics.TimeMarker(outputPath)
	if err != nil {
		return err
	}

	if !found {
		marker = "???"
	}

	fmt.Fprintln(out, marker)

	return nil
}

func myRecall(out io.Writer, names types.StringSet, referencePath string) (*metrics.RecallResult, error) {
	reference, err := extract.LineSet(referencePath)
	if err != nil {
		return nil, err
	}

	recall, err := metrics.Recall(names, reference)
	if err != nil {
		return nil, err
	}

	printRecall(out, recall)

	return recall, nil
}

func myPrecision(
	out io.Writer,
	intervals map[string]string,
	groundTruthPath, samplePath string,
) (*metrics.PrecisionResult, error) {
	groundTruth, err := extract.GroundTruth(groundTruthPath)
	if err != nil {
		return nil, err
	}

	sampled, err := extract.LineSet(samplePath)
	if err != nil {
		return nil, err
	}

	for _, function := range sampled.Sorted() {
		if _, ok := groundTruth[function]; !ok && function != "" {
			fmt.Fprintf(out, "WARNING: sampled function %q has no ground truth\n", function)
		}
	}

	precision, err := metrics.Precision(intervals, groundTruth)
	if err != nil {
		return nil, err
	}

	printPrecision(out, precision)

	return precision, nil
}

func printRecall(out io.Writer, recall *metrics.RecallResult) {
	fmt.Fprintln(out, "Expected, but not found functions:")

	for _, entry := range recall.Missing {
		fmt.Fprintf(out, "\t%s\n", entry)
	}

	fmt.Fprintf(out, "Recall: %d/%d = %.2f%%\n", recall.Found, recall.Expected, recall.Value*100)
}

func printPrecision(out io.Writer, precision *metrics.PrecisionResult) {
	if precision.ReferenceNotCovered {
		fmt.Fprintln(out, "WARNING: Everything in the reference should occur in the output!")
	}

	for _, key := range precision.MissingKeys {
		fmt.Fprintf(out, "\tNo input data for %q\n", key)
	}

	for _, mismatch := range precision.Mismatches {
		fmt.Fprintf(out, "\tNot matching for %q: got %s, expected %s\n", mismatch.Key, mismatch.Got, mismatch.Expected)
	}

	fmt.Fprintf(out, "Precision: %d/%d = %.2f%%\n", precision.Matches, precision.Total, precision.Value*100)
}

func printF1(out io.Writer, precision, recall float64) {
	score, err := metrics.F1(precision, recall)
	if err != nil {
		return
	}

	fmt.Fprintf(out, "F1 score: %.2f%%\n", score*100)
}

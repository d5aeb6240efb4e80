//nolint:wrapcheck
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/farcloser/assay/internal/extract"
	"github.com/farcloser/assay/internal/sample"
	"github.com/farcloser/assay/internal/types"
)

var (
	errSampleArgs  = errors.New("expected exactly two arguments: output file and number of samples")
	errSampleCount = errors.New("invalid number of samples")
)

func sampleLinesCommand() *cli.Command {
	return &cli.Command{
		Name:      "sample-lines",
		Usage:     "Print random distinct lines containing \": \" for manual audit",
		ArgsUsage: "<file> <n>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			return runSample(cmd, extract.ColonLines)
		},
	}
}

func sampleSpecsCommand() *cli.Command {
	return &cli.Command{
		Name:      "sample-specs",
		Usage:     "Print random inferred function error-return specifications for manual audit",
		ArgsUsage: "<file> <n>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			return runSample(cmd, func(path string) (types.StringSet, error) {
				return extract.Checks(path, extract.SpecSection)
			})
		},
	}
}

func runSample(cmd *cli.Command, extractor func(path string) (types.StringSet, error)) error {
	if cmd.NArg() != 2 {
		return fmt.Errorf("%w: got %d", errSampleArgs, cmd.NArg())
	}

	count, err := strconv.Atoi(cmd.Args().Get(1))
	if err != nil {
		return fmt.Errorf("%w: %w", errSampleCount, err)
	}

	entries, err := extractor(cmd.Args().Get(0))
	if err != nil {
		return err
	}

	samples, err := sample.Uniform(entries, count)
	if err != nil {
		return err
	}

	if len(samples) > 0 {
		fmt.Fprintln(os.Stdout, strings.Join(samples, "\n"))
	}

	return nil
}

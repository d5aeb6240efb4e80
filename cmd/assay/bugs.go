//nolint:wrapcheck
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/farcloser/primordium/format"
	"github.com/urfave/cli/v3"

	"github.com/farcloser/assay"
	"github.com/farcloser/assay/internal/classify"
	"github.com/farcloser/assay/internal/extract"
	"github.com/farcloser/assay/internal/output"
)

const textFormat = "text"

var (
	errBugsArgs      = errors.New("expected exactly one argument: program name")
	errInvalidTarget = errors.New("target FPR must be strictly between 0 and 1")
)

func bugsCommand() *cli.Command {
	return &cli.Command{
		Name:      "bugs",
		Usage:     "Classify found bugs against the program's bug database and report false positive rates",
		ArgsUsage: "<program>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "dir",
				Usage: "Directory holding <program>-bugs and my-<program>-output",
				Value: ".",
			},
			&cli.FloatFlag{
				Name:  "target",
				Usage: "Total FPR the decrease projection aims for",
				Value: assay.DefaultTargetFPR,
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, console, json, markdown",
				Value:   textFormat,
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("%w: got %d", errBugsArgs, cmd.NArg())
			}

			target := cmd.Float("target")
			if target <= 0 || target >= 1 {
				return fmt.Errorf("%w: %v", errInvalidTarget, target)
			}

			program := cmd.Args().First()
			dir := cmd.String("dir")

			db, err := extract.BugDatabase(filepath.Join(dir, program+"-bugs"))
			if err != nil {
				return err
			}

			found, err := extract.FoundBugs(filepath.Join(dir, "my-"+program+"-output"))
			if err != nil {
				return err
			}

			report := classify.Classify(db, found)

			formatName := cmd.String("format")
			if formatName == textFormat {
				printBugReport(os.Stdout, report, target)

				return nil
			}

			formatter, err := format.GetFormatter(formatName)
			if err != nil {
				return err
			}

			data := &format.Data{
				Object: program,
				Meta:   output.ReportToMap(report, target),
			}

			return formatter.PrintAll([]*format.Data{data}, os.Stdout)
		},
	}
}

func printBugReport(out io.Writer, report *classify.Report, target float64) {
	fmt.Fprintln(out, "Not found PT:")

	for _, bug := range report.NotFoundPT {
		fmt.Fprintln(out, bug)
	}

	fmt.Fprintln(out, "Not found A/C:")

	for _, bug := range report.NotFoundAorC {
		fmt.Fprintln(out, bug)
	}

	fmt.Fprintln(out)

	for _, count := range report.PrefixCounts {
		fmt.Fprintf(out, "%s%d\n", count.Kind.Prefix(), count.Count)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Categories:")

	for _, category := range report.Buckets.Categories() {
		line := fmt.Sprintf("%s\t%d", category, report.Buckets.Size(category))
		if share, ok := report.Share(category); ok {
			line += fmt.Sprintf("\t%.2f%%", share*100)
		}

		fmt.Fprintln(out, line)
	}

	for _, category := range assay.Interesting {
		fmt.Fprintf(out, "\n%s:\n", category)
		fmt.Fprintln(out, strings.Join(report.Buckets.Members(category), "\n"))
	}

	if len(report.Uncategorized) > 0 {
		fmt.Fprintln(out, "\nUncategorised:")
		fmt.Fprintln(out, strings.Join(report.Uncategorized, "\n"))
	}

	fmt.Fprintln(out)

	if fpr, ok := report.IncorrectFPR(); ok {
		fmt.Fprintf(out, "Incorrect FPR: %.2f%%\n", fpr*100)
	}

	if fpr, ok := report.MissingFPR(); ok {
		fmt.Fprintf(out, "Missing FPR: %.2f%%\n", fpr*100)
	}

	if fpr, ok := report.TotalFPR(); ok {
		fmt.Fprintf(out, "Total FPR: %.2f%%\n", fpr*100)
	}

	if fpr, ok := report.TotalFPRWithoutW(); ok {
		fmt.Fprintf(out, "Total FPR without W: %.2f%%\n", fpr*100)
	}

	fmt.Fprintf(out, "\nM total (absolute): %d\n", report.Missing.Absolute(true))
	fmt.Fprintf(out, "I total (absolute): %d\n", report.Incorrect.Absolute(true))
	fmt.Fprintf(out, "\nM total (absolute, no UC): %d\n", report.Missing.Absolute(false))
	fmt.Fprintf(out, "I total (absolute, no UC): %d\n", report.Incorrect.Absolute(false))

	if decrease, ok := report.Projection(target); ok {
		fmt.Fprintf(out,
			"Would need a decrease of %.2f false positives to reach a total FPR of %.2f%% (W was included in this calculation)\n",
			decrease, target*100)
	}
}

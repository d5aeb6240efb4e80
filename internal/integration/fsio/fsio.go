// Package fsio reads the line-oriented text files consumed by the evaluation commands.
package fsio

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/farcloser/primordium/fault"
)

// Report lines carry full function signatures and intervals, well above bufio's default token size.
const maxLineSize = 1024 * 1024

// Scanner returns a line scanner able to hold long report lines.
func Scanner(reader io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	return scanner
}

// EachLine calls yield for every line of the file, without its line terminator.
// Errors returned by yield stop the scan and are returned unchanged.
func EachLine(path string, yield func(line string) error) error {
	slog.Debug("fsio.EachLine", "path", path, "stage", "start")

	file, err := os.Open(path) //nolint:gosec // CLI tool opens user-specified report files
	if err != nil {
		return fmt.Errorf("%w: %w", fault.ErrReadFailure, err)
	}
	defer file.Close()

	return Scan(file, path, yield)
}

// Scan is EachLine over an already opened reader. Name only labels debug output.
func Scan(reader io.Reader, name string, yield func(line string) error) error {
	scanner := Scanner(reader)
	count := 0

	for scanner.Scan() {
		count++

		if err := yield(scanner.Text()); err != nil {
			slog.Debug("fsio.Scan", "path", name, "line", count, "stage", "error")

			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: %s: %w", fault.ErrReadFailure, name, err)
	}

	slog.Debug("fsio.Scan", "path", name, "lines", count, "stage", "done")

	return nil
}

// Lines reads the whole file into memory, one entry per line.
func Lines(path string) ([]string, error) {
	var lines []string

	err := EachLine(path, func(line string) error {
		lines = append(lines, line)

		return nil
	})

	return lines, err
}

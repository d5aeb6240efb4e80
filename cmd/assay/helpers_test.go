package main_test

import (
	"fmt"
	"strings"

	"github.com/containerd/nerdctl/mod/tigron/test"
	"github.com/containerd/nerdctl/mod/tigron/tig"
)

// expectContains returns a comparator verifying the output contains a substring.
func expectContains(substr string) test.Comparator {
	return func(stdout string, testing tig.T) {
		testing.Helper()

		if !strings.Contains(stdout, substr) {
			testing.Log(fmt.Sprintf("expected substring %q not found in output:\n%s", substr, stdout))
			testing.Fail()
		}
	}
}

// expectNotContains returns a comparator verifying the output does not contain a substring.
func expectNotContains(substr string) test.Comparator {
	return func(stdout string, testing tig.T) {
		testing.Helper()

		if strings.Contains(stdout, substr) {
			testing.Log(fmt.Sprintf("unexpected substring %q found in output:\n%s", substr, stdout))
			testing.Fail()
		}
	}
}

// expectEmpty returns a comparator verifying nothing was written to stdout.
func expectEmpty() test.Comparator {
	return func(stdout string, testing tig.T) {
		testing.Helper()

		if stdout != "" {
			testing.Log(fmt.Sprintf("expected empty output, got:\n%s", stdout))
			testing.Fail()
		}
	}
}

// expectLineCount returns a comparator verifying the number of non-empty output lines.
func expectLineCount(count int) test.Comparator {
	return func(stdout string, testing tig.T) {
		testing.Helper()

		lines := 0

		for line := range strings.SplitSeq(stdout, "\n") {
			if line != "" {
				lines++
			}
		}

		if lines != count {
			testing.Log(fmt.Sprintf("expected %d lines, got %d in output:\n%s", count, lines, stdout))
			testing.Fail()
		}
	}
}

const similarityReport = `Analyzing module...
Safety checks found using similarities:
check A
context A
check B
context B
[statistics]
`

const similarityReportMissingB = `Analyzing module...
Safety checks found using similarities:
check A
context A
[statistics]
`

const specReport = `Function error return intervals (3 functions):
Function: foo {return index 0}
[-1, -1]
Function: bar {return index 0}
[-2147483648, -1]
Function: baz {return index 1}
[0, 0]
time=1.0s
Potential bug, not all error values are checked for the following call: a.c:1
Potential bug, missing check for the following call: b.c:2
Potential bug, missing check for the following call: c.c:3
Potential bug, signedness bug: d.c:4
`

const bugDatabase = `# category	notes	identifier
I_C	checked	a.c:1
M_W	warning only	b.c:2
M_PT	partially true	e.c:5
`

package assay

/*
Usage:

db, err := extract.BugDatabase("openssl-bugs")
found, err := extract.FoundBugs("my-openssl-output")
report := classify.Classify(db, found)

if fpr, ok := report.TotalFPR(); ok {
    fmt.Printf("Total FPR: %.2f%%\n", fpr*100)
}

if decrease, ok := report.Projection(assay.DefaultTargetFPR); ok {
    fmt.Printf("Need %.2f fewer false positives\n", decrease)
}

*/

// DefaultTargetFPR is the false-positive rate the projection aims for.
const DefaultTargetFPR = 0.15

// Category is a ground-truth classification code, such as I_A or M_PT.
// Codes are opaque: the bug database may carry codes not listed here, and they are kept verbatim.
type Category string

// Incorrect (I_*) categories: the tool reported an incompletely checked error value.
const (
	IncorrectAcceptable  Category = "I_A"
	IncorrectCorrect     Category = "I_C"
	IncorrectPartialTrue Category = "I_PT"
	IncorrectWarning     Category = "I_W"
	IncorrectL           Category = "I_L"
	IncorrectFNE         Category = "I_FNE"
	IncorrectPartialFix  Category = "I_PF"
	IncorrectFPS         Category = "I_FPS"
)

// Missing (M_*) categories: the tool reported a missing error check.
const (
	MissingAcceptable  Category = "M_A"
	MissingCorrect     Category = "M_C"
	MissingPartialTrue Category = "M_PT"
	MissingWarning     Category = "M_W"
	MissingL           Category = "M_L"
	MissingFNE         Category = "M_FNE"
	MissingPartialFix  Category = "M_PF"
	MissingFPS         Category = "M_FPS"
)

// Category groups used by the classification report.
//
//nolint:gochecknoglobals // configuration data, effectively const
var (
	// ExpectedPT are categories the tool is expected to flag, labeled PT.
	ExpectedPT = []Category{IncorrectPartialTrue, MissingPartialTrue}

	// ExpectedAorC are categories the tool is expected to flag, labeled A/C.
	ExpectedAorC = []Category{IncorrectAcceptable, IncorrectCorrect, MissingAcceptable, MissingCorrect}

	FalsePositivesIncorrect = []Category{
		IncorrectWarning, IncorrectL, IncorrectFPS, IncorrectFNE, IncorrectPartialFix,
	}
	FalsePositivesMissing = []Category{
		MissingWarning, MissingL, MissingFPS, MissingFNE, MissingPartialFix,
	}

	TruePositivesIncorrect = []Category{IncorrectAcceptable, IncorrectCorrect, IncorrectPartialTrue}
	TruePositivesMissing   = []Category{MissingAcceptable, MissingCorrect, MissingPartialTrue}

	// Warnings are false positives that only deserve a warning.
	Warnings = []Category{IncorrectWarning, MissingWarning}

	// Interesting categories get their identifiers listed in the report.
	Interesting = []Category{IncorrectFNE, IncorrectWarning, IncorrectL, MissingFNE, MissingWarning, MissingL}
)

// In reports whether the category is part of the group.
func (c Category) In(group []Category) bool {
	for _, member := range group {
		if member == c {
			return true
		}
	}

	return false
}

// Package classify cross-references found bugs against a categorized bug database.
package classify

import (
	"github.com/farcloser/assay"
	"github.com/farcloser/assay/internal/metrics"
	"github.com/farcloser/assay/internal/types"
)

// PrefixCount is the number of report lines announcing a bug kind.
type PrefixCount struct {
	Kind  assay.BugKind
	Count int
}

// Report is the outcome of classifying an analyzer output against a bug database.
type Report struct {
	// NotFoundPT are PT-labeled bugs the analyzer missed, sorted.
	NotFoundPT []string
	// NotFoundAorC are A/C-labeled bugs the analyzer missed, sorted.
	NotFoundAorC []string
	// PrefixCounts in first-seen order.
	PrefixCounts []PrefixCount
	Buckets      *types.Buckets
	// Uncategorized holds one entry per found line whose identifier is absent from the bug database.
	Uncategorized []string
	// Lines is the number of found-bug lines.
	Lines int

	Incorrect types.PositiveCounts
	Missing   types.PositiveCounts
	// Warnings is |I_W| + |M_W|.
	Warnings int
}

// Classify folds the found bugs into a report. Neither input is modified.
func Classify(db *types.BugMap, found []types.FoundBug) *Report {
	report := &Report{
		Buckets: types.NewBuckets(),
		Lines:   len(found),
	}

	counts := map[assay.BugKind]int{}

	for _, bug := range found {
		if _, seen := counts[bug.Kind]; !seen {
			report.PrefixCounts = append(report.PrefixCounts, PrefixCount{Kind: bug.Kind})
		}

		counts[bug.Kind]++

		if category, ok := db.Category(bug.Identifier); ok {
			report.Buckets.Add(category, bug.Identifier)
		} else {
			report.Buckets.Add(bug.Kind.Uncategorized(), bug.Identifier)
			report.Uncategorized = append(report.Uncategorized, bug.Identifier)
		}
	}

	for i := range report.PrefixCounts {
		report.PrefixCounts[i].Count = counts[report.PrefixCounts[i].Kind]
	}

	foundSet := types.Identifiers(found)
	report.NotFoundPT = db.InGroup(assay.ExpectedPT).Difference(foundSet).Sorted()
	report.NotFoundAorC = db.InGroup(assay.ExpectedAorC).Difference(foundSet).Sorted()

	buckets := report.Buckets
	report.Incorrect = types.PositiveCounts{
		TruePositives:  buckets.SizeOf(assay.TruePositivesIncorrect),
		FalsePositives: buckets.SizeOf(assay.FalsePositivesIncorrect),
		Uncategorized:  buckets.Size(assay.KindIncorrect.Uncategorized()),
	}
	report.Missing = types.PositiveCounts{
		TruePositives:  buckets.SizeOf(assay.TruePositivesMissing),
		FalsePositives: buckets.SizeOf(assay.FalsePositivesMissing),
		Uncategorized:  buckets.Size(assay.KindMissing.Uncategorized()),
	}
	report.Warnings = buckets.SizeOf(assay.Warnings)

	return report
}

// TruePositives over both groups.
func (r *Report) TruePositives() int {
	return r.Incorrect.TruePositives + r.Missing.TruePositives
}

// FalsePositives over both groups.
func (r *Report) FalsePositives() int {
	return r.Incorrect.FalsePositives + r.Missing.FalsePositives
}

// Share is the fraction of all bucketed identifiers held by a category.
func (r *Report) Share(category assay.Category) (float64, bool) {
	return metrics.Ratio(float64(r.Buckets.Size(category)), float64(r.Buckets.Total()))
}

func fpr(falsePositives, truePositives int) (float64, bool) {
	return metrics.Ratio(float64(falsePositives), float64(truePositives+falsePositives))
}

func (r *Report) IncorrectFPR() (float64, bool) {
	return fpr(r.Incorrect.FalsePositives, r.Incorrect.TruePositives)
}

func (r *Report) MissingFPR() (float64, bool) {
	return fpr(r.Missing.FalsePositives, r.Missing.TruePositives)
}

func (r *Report) TotalFPR() (float64, bool) {
	return fpr(r.FalsePositives(), r.TruePositives())
}

// TotalFPRWithoutW leaves warning-only false positives out of both numerator and denominator.
func (r *Report) TotalFPRWithoutW() (float64, bool) {
	return fpr(r.FalsePositives()-r.Warnings, r.TruePositives())
}

// Projection returns how many false positives must go to bring the total FPR down to target.
// It reports false when the FPR is already at or below target.
func (r *Report) Projection(target float64) (float64, bool) {
	decrease := DecreaseNeeded(r.TruePositives(), r.FalsePositives(), target)
	if decrease <= 0 {
		return 0, false
	}

	return decrease, true
}

// DecreaseNeeded solves (fp - x) / (tp + fp - x) = target for x:
//
//	fp - x = target * (tp + fp - x)
//	x * (target - 1) = target * (tp + fp) - fp
//	x = (target * (tp + fp) - fp) / (target - 1)
func DecreaseNeeded(truePositives, falsePositives int, target float64) float64 {
	tp, fp := float64(truePositives), float64(falsePositives)

	return (target*(tp+fp) - fp) / (target - 1)
}

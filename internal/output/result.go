// Package output provides shared report serialization for structured assay output.
package output

import (
	"fmt"

	"github.com/farcloser/assay"
	"github.com/farcloser/assay/internal/classify"
)

// ReportToMap converts a classification report into the canonical map structure used for the console, JSON and
// markdown formatters. Ratios that cannot be computed are left out.
func ReportToMap(report *classify.Report, target float64) map[string]any {
	meta := map[string]any{
		"not_found": map[string]any{
			"pt":     stringsToAny(report.NotFoundPT),
			"a_or_c": stringsToAny(report.NotFoundAorC),
		},
	}

	prefixes := make(map[string]any, len(report.PrefixCounts))
	for _, count := range report.PrefixCounts {
		prefixes[count.Kind.String()] = count.Count
	}

	meta["prefix_counts"] = prefixes
	meta["categories"] = CategoriesToMap(report)

	interesting := make(map[string]any, len(assay.Interesting))
	for _, category := range assay.Interesting {
		interesting[string(category)] = stringsToAny(report.Buckets.Members(category))
	}

	meta["interesting"] = interesting

	if len(report.Uncategorized) > 0 {
		meta["uncategorized"] = stringsToAny(report.Uncategorized)
	}

	meta["fpr"] = FPRToMap(report)

	meta["totals"] = map[string]any{
		"missing":                         report.Missing.Absolute(true),
		"incorrect":                       report.Incorrect.Absolute(true),
		"missing_without_uncategorized":   report.Missing.Absolute(false),
		"incorrect_without_uncategorized": report.Incorrect.Absolute(false),
		"true_positives":                  report.TruePositives(),
		"false_positives":                 report.FalsePositives(),
		"warnings":                        report.Warnings,
	}

	if decrease, ok := report.Projection(target); ok {
		meta["projection"] = map[string]any{
			"target_fpr":        formatPercent(target),
			"decrease_needed":   fmt.Sprintf("%.2f", decrease),
			"includes_warnings": true,
		}
	}

	return meta
}

// CategoriesToMap converts category bucket sizes to a map.
func CategoriesToMap(report *classify.Report) map[string]any {
	categories := make(map[string]any)

	for _, category := range report.Buckets.Categories() {
		entry := map[string]any{
			"count": report.Buckets.Size(category),
		}

		if share, ok := report.Share(category); ok {
			entry["share"] = formatPercent(share)
		}

		categories[string(category)] = entry
	}

	return categories
}

// FPRToMap converts the false positive rates to a map.
func FPRToMap(report *classify.Report) map[string]any {
	rates := map[string]any{}

	for key, rate := range map[string]func() (float64, bool){
		"incorrect":       report.IncorrectFPR,
		"missing":         report.MissingFPR,
		"total":           report.TotalFPR,
		"total_without_w": report.TotalFPRWithoutW,
	} {
		if value, ok := rate(); ok {
			rates[key] = formatPercent(value)
		}
	}

	return rates
}

func formatPercent(value float64) string {
	return fmt.Sprintf("%.2f%%", value*100)
}

func stringsToAny(values []string) []any {
	res := make([]any, 0, len(values))
	for _, value := range values {
		res = append(res, value)
	}

	return res
}

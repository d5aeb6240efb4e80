package output_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farcloser/assay"
	"github.com/farcloser/assay/internal/classify"
	"github.com/farcloser/assay/internal/output"
	"github.com/farcloser/assay/internal/types"
)

func TestReportToMap(t *testing.T) {
	db := types.NewBugMap()
	require.True(t, db.Insert("a.c:1", assay.IncorrectCorrect))
	require.True(t, db.Insert("b.c:1", assay.MissingWarning))

	report := classify.Classify(db, []types.FoundBug{
		{Kind: assay.KindIncorrect, Identifier: "a.c:1"},
		{Kind: assay.KindMissing, Identifier: "b.c:1"},
	})

	meta := output.ReportToMap(report, assay.DefaultTargetFPR)

	assert.Equal(t, map[string]any{"I": 1, "M": 1}, meta["prefix_counts"])
	assert.Equal(t, map[string]any{
		"I_C": map[string]any{"count": 1, "share": "50.00%"},
		"M_W": map[string]any{"count": 1, "share": "50.00%"},
	}, meta["categories"])
	assert.Equal(t, map[string]any{
		"incorrect":       "0.00%",
		"missing":         "100.00%",
		"total":           "50.00%",
		"total_without_w": "0.00%",
	}, meta["fpr"])
	assert.NotContains(t, meta, "uncategorized")

	projection, ok := meta["projection"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "15.00%", projection["target_fpr"])
	assert.Equal(t, "0.82", projection["decrease_needed"])
}

func TestReportToMapEmpty(t *testing.T) {
	meta := output.ReportToMap(classify.Classify(types.NewBugMap(), nil), assay.DefaultTargetFPR)

	assert.Empty(t, meta["fpr"])
	assert.Empty(t, meta["categories"])
	assert.NotContains(t, meta, "projection")
}

package classify_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farcloser/assay"
	"github.com/farcloser/assay/internal/classify"
	"github.com/farcloser/assay/internal/types"
)

func bugMap(t *testing.T, entries map[string]assay.Category) *types.BugMap {
	t.Helper()

	db := types.NewBugMap()
	for identifier, category := range entries {
		require.True(t, db.Insert(identifier, category))
	}

	return db
}

func TestClassify(t *testing.T) {
	db := bugMap(t, map[string]assay.Category{
		"a.c:1": assay.IncorrectAcceptable,
		"a.c:2": assay.IncorrectPartialTrue,
		"a.c:3": assay.IncorrectWarning,
		"b.c:1": assay.MissingCorrect,
		"b.c:2": assay.MissingPartialTrue,
		"b.c:3": assay.MissingFNE,
		"b.c:4": assay.MissingWarning,
		"c.c:1": assay.IncorrectCorrect,
	})

	found := []types.FoundBug{
		{Kind: assay.KindIncorrect, Identifier: "a.c:1"},
		{Kind: assay.KindIncorrect, Identifier: "a.c:3"},
		{Kind: assay.KindMissing, Identifier: "b.c:1"},
		{Kind: assay.KindMissing, Identifier: "b.c:3"},
		{Kind: assay.KindMissing, Identifier: "b.c:4"},
		{Kind: assay.KindIncorrect, Identifier: "x.c:1"},
		{Kind: assay.KindTruncation, Identifier: "t.c:1"},
	}

	report := classify.Classify(db, found)

	assert.Equal(t, []string{"a.c:2", "b.c:2"}, report.NotFoundPT)
	assert.Equal(t, []string{"c.c:1"}, report.NotFoundAorC)

	assert.Equal(t, []classify.PrefixCount{
		{Kind: assay.KindIncorrect, Count: 3},
		{Kind: assay.KindMissing, Count: 3},
		{Kind: assay.KindTruncation, Count: 1},
	}, report.PrefixCounts)

	assert.Equal(t, []assay.Category{
		assay.IncorrectAcceptable,
		assay.IncorrectWarning,
		assay.MissingCorrect,
		assay.MissingFNE,
		assay.MissingWarning,
		"I_UC",
		"T_UC",
	}, report.Buckets.Categories())
	assert.Equal(t, []string{"x.c:1", "t.c:1"}, report.Uncategorized)
	assert.Equal(t, report.Lines, report.Buckets.Total())

	assert.Equal(t, types.PositiveCounts{TruePositives: 1, FalsePositives: 1, Uncategorized: 1}, report.Incorrect)
	assert.Equal(t, types.PositiveCounts{TruePositives: 1, FalsePositives: 2}, report.Missing)
	assert.Equal(t, 2, report.Warnings)

	fpr, ok := report.IncorrectFPR()
	require.True(t, ok)
	assert.InDelta(t, 0.5, fpr, 1e-12)

	fpr, ok = report.MissingFPR()
	require.True(t, ok)
	assert.InDelta(t, 2.0/3.0, fpr, 1e-12)

	fpr, ok = report.TotalFPR()
	require.True(t, ok)
	assert.InDelta(t, 3.0/5.0, fpr, 1e-12)

	fpr, ok = report.TotalFPRWithoutW()
	require.True(t, ok)
	assert.InDelta(t, 1.0/3.0, fpr, 1e-12)

	share, ok := report.Share("T_UC")
	require.True(t, ok)
	assert.InDelta(t, 1.0/7.0, share, 1e-12)

	assert.Equal(t, 3, report.Incorrect.Absolute(true))
	assert.Equal(t, 2, report.Incorrect.Absolute(false))
}

func TestClassifyEmpty(t *testing.T) {
	report := classify.Classify(types.NewBugMap(), nil)

	assert.Empty(t, report.NotFoundPT)
	assert.Empty(t, report.PrefixCounts)
	assert.Zero(t, report.Buckets.Total())

	for name, rate := range map[string]func() (float64, bool){
		"incorrect":       report.IncorrectFPR,
		"missing":         report.MissingFPR,
		"total":           report.TotalFPR,
		"total without W": report.TotalFPRWithoutW,
	} {
		_, ok := rate()
		assert.False(t, ok, name)
	}

	_, ok := report.Share(assay.IncorrectAcceptable)
	assert.False(t, ok)

	_, ok = report.Projection(assay.DefaultTargetFPR)
	assert.False(t, ok)
}

func TestProjection(t *testing.T) {
	tests := []struct {
		truePositives  int
		falsePositives int
		wantProjection bool
	}{
		{truePositives: 85, falsePositives: 15, wantProjection: false},
		{truePositives: 90, falsePositives: 5, wantProjection: false},
		{truePositives: 50, falsePositives: 50, wantProjection: true},
		{truePositives: 10, falsePositives: 30, wantProjection: true},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("tp=%d fp=%d", tc.truePositives, tc.falsePositives), func(t *testing.T) {
			entries := map[string]assay.Category{}
			found := make([]types.FoundBug, 0, tc.truePositives+tc.falsePositives)

			for i := range tc.truePositives {
				identifier := fmt.Sprintf("tp:%d", i)
				entries[identifier] = assay.IncorrectCorrect
				found = append(found, types.FoundBug{Kind: assay.KindIncorrect, Identifier: identifier})
			}

			for i := range tc.falsePositives {
				identifier := fmt.Sprintf("fp:%d", i)
				entries[identifier] = assay.MissingFPS
				found = append(found, types.FoundBug{Kind: assay.KindMissing, Identifier: identifier})
			}

			report := classify.Classify(bugMap(t, entries), found)

			decrease, ok := report.Projection(assay.DefaultTargetFPR)
			require.Equal(t, tc.wantProjection, ok)

			if !ok {
				return
			}

			assert.Positive(t, decrease)

			tp, fp := float64(tc.truePositives), float64(tc.falsePositives)
			assert.InDelta(t, assay.DefaultTargetFPR, (fp-decrease)/(tp+fp-decrease), 1e-9)
		})
	}
}

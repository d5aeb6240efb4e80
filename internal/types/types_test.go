package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/farcloser/assay"
	"github.com/farcloser/assay/internal/types"
)

func TestStringSet(t *testing.T) {
	left := types.NewStringSet("a", "b", "c")
	right := types.NewStringSet("c", "b", "d")

	assert.Equal(t, []string{"a"}, left.Difference(right).Sorted())
	assert.Equal(t, []string{"d"}, right.Difference(left).Sorted())
	assert.False(t, left.Equal(right))
	assert.True(t, left.Equal(types.NewStringSet("c", "a", "b")))
	assert.Equal(t, []string{"a", "b", "c"}, left.Sorted())
}

func TestBugMap(t *testing.T) {
	db := types.NewBugMap()

	assert.True(t, db.Insert("x", assay.IncorrectPartialTrue))
	assert.True(t, db.Insert("y", assay.MissingAcceptable))
	assert.True(t, db.Insert("z", "Q_UNKNOWN"))
	assert.False(t, db.Insert("x", assay.MissingCorrect), "duplicate identifiers are rejected")

	category, ok := db.Category("x")
	assert.True(t, ok)
	assert.Equal(t, assay.IncorrectPartialTrue, category)

	_, ok = db.Category("nope")
	assert.False(t, ok)

	assert.Equal(t, types.NewStringSet("x"), db.InGroup(assay.ExpectedPT))
	assert.Equal(t, types.NewStringSet("y"), db.InGroup(assay.ExpectedAorC))
	assert.Equal(t, types.NewStringSet("z"), db.ByCategory()["Q_UNKNOWN"])
}

func TestBuckets(t *testing.T) {
	buckets := types.NewBuckets()
	buckets.Add(assay.MissingWarning, "b")
	buckets.Add(assay.IncorrectAcceptable, "a")
	buckets.Add(assay.MissingWarning, "a")
	buckets.Add(assay.MissingWarning, "a")

	assert.Equal(t, []assay.Category{assay.MissingWarning, assay.IncorrectAcceptable}, buckets.Categories())
	assert.Equal(t, 2, buckets.Size(assay.MissingWarning))
	assert.Equal(t, 0, buckets.Size(assay.MissingL))
	assert.Equal(t, 3, buckets.SizeOf(assay.Interesting)+buckets.Size(assay.IncorrectAcceptable))
	assert.Equal(t, []string{"a", "b"}, buckets.Members(assay.MissingWarning))
	assert.Equal(t, 3, buckets.Total())
}

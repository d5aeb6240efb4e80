package types

import (
	"maps"
	"slices"

	"github.com/farcloser/assay"
)

// StringSet is an unordered set of strings.
type StringSet map[string]struct{}

// NewStringSet returns a set holding the given values.
func NewStringSet(values ...string) StringSet {
	set := make(StringSet, len(values))
	for _, value := range values {
		set.Add(value)
	}

	return set
}

func (s StringSet) Add(value string) {
	s[value] = struct{}{}
}

func (s StringSet) Has(value string) bool {
	_, ok := s[value]

	return ok
}

// Difference returns the members of s absent from other.
func (s StringSet) Difference(other StringSet) StringSet {
	diff := make(StringSet)

	for value := range s {
		if !other.Has(value) {
			diff.Add(value)
		}
	}

	return diff
}

// Equal reports whether both sets hold the same members.
func (s StringSet) Equal(other StringSet) bool {
	if len(s) != len(other) {
		return false
	}

	for value := range s {
		if !other.Has(value) {
			return false
		}
	}

	return true
}

// Sorted returns the members in lexical order.
func (s StringSet) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}

// BugMap is the ground-truth bug database: identifier to category.
// It is built once from a bugs file and only read afterwards.
type BugMap struct {
	categories map[string]assay.Category
	// identifiers in file order
	order []string
}

func NewBugMap() *BugMap {
	return &BugMap{categories: map[string]assay.Category{}}
}

// Insert records an identifier. It returns false when the identifier is already present.
func (m *BugMap) Insert(identifier string, category assay.Category) bool {
	if _, ok := m.categories[identifier]; ok {
		return false
	}

	m.categories[identifier] = category
	m.order = append(m.order, identifier)

	return true
}

// Category returns the ground-truth category of an identifier.
func (m *BugMap) Category(identifier string) (assay.Category, bool) {
	category, ok := m.categories[identifier]

	return category, ok
}

func (m *BugMap) Len() int {
	return len(m.order)
}

// Identifiers returns every identifier of the database.
func (m *BugMap) Identifiers() StringSet {
	return NewStringSet(m.order...)
}

// InGroup returns the identifiers whose category belongs to the group.
func (m *BugMap) InGroup(group []assay.Category) StringSet {
	set := make(StringSet)

	for _, identifier := range m.order {
		if m.categories[identifier].In(group) {
			set.Add(identifier)
		}
	}

	return set
}

// ByCategory returns category to identifier set.
func (m *BugMap) ByCategory() map[assay.Category]StringSet {
	res := make(map[assay.Category]StringSet)

	for _, identifier := range m.order {
		category := m.categories[identifier]
		if res[category] == nil {
			res[category] = make(StringSet)
		}

		res[category].Add(identifier)
	}

	return res
}

// FoundBug is one potential bug reported by the analyzer.
type FoundBug struct {
	Kind       assay.BugKind
	Identifier string
}

// GroupByKind returns bug kind to identifier set.
func GroupByKind(found []FoundBug) map[assay.BugKind]StringSet {
	res := make(map[assay.BugKind]StringSet)

	for _, bug := range found {
		if res[bug.Kind] == nil {
			res[bug.Kind] = make(StringSet)
		}

		res[bug.Kind].Add(bug.Identifier)
	}

	return res
}

// Identifiers flattens found bugs into one identifier set.
func Identifiers(found []FoundBug) StringSet {
	set := make(StringSet, len(found))
	for _, bug := range found {
		set.Add(bug.Identifier)
	}

	return set
}

// Buckets maps categories to the found identifiers attributed to them, remembering the order in which
// categories first appeared.
type Buckets struct {
	sets  map[assay.Category]StringSet
	order []assay.Category
}

func NewBuckets() *Buckets {
	return &Buckets{sets: map[assay.Category]StringSet{}}
}

func (b *Buckets) Add(category assay.Category, identifier string) {
	set, ok := b.sets[category]
	if !ok {
		set = make(StringSet)
		b.sets[category] = set
		b.order = append(b.order, category)
	}

	set.Add(identifier)
}

// Size returns the number of identifiers in a category, zero for absent categories.
func (b *Buckets) Size(category assay.Category) int {
	return len(b.sets[category])
}

// SizeOf sums the sizes of a group of categories.
func (b *Buckets) SizeOf(group []assay.Category) int {
	total := 0
	for _, category := range group {
		total += b.Size(category)
	}

	return total
}

// Members returns the identifiers of a category in lexical order.
func (b *Buckets) Members(category assay.Category) []string {
	return b.sets[category].Sorted()
}

// Categories returns the categories in first-seen order.
func (b *Buckets) Categories() []assay.Category {
	return slices.Clone(b.order)
}

// Total is the sum of every bucket size.
func (b *Buckets) Total() int {
	total := 0
	for _, set := range b.sets {
		total += len(set)
	}

	return total
}

/*
False Positive Rate Interpretation

FPR = FP / (TP + FP), computed per group and in total.

| Group     | False positives                    | True positives      |
|-----------|------------------------------------|---------------------|
| Incorrect | I_W + I_L + I_FPS + I_FNE + I_PF   | I_A + I_C + I_PT    |
| Missing   | M_W + M_L + M_FPS + M_FNE + M_PF   | M_A + M_C + M_PT    |

Uncategorized buckets (I_UC, T_UC, S_UC, M_UC) count as neither: they are reported in the absolute totals only.
W (I_W + M_W) is removed from both sides for the "without W" variant.
*/

// PositiveCounts holds the true and false positive counts of a group.
type PositiveCounts struct {
	TruePositives  int
	FalsePositives int
	Uncategorized  int
}

// Absolute is every classified found bug of the group, optionally with the uncategorized ones.
func (p PositiveCounts) Absolute(withUncategorized bool) int {
	total := p.TruePositives + p.FalsePositives
	if withUncategorized {
		total += p.Uncategorized
	}

	return total
}

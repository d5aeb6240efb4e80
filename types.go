package assay

// BugKind is the kind of potential bug reported by the analyzer, derived from the report line prefix.
type BugKind int

const (
	// KindIncorrect is a call whose error values are not all checked.
	KindIncorrect BugKind = iota
	// KindTruncation is a truncation of error values.
	KindTruncation
	// KindSignedness is a signedness bug.
	KindSignedness
	// KindMissing is a call with no error check at all.
	KindMissing
)

// BugKinds lists every kind in prefix-matching order.
//
//nolint:gochecknoglobals // configuration data, effectively const
var BugKinds = []BugKind{KindIncorrect, KindTruncation, KindSignedness, KindMissing}

func (k BugKind) String() string {
	switch k {
	case KindIncorrect:
		return "I"
	case KindTruncation:
		return "T"
	case KindSignedness:
		return "S"
	case KindMissing:
		return "M"
	default:
		return "?"
	}
}

// Prefix returns the analyzer output prefix announcing a bug of this kind.
func (k BugKind) Prefix() string {
	switch k {
	case KindIncorrect:
		return "Potential bug, not all error values are checked for the following call: "
	case KindTruncation:
		return "Potential bug, truncation of error values: "
	case KindSignedness:
		return "Potential bug, signedness bug: "
	case KindMissing:
		return "Potential bug, missing check for the following call: "
	default:
		return ""
	}
}

// Uncategorized is the synthesized bucket for identifiers of this kind absent from the bug database.
func (k BugKind) Uncategorized() Category {
	return Category(k.String() + "_UC")
}

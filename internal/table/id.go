package table

import (
	"cmp"
	"slices"
	"strconv"
)

// RowID identifies a row for selection purposes. It holds either a string or an
// integer; the two never compare equal, so StringID("1") and IntID(1) are distinct.
type RowID struct {
	str     string
	num     int64
	numeric bool
}

// StringID returns a string row id.
func StringID(s string) RowID {
	return RowID{str: s}
}

// IntID returns an integer row id.
func IntID(n int64) RowID {
	return RowID{num: n, numeric: true}
}

// IsNumeric reports whether the id holds an integer.
func (id RowID) IsNumeric() bool {
	return id.numeric
}

// Int returns the integer value and whether the id is numeric.
func (id RowID) Int() (int64, bool) {
	return id.num, id.numeric
}

// String returns the id's textual form.
func (id RowID) String() string {
	if id.numeric {
		return strconv.FormatInt(id.num, 10)
	}
	return id.str
}

func compareIDs(a, b RowID) int {
	switch {
	case a.numeric && !b.numeric:
		return -1
	case !a.numeric && b.numeric:
		return 1
	case a.numeric:
		return cmp.Compare(a.num, b.num)
	default:
		return cmp.Compare(a.str, b.str)
	}
}

// Selection is a set of row ids.
type Selection map[RowID]struct{}

// NewSelection returns a selection holding ids.
func NewSelection(ids ...RowID) Selection {
	s := make(Selection, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is selected.
func (s Selection) Has(id RowID) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of selected ids.
func (s Selection) Len() int {
	return len(s)
}

// Clone returns an independent copy. Cloning a nil selection yields an empty one.
func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// IDs returns the selected ids in a deterministic order: integers first, ascending,
// then strings, ascending.
func (s Selection) IDs() []RowID {
	ids := make([]RowID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, compareIDs)
	return ids
}

package schema

import "strconv"

// Field is the position of a field within the Schema that created it.
// Handles from different schemas must never be mixed.
type Field uint32

func (f Field) String() string {
	return "Field(" + strconv.FormatUint(uint64(f), 10) + ")"
}

// 17 Oct 2026

package restype

import (
	"strings"
)

// Compare orders two types by code. It returns -1, 0 or +1 and can be
// handed straight to slices.SortFunc. Zero means equal codes, which is
// not quite the same as the same type, since an invalidated type has
// the code of its valid twin.
func Compare(a, b *Type) int { return strings.Compare(a.code, b.code) }

// Less is Compare(a, b) < 0.
func Less(a, b *Type) bool { return a.code < b.code }

// ByCode sorts a slice of types by code.
type ByCode []*Type

func (s ByCode) Len() int           { return len(s) }
func (s ByCode) Less(i, j int) bool { return s[i].code < s[j].code }
func (s ByCode) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

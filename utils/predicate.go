package utils

import "cmp"

// Between reports whether lo <= v <= hi.
func Between[T cmp.Ordered](lo, v, hi T) bool {
	return cmp.Compare(lo, v) <= 0 && cmp.Compare(v, hi) <= 0
}

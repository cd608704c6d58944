package buf

import "math"

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end], true
}

// Has reports whether b[off:off+n] is within bounds.
func Has(b []byte, off, n int) bool {
	_, ok := Slice(b, off, n)
	return ok
}

// Fits reports whether n bytes starting at off end at or before limit.
// limit is an exclusive end offset such as a record or parent end.
func Fits(off, n, limit int) bool {
	if off < 0 || n < 0 {
		return false
	}
	end, ok := AddOverflowSafe(off, n)
	return ok && end <= limit
}

// Clamp returns end limited to the range [lo, hi].
func Clamp(end, lo, hi int) int {
	if end < lo {
		return lo
	}
	if end > hi {
		return hi
	}
	return end
}

// End computes start+length for a declared record length and reports whether
// the result stayed inside limit. The returned end is clamped to limit.
func End(start, length, limit int) (int, bool) {
	end, ok := AddOverflowSafe(start, length)
	if !ok || end > limit {
		return limit, false
	}
	return end, true
}

package util

import (
	"math"
	"strconv"
	"strings"
)

// ParseCredit coerces a credit cell to a float. Anything that is not a finite
// number becomes 0.
func ParseCredit(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseOptionalInt coerces an integer-valued cell. Integral floats such as
// "45.0" (what spreadsheets hand back for numeric cells) are accepted; any
// other value yields nil rather than zero.
func ParseOptionalInt(raw string) *int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return IntPtr(n)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return nil
	}
	return IntPtr(int(f))
}

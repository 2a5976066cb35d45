package fields

import (
	"regexp"
	"strconv"
	"strings"

	"ingest/internal/util"
)

const rangeMarker = "->"

var (
	reTokenSide = regexp.MustCompile(`^([A-Za-z0-9_]*?)(\d+)$`)
	reDigits    = regexp.MustCompile(`^\d+$`)
)

// ExpandClassToken turns a compact class token into concrete class names:
//
//	"19SE1->SE5" -> 19SE1 19SE2 19SE3 19SE4 19SE5
//	"22SE1->2"   -> 22SE1 22SE2
//	"ABC"        -> ABC
//
// A range that cannot be read, whose right prefix is not a suffix of the left
// prefix, or that runs backwards is returned as the literal token.
func ExpandClassToken(token string) []string {
	token = strings.TrimSpace(token)
	if !strings.Contains(token, rangeMarker) {
		if token == "" {
			return nil
		}
		return []string{token}
	}

	left, right, _ := strings.Cut(token, rangeMarker)
	left = strings.TrimSpace(left)
	right = strings.TrimSpace(right)

	m := reTokenSide.FindStringSubmatch(left)
	if m == nil {
		return []string{token}
	}
	prefix := m[1]
	start, err := strconv.Atoi(m[2])
	if err != nil {
		return []string{token}
	}

	var end int
	if reDigits.MatchString(right) {
		if end, err = strconv.Atoi(right); err != nil {
			return []string{token}
		}
	} else {
		rm := reTokenSide.FindStringSubmatch(right)
		if rm == nil || !strings.HasSuffix(prefix, rm[1]) {
			return []string{token}
		}
		if end, err = strconv.Atoi(rm[2]); err != nil {
			return []string{token}
		}
	}

	if end < start {
		return []string{token}
	}

	out := make([]string, 0, end-start+1)
	for i := start; i <= end; i++ {
		out = append(out, prefix+strconv.Itoa(i))
	}
	return out
}

// CohortAndClasses expands token and reads the cohort from the leading
// digits of the first class, e.g. 19 for "19SE1". The cohort is nil when the
// first class does not start with a digit.
func CohortAndClasses(token string) (*int, []string) {
	classes := ExpandClassToken(token)
	if len(classes) == 0 {
		return nil, classes
	}
	if n, ok := util.LeadingInt(classes[0]); ok {
		return &n, classes
	}
	return nil, classes
}

package fields

import (
	"regexp"
	"strings"
)

var reParenthesised = regexp.MustCompile(`\s*\([^)]+\)`)

// CleanCourseName drops parenthesised qualifiers:
// "Thực tập doanh nghiệp (IT)" becomes "Thực tập doanh nghiệp".
func CleanCourseName(name string) string {
	return strings.TrimSpace(reParenthesised.ReplaceAllString(name, ""))
}

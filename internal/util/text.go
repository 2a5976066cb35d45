package util

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	reSpaces        = regexp.MustCompile(`\s+`)
	reLeadingDigits = regexp.MustCompile(`^\d+`)
)

// NormalizeText composes a cell to NFC so that decomposed Vietnamese
// diacritics (common in exports from macOS and some web portals) match the
// precomposed literals used by the parsers.
func NormalizeText(input string) string {
	s := strings.ReplaceAll(input, "\u00a0", " ")
	return norm.NFC.String(s)
}

func NormalizeSpaces(input string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(input, " "))
}

// IsUpper reports whether s has at least one cased rune and no lower or
// title case runes. Digits and punctuation are ignored.
func IsUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

func RuneLen(s string) int {
	return len([]rune(s))
}

// LeadingInt parses the run of ASCII digits at the start of s.
func LeadingInt(s string) (int, bool) {
	digits := reLeadingDigits.FindString(s)
	if digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

func StringPtr(v string) *string { return &v }

func IntPtr(v int) *int { return &v }

package fields

import (
	"regexp"
	"strconv"
	"strings"

	"ingest/internal"
	"ingest/internal/util"
)

var (
	rePhysicalEducation = regexp.MustCompile(`^GDTC\s*(\d+)\s*(?:\((.*?)\))?\s*(?:-(\d+))?`)
	reMajor             = regexp.MustCompile(`\(([\p{L}\p{N}_]+)\)`)
	reSection           = regexp.MustCompile(`\(([-\d]+)\)`)
	reNameNoise         = regexp.MustCompile(`\(.*?\)|_.*`)
)

// englishMarker flags a class taught in English, e.g. "Lập trình web_TA".
const englishMarker = "_TA"

// Parser decomposes the free-text cells that depend on the vocabulary.
type Parser struct {
	vocab Vocabulary
}

func NewParser(vocab Vocabulary) *Parser {
	return &Parser{vocab: vocab}
}

// ParseClassName splits a "Tên lớp học phần" cell. A blank cell yields the
// zero value.
func (p *Parser) ParseClassName(cell string) internal.ClassAttributes {
	s := strings.TrimSpace(util.NormalizeText(cell))
	if s == "" {
		return internal.ClassAttributes{}
	}

	if m := rePhysicalEducation.FindStringSubmatch(s); m != nil {
		attrs := internal.ClassAttributes{
			Name:     "GDTC " + m[1],
			Language: internal.LanguageVietnamese,
			Subtopic: internal.SubtopicNone,
		}
		if m[2] != "" {
			attrs.Subtopic = m[2]
		}
		if m[3] != "" {
			if n, err := strconv.Atoi(m[3]); err == nil {
				attrs.SectionNumber = &n
			}
		}
		return attrs
	}

	attrs := internal.ClassAttributes{Language: internal.LanguageVietnamese}

	// Only the first parenthesised word is considered; "(01)" ahead of
	// "(SE)" means no major.
	if m := reMajor.FindStringSubmatch(s); m != nil && p.vocab.IsMajor(m[1]) {
		attrs.Major = m[1]
	}
	if m := reSection.FindStringSubmatch(s); m != nil {
		attrs.SectionNumber = parseSection(m[1])
	}
	if strings.Contains(s, englishMarker) {
		attrs.Language = internal.LanguageEnglish
	}
	attrs.Subtopic = subtopicAfterUnderscore(s)
	attrs.Name = strings.TrimSpace(reNameNoise.ReplaceAllString(s, ""))

	return attrs
}

// parseSection turns "-01" or "002" into 1 or 2.
func parseSection(raw string) *int {
	digits := strings.TrimLeft(raw, "-0")
	if digits == "" {
		return nil
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return nil
	}
	return &n
}

// subtopicAfterUnderscore returns the rest of the line after the first
// underscore that does not introduce the English marker.
func subtopicAfterUnderscore(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			continue
		}
		rest := s[i+1:]
		if strings.HasPrefix(rest, "TA") {
			continue
		}
		if j := strings.IndexByte(rest, '\n'); j >= 0 {
			rest = rest[:j]
		}
		if rest == "" {
			continue
		}
		return rest
	}
	return ""
}

package fields

import (
	"strings"

	"ingest/internal/util"
)

// Vocabulary holds the fixed word lists the parsers validate against. It is
// built once from configuration and never mutated.
type Vocabulary struct {
	majors       map[string]struct{}
	invalidRooms map[string]struct{}
}

func NewVocabulary(validMajors, invalidRooms []string) Vocabulary {
	v := Vocabulary{
		majors:       make(map[string]struct{}, len(validMajors)),
		invalidRooms: make(map[string]struct{}, len(invalidRooms)),
	}
	for _, m := range validMajors {
		if m = strings.TrimSpace(util.NormalizeText(m)); m != "" {
			v.majors[m] = struct{}{}
		}
	}
	for _, r := range invalidRooms {
		if r = strings.TrimSpace(util.NormalizeText(r)); r != "" {
			v.invalidRooms[r] = struct{}{}
		}
	}
	return v
}

func (v Vocabulary) IsMajor(s string) bool {
	_, ok := v.majors[s]
	return ok
}

func (v Vocabulary) IsInvalidRoom(s string) bool {
	_, ok := v.invalidRooms[s]
	return ok
}

package fields

import (
	"strings"

	"ingest/internal"
	"ingest/internal/util"
)

// RefineSubtopic splits the subtopic left over by ParseClassName into the
// class group the section is reserved for and a human readable subtopic:
//
//	"ABC"                                -> {"ABC", ""}
//	"EF_Tiền số và công nghệ blockchain" -> {"EF", "Tiền số và công nghệ blockchain"}
//	"GBA,BA_TA"                          -> {"GBA, BA", ""}
//	"GIT_UX thực tế_TA"                  -> {"GIT", "UX thực tế"}
func RefineSubtopic(subtopic string) internal.RefinedSubtopic {
	if strings.TrimSpace(subtopic) == "" {
		return internal.RefinedSubtopic{}
	}

	parts := strings.Split(subtopic, "_")
	if len(parts) == 1 {
		value := strings.TrimSpace(parts[0])
		if looksLikeAcronym(value, 5) && !strings.Contains(value, " ") {
			return internal.RefinedSubtopic{ClassGroup: value}
		}
		return internal.RefinedSubtopic{Subtopic: value}
	}

	// Anything after the second part is a trailing marker and is dropped.
	group := strings.TrimSpace(strings.ReplaceAll(parts[0], ",", ", "))
	rest := strings.TrimSpace(parts[1])
	if looksLikeAcronym(rest, 3) {
		return internal.RefinedSubtopic{ClassGroup: group}
	}
	return internal.RefinedSubtopic{ClassGroup: group, Subtopic: rest}
}

func looksLikeAcronym(s string, maxLen int) bool {
	return util.IsUpper(s) && util.RuneLen(s) <= maxLen
}

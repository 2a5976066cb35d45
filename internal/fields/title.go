package fields

import (
	"regexp"
	"strconv"

	"ingest/internal/util"
)

const UnknownAcademicYear = "UNKNOWN"

var (
	reAcademicYear = regexp.MustCompile(`(?i)NĂM\s*HỌC\s+(\d{4}-\d{4})`)
	reSemester     = regexp.MustCompile(`(?i)HỌC\s*KỲ\s+(\d+)`)
)

// ExtractTitleMetadata finds the academic year and semester number in a sheet
// title like "DANH MỤC HỌC PHẦN HỌC KỲ 1 NĂM HỌC 2025-2026". Missing parts
// come back as UnknownAcademicYear and 0.
func ExtractTitleMetadata(title string) (string, int) {
	s := util.NormalizeText(title)

	academicYear := UnknownAcademicYear
	if m := reAcademicYear.FindStringSubmatch(s); m != nil {
		academicYear = m[1]
	}

	semester := 0
	if m := reSemester.FindStringSubmatch(s); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			semester = n
		}
	}
	return academicYear, semester
}

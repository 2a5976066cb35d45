package fields

import (
	"regexp"
	"strconv"
	"strings"

	"ingest/internal"
	"ingest/internal/util"
)

var (
	reDay     = regexp.MustCompile(`(Thứ [\p{L}\p{N}_]+)`)
	rePeriods = regexp.MustCompile(`Tiết ([\d,->]+)`)
)

// ParseSchedule reads a "Thời khóa biểu" cell such as
// "Thứ 2 - Tiết 1,2,3->5". The period list runs over digits and everything
// from ',' to '>', so stray punctuation stays in the capture and a single
// malformed element empties the whole list.
func ParseSchedule(cell string) internal.Schedule {
	s := strings.TrimSpace(util.NormalizeText(cell))
	if s == "" {
		return internal.Schedule{}
	}

	var out internal.Schedule
	if m := reDay.FindStringSubmatch(s); m != nil {
		out.Day = m[1]
	}
	if m := rePeriods.FindStringSubmatch(s); m != nil {
		out.Periods = parsePeriods(m[1])
	}
	return out
}

func parsePeriods(list string) []int {
	var periods []int
	for _, part := range strings.Split(list, ",") {
		if !strings.Contains(part, rangeMarker) {
			n, err := strconv.Atoi(part)
			if err != nil {
				return nil
			}
			periods = append(periods, n)
			continue
		}

		bounds := strings.Split(part, rangeMarker)
		if len(bounds) != 2 {
			return nil
		}
		start, err := strconv.Atoi(bounds[0])
		if err != nil {
			return nil
		}
		end, err := strconv.Atoi(bounds[1])
		if err != nil {
			return nil
		}
		for i := start; i <= end; i++ {
			periods = append(periods, i)
		}
	}
	return periods
}

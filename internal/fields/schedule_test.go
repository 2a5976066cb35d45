package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSchedule(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		day     string
		periods []int
	}{
		{name: "range", input: "Thứ 2 - Tiết 1,2,3->5", day: "Thứ 2", periods: []int{1, 2, 3, 4, 5}},
		{name: "singles", input: "Thứ 7, Tiết 6,7", day: "Thứ 7", periods: []int{6, 7}},
		{name: "day only", input: "Thứ Hai", day: "Thứ Hai"},
		{name: "malformed element resets list", input: "Thứ 3 - Tiết 1,2,", day: "Thứ 3"},
		{name: "dash is not a range", input: "Thứ 4 - Tiết 1-3", day: "Thứ 4"},
		{name: "double range", input: "Thứ 5 - Tiết 1->2->3", day: "Thứ 5"},
		{name: "backwards range is empty", input: "Thứ 6 - Tiết 5->3", day: "Thứ 6"},
		{name: "fat arrow is malformed", input: "Thứ 2 - Tiết 1=>3", day: "Thứ 2"},
		{name: "semicolon joined sessions", input: "Thứ 2 - Tiết 1,2,3; Thứ 4 - Tiết 6,7", day: "Thứ 2"},
		{name: "trailing period", input: "Thứ 2 - Tiết 1->3.", day: "Thứ 2"},
		{name: "colon separated", input: "Thứ 5 - Tiết 1:3", day: "Thứ 5"},
		{name: "blank", input: ""},
		{name: "no markers", input: "Chưa có lịch"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseSchedule(tc.input)
			assert.Equal(t, tc.day, got.Day)
			if len(tc.periods) == 0 {
				assert.Empty(t, got.Periods)
				return
			}
			assert.Equal(t, tc.periods, got.Periods)
		})
	}
}

package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandClassToken(t *testing.T) {
	cases := []struct {
		input string
		want  []string
	}{
		{input: "19SE1->SE5", want: []string{"19SE1", "19SE2", "19SE3", "19SE4", "19SE5"}},
		{input: "22SE1->2", want: []string{"22SE1", "22SE2"}},
		{input: " 21GIT1 -> 21GIT3 ", want: []string{"21GIT1", "21GIT2", "21GIT3"}},
		{input: "ABC", want: []string{"ABC"}},
		{input: "19SE1->X5", want: []string{"19SE1->X5"}},
		{input: "19SE5->SE1", want: []string{"19SE5->SE1"}},
		{input: "SE->5", want: []string{"SE->5"}},
		{input: "19SE1->", want: []string{"19SE1->"}},
		{input: "19SE1->SE1", want: []string{"19SE1"}},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.want, ExpandClassToken(tc.input))
		})
	}

	assert.Empty(t, ExpandClassToken("  "))
}

func TestCohortAndClasses(t *testing.T) {
	cohort, classes := CohortAndClasses("19SE1->SE3")
	require.NotNil(t, cohort)
	assert.Equal(t, 19, *cohort)
	assert.Len(t, classes, 3)

	cohort, classes = CohortAndClasses("SE1")
	assert.Nil(t, cohort)
	assert.Equal(t, []string{"SE1"}, classes)

	cohort, classes = CohortAndClasses("")
	assert.Nil(t, cohort)
	assert.Empty(t, classes)
}

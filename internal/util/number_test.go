package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCredit(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "integer", input: "3", want: 3},
		{name: "decimal", input: " 1.5 ", want: 1.5},
		{name: "blank", input: "", want: 0},
		{name: "text", input: "ba", want: 0},
		{name: "decimal comma is not a number", input: "1,5", want: 0},
		{name: "nan", input: "nan", want: 0},
		{name: "inf", input: "Inf", want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseCredit(tc.input))
		})
	}
}

func TestParseOptionalInt(t *testing.T) {
	got := ParseOptionalInt("45")
	require.NotNil(t, got)
	assert.Equal(t, 45, *got)

	got = ParseOptionalInt("60.0")
	require.NotNil(t, got)
	assert.Equal(t, 60, *got)

	assert.Nil(t, ParseOptionalInt(""))
	assert.Nil(t, ParseOptionalInt("45.5"))
	assert.Nil(t, ParseOptionalInt("bốn mươi"))
}

package catalog

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ingest/internal"
)

func sp(v string) *string { return &v }

func TestBuildKeepsRowOrderPerClass(t *testing.T) {
	rows := []internal.CourseRow{
		{CourseName: "Lập trình Java (SE)", TheoryCredits: "2", PracticalCredits: "1", TotalCredits: "3", ClassTokens: "19SE1->SE2"},
		{CourseName: "Toán rời rạc", TheoryCredits: "3", PracticalCredits: "0", TotalCredits: "3", ClassTokens: "19SE1", Subtopic: sp("Đại số")},
	}

	c := Build("2024-2025", 2, rows)

	first := c.Courses("semester_2", 19, "19SE1")
	require.Len(t, first, 2)
	assert.Equal(t, "Lập trình Java", first[0].CourseName)
	assert.Equal(t, 2.0, first[0].TheoryCredits)
	assert.Nil(t, first[0].Subtopic)
	assert.Equal(t, "Toán rời rạc", first[1].CourseName)
	require.NotNil(t, first[1].Subtopic)
	assert.Equal(t, "Đại số", *first[1].Subtopic)

	second := c.Courses("semester_2", 19, "19SE2")
	require.Len(t, second, 1)
	assert.Equal(t, "Lập trình Java", second[0].CourseName)

	assert.Equal(t, 3, c.Count())
}

func TestBuildSkipsRowsWithoutClassTokens(t *testing.T) {
	b := NewBuilder("2024-2025", 1)

	assert.Zero(t, b.Add(internal.CourseRow{CourseName: "Toán", ClassTokens: "  "}))
	assert.Zero(t, b.Add(internal.CourseRow{CourseName: "Toán", ClassTokens: "nan"}))
	assert.Zero(t, b.Add(internal.CourseRow{CourseName: "Toán", ClassTokens: " , "}))
	assert.Equal(t, 0, b.Catalog().Count())

	cohorts, ok := b.Catalog().Semesters.Get("semester_1")
	require.True(t, ok)
	assert.Zero(t, cohorts.Len())
}

func TestBuildUnknownCohortAndCredits(t *testing.T) {
	c := Build("UNKNOWN", 0, []internal.CourseRow{
		{CourseName: "Thực tập", TheoryCredits: "", PracticalCredits: "x", TotalCredits: "4.5", ClassTokens: "SE1, 20IT1->IT2"},
	})

	unknown := c.Courses(semesterUnknown, 0, "SE1")
	require.Len(t, unknown, 1)
	assert.Equal(t, 0.0, unknown[0].TheoryCredits)
	assert.Equal(t, 0.0, unknown[0].PracticalCredits)
	assert.Equal(t, 4.5, unknown[0].TotalCredits)

	assert.Len(t, c.Courses(semesterUnknown, 20, "20IT2"), 1)
}

func TestBuildInvalidRangeIsLiteralClass(t *testing.T) {
	c := Build("2024-2025", 1, []internal.CourseRow{
		{CourseName: "Toán", ClassTokens: "19SE1->X5"},
	})

	assert.Len(t, c.Courses("semester_1", 19, "19SE1->X5"), 1)
	assert.Nil(t, c.Courses("semester_1", 19, "19SE1"))
}

func TestSemesterKey(t *testing.T) {
	assert.Equal(t, "semester_1", SemesterKey(1))
	assert.Equal(t, "semester_unknown", SemesterKey(0))
}

func TestWriteJSONShapeAndOrder(t *testing.T) {
	c := Build("2025-2026", 1, []internal.CourseRow{
		{CourseName: "Toán cao cấp (IT)", TheoryCredits: "1", PracticalCredits: "1", TotalCredits: "2", ClassTokens: "22SE2, 21SE1"},
	})

	var buf bytes.Buffer
	require.NoError(t, c.WriteJSON(&buf))
	out := buf.String()

	assert.Contains(t, out, `"academic_year": "2025-2026"`)
	assert.Contains(t, out, `"course_name": "Toán cao cấp"`)
	assert.Contains(t, out, `"subtopic": null`)
	assert.Less(t, strings.Index(out, `"22"`), strings.Index(out, `"21"`))

	var decoded struct {
		AcademicYear string `json:"academic_year"`
		Semesters    map[string]map[string]map[string][]internal.CourseEntry
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Semesters["semester_1"]["21"]["21SE1"], 1)
	assert.Equal(t, 2.0, decoded.Semesters["semester_1"]["21"]["21SE1"][0].TotalCredits)
}

func TestWriteJSONKeepsHTMLCharacters(t *testing.T) {
	c := Build("2025-2026", 2, []internal.CourseRow{
		{CourseName: "A & B <x>", ClassTokens: "22SE1"},
		{CourseName: `C:\u0026`, ClassTokens: "22SE1"},
	})

	var buf bytes.Buffer
	require.NoError(t, c.WriteJSON(&buf))
	out := buf.String()

	assert.Contains(t, out, `"course_name": "A & B <x>"`)
	assert.NotContains(t, out, `\u0026 B`)
	assert.Contains(t, out, `"course_name": "C:\\u0026"`)
	assert.True(t, strings.HasSuffix(out, "}\n"))

	var decoded struct {
		Semesters map[string]map[string]map[string][]internal.CourseEntry
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	courses := decoded.Semesters["semester_2"]["22"]["22SE1"]
	require.Len(t, courses, 2)
	assert.Equal(t, "A & B <x>", courses[0].CourseName)
	assert.Equal(t, `C:\u0026`, courses[1].CourseName)
}

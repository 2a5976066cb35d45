package internal

type Language string

const (
	LanguageVietnamese Language = "Tiếng Việt"
	LanguageEnglish    Language = "Tiếng Anh"
)

const (
	// SubtopicNone marks a physical-education class without a sub-label.
	SubtopicNone = "Không có"
	// ZoneOther is the zone of a room that matches neither known shape.
	ZoneOther = "Khác"
)

// ClassAttributes is what a "Tên lớp học phần" cell decomposes into.
type ClassAttributes struct {
	Name          string
	SectionNumber *int
	Language      Language
	Major         string
	Subtopic      string
}

type RefinedSubtopic struct {
	ClassGroup string
	Subtopic   string
}

type Schedule struct {
	Day     string
	Periods []int
}

type Room struct {
	Zone       string
	RoomNumber string
}

// ClassRecord is one flattened row of the classes output.
type ClassRecord struct {
	CourseName    string
	SectionNumber *int
	Language      Language
	Major         string
	ClassGroup    string
	Subtopic      string
	Instructor    string
	Day           string
	Periods       []int
	Zone          string
	RoomNumber    string
	Weeks         string
	ClassSize     *int
}

// CourseRow is one cleaned row of the course catalogue sheet.
type CourseRow struct {
	CourseName       string
	TheoryCredits    string
	PracticalCredits string
	TotalCredits     string
	Subtopic         *string
	ClassTokens      string
}

type CourseEntry struct {
	CourseName       string  `json:"course_name"`
	TheoryCredits    float64 `json:"theory_credits"`
	PracticalCredits float64 `json:"practical_credits"`
	TotalCredits     float64 `json:"total_credits"`
	Subtopic         *string `json:"subtopic"`
}

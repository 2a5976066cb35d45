package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	defaultValidMajors = []string{
		"AI", "BA", "CE", "CS", "DA", "DM", "DS", "EF",
		"ES", "GBA", "GIT", "IOT", "IT", "MKT", "NS", "SE",
	}
	defaultInvalidRooms = []string{
		"Chưa xếp phòng",
		"Phòng trực tuyến",
		"Sân thể thao",
		"Học tại doanh nghiệp",
		"Ngoài trường",
	}
	defaultEncodings = []string{"UTF-8", "windows-1258", "windows-1252", "ISO-8859-1"}
)

type Config struct {
	ValidMajors  []string
	InvalidRooms []string

	CSVEncodings []string

	CourseSheet      string
	CourseHeaderRow  int
	CourseCSVOutput  string
	CourseJSONOutput string

	LogLevel string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		ValidMajors:  getEnvList("VALID_MAJORS", ",", defaultValidMajors),
		InvalidRooms: getEnvList("INVALID_ROOMS", "|", defaultInvalidRooms),

		CSVEncodings: getEnvList("CSV_ENCODINGS", ",", defaultEncodings),

		CourseSheet:      getEnv("COURSE_SHEET", "Sheet1"),
		CourseHeaderRow:  getEnvInt("COURSE_HEADER_ROW", 4),
		CourseCSVOutput:  getEnv("COURSE_CSV_OUTPUT", "ingest_data/cleaned/cleaned_data_courses.csv"),
		CourseJSONOutput: getEnv("COURSE_JSON_OUTPUT", "ingest_data/cleaned/courses_by_class.json"),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if cfg.CourseHeaderRow < 0 {
		return Config{}, fmt.Errorf("COURSE_HEADER_ROW must be >= 0, got %d", cfg.CourseHeaderRow)
	}
	if len(cfg.CSVEncodings) == 0 {
		return Config{}, fmt.Errorf("CSV_ENCODINGS must name at least one encoding")
	}

	return cfg, nil
}

// Logger builds the diagnostics logger. Progress output for users goes to
// stdout separately; this one writes to stderr.
func (c Config) Logger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvList(key, sep string, fallback []string) []string {
	value := getEnv(key, "")
	if strings.TrimSpace(value) == "" {
		return append([]string(nil), fallback...)
	}
	out := []string{}
	for _, part := range strings.Split(value, sep) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

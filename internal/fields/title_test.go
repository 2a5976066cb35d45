package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTitleMetadata(t *testing.T) {
	year, sem := ExtractTitleMetadata("DANH MỤC HỌC PHẦN GIẢNG DẠY HỌC KỲ 2 NĂM HỌC 2024-2025")
	assert.Equal(t, "2024-2025", year)
	assert.Equal(t, 2, sem)

	year, sem = ExtractTitleMetadata("Danh mục học phần học kỳ 1 năm học 2025-2026")
	assert.Equal(t, "2025-2026", year)
	assert.Equal(t, 1, sem)

	year, sem = ExtractTitleMetadata("Danh mục học phần")
	assert.Equal(t, UnknownAcademicYear, year)
	assert.Equal(t, 0, sem)
}

package table

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/gabriel-vasile/mimetype"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"

	"ingest/internal/util"
)

type Format string

const (
	FormatXLSX      Format = "xlsx"
	FormatHTML      Format = "html"
	FormatDelimited Format = "delimited"
	FormatLegacyXLS Format = "xls"
)

const utf8BOM = "\ufeff"

// maxColspan caps the padding one HTML cell can add to a row.
const maxColspan = 1000

// Loader reads a spreadsheet export into a Table. The format is sniffed from
// the content because portals routinely ship HTML or CSV under an .xls name.
type Loader struct {
	encodings []string
	log       *slog.Logger
}

func NewLoader(encodings []string, log *slog.Logger) *Loader {
	if log == nil {
		log = slog.Default()
	}
	return &Loader{encodings: encodings, log: log}
}

// Load reads path. sheet selects an xlsx worksheet; empty means the first
// one. It is ignored for other formats.
func (l *Loader) Load(path, sheet string) (*Table, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	l.log.Debug("loading input", "path", path, "format", format)

	var grid [][]string
	switch format {
	case FormatXLSX:
		grid, err = readXLSX(path, sheet)
	case FormatHTML:
		grid, err = readHTML(path)
	case FormatDelimited:
		grid, err = l.readDelimited(path)
	default:
		return nil, fmt.Errorf("%w: %s (%s); re-save the workbook as .xlsx", ErrUnsupportedFormat, path, format)
	}
	if err != nil {
		return nil, err
	}

	t, err := newTable(grid)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	l.log.Debug("input loaded", "path", path, "columns", t.Width(), "rows", len(t.Rows))
	return t, nil
}

func DetectFormat(path string) (Format, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return "", fmt.Errorf("detect format of %s: %w", path, err)
	}
	ext := strings.ToLower(filepath.Ext(path))

	switch {
	case mtype.Is("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"):
		return FormatXLSX, nil
	case mtype.Is("application/zip") && ext == ".xlsx":
		return FormatXLSX, nil
	case mtype.Is("text/html"):
		return FormatHTML, nil
	case mtype.Is("application/vnd.ms-excel"), mtype.Is("application/x-ole-storage"):
		return FormatLegacyXLS, nil
	case strings.HasPrefix(mtype.String(), "text/"):
		return FormatDelimited, nil
	case ext == ".csv" || ext == ".tsv" || ext == ".txt":
		return FormatDelimited, nil
	default:
		return Format(mtype.String()), nil
	}
}

func readXLSX(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%s: %w", path, ErrEmptyTable)
		}
		sheet = sheets[0]
	} else if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q in %s", ErrSheetNotFound, sheet, path)
	}

	// Stored values, not the display text: a 1.5 credit formatted as "0" must
	// not come back as "2".
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func readHTML(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	doc, err := goquery.NewDocumentFromReader(file)
	if err != nil {
		return nil, fmt.Errorf("parse html %s: %w", path, err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("%s: no <table> element: %w", path, ErrEmptyTable)
	}

	grid := [][]string{}
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := []string{}
		tr.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, util.NormalizeSpaces(cell.Text()))
			span, _ := strconv.Atoi(cell.AttrOr("colspan", "1"))
			span = min(span, maxColspan)
			for i := 1; i < span; i++ {
				cells = append(cells, "")
			}
		})
		grid = append(grid, cells)
	})
	return grid, nil
}

func (l *Loader) readDelimited(path string) ([][]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	text, err := l.decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	text = strings.TrimPrefix(text, utf8BOM)

	r := csv.NewReader(strings.NewReader(text))
	r.Comma = sniffDelimiter(text)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	grid, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read delimited %s: %w", path, err)
	}
	return grid, nil
}

// decode tries each configured encoding in order and keeps the first one that
// yields clean text.
func (l *Loader) decode(raw []byte) (string, error) {
	for _, name := range l.encodings {
		if isUTF8Name(name) {
			if utf8.Valid(raw) {
				return string(raw), nil
			}
			l.log.Debug("input is not valid utf-8, trying fallbacks")
			continue
		}

		enc, err := ianaindex.IANA.Encoding(name)
		if err != nil || enc == nil {
			l.log.Warn("skipping unknown encoding", "encoding", name)
			continue
		}
		out, _, err := transform.Bytes(enc.NewDecoder(), raw)
		if err != nil || bytes.ContainsRune(out, utf8.RuneError) {
			continue
		}
		l.log.Info("decoded input with fallback encoding", "encoding", name)
		return string(out), nil
	}
	return "", ErrUndecodable
}

func isUTF8Name(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "utf-8", "utf8":
		return true
	}
	return false
}

// sniffDelimiter picks the most frequent of comma, semicolon and tab on the
// first line. Vietnamese locale Excel exports CSV with semicolons.
func sniffDelimiter(text string) rune {
	first, _, _ := strings.Cut(text, "\n")
	best, bestCount := ',', strings.Count(first, ",")
	for _, d := range []rune{';', '\t'} {
		if n := strings.Count(first, string(d)); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}

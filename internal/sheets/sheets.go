// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sheets reads spreadsheet workbooks into raw records. A workbook is
// a local .xlsx or .csv file, or a Google Sheets document downloaded as an
// XLSX export. The first row of every sheet is the header; each later row
// becomes one record keyed by header text.
package sheets

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/harvest/pkg/types"
)

// ErrSheetNotFound is returned by Rows for a sheet the workbook lacks.
var ErrSheetNotFound = errors.New("sheet not found")

var exportBase = "https://docs.google.com/spreadsheets/d/"

// Workbook gives access to the rows of named sheets.
type Workbook interface {
	SheetNames() []string
	Rows(sheet string) ([]types.RawRecord, error)
}

// Book is a workbook read fully into memory. Cells hold strings, or
// time.Time for XLSX cells formatted as dates.
type Book struct {
	names  []string
	sheets map[string][][]any
	// single marks a CSV book, whose one table answers every sheet name.
	single bool
}

func (b *Book) SheetNames() []string { return slices.Clone(b.names) }

// Rows returns the records of sheet in row order. Cells are trimmed strings
// kept as written, except date cells of an XLSX sheet, which are time.Time.
// Empty cells are absent keys and rows with no cells at all are skipped.
func (b *Book) Rows(sheet string) ([]types.RawRecord, error) {
	if b.single && len(b.names) == 1 {
		sheet = b.names[0]
	}
	rows, ok := b.sheets[sheet]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrSheetNotFound, sheet, strings.Join(b.names, ", "))
	}
	return records(rows), nil
}

func records(rows [][]any) []types.RawRecord {
	if len(rows) == 0 {
		return nil
	}
	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(fmt.Sprint(h))
	}

	var out []types.RawRecord
	for _, row := range rows[1:] {
		r := make(types.RawRecord)
		for i, cell := range row {
			if i >= len(header) || header[i] == "" {
				continue
			}
			if _, dup := r[header[i]]; dup {
				continue
			}
			switch v := cell.(type) {
			case time.Time:
				r[header[i]] = v
			case string:
				if v = strings.TrimSpace(v); v != "" {
					r[header[i]] = v
				}
			}
		}
		if len(r) > 0 {
			out = append(out, r)
		}
	}
	return out
}

func stringRows(rows [][]string) [][]any {
	out := make([][]any, len(rows))
	for i, row := range rows {
		out[i] = make([]any, len(row))
		for j, cell := range row {
			out[i][j] = cell
		}
	}
	return out
}

// Open reads a local .xlsx or .csv workbook.
func Open(path string) (*Book, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()
		return readExcel(f)
	case ".csv":
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		defer file.Close()
		return ReadCSV(file, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	default:
		return nil, fmt.Errorf("unsupported workbook type %q: %s", ext, path)
	}
}

// ReadXLSX reads an XLSX document.
func ReadXLSX(r io.Reader) (*Book, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("reading xlsx: %w", err)
	}
	defer f.Close()
	return readExcel(f)
}

// readExcel reads every sheet as displayed text, then replaces the cells
// whose number format shows a date with the date itself.
func readExcel(f *excelize.File) (*Book, error) {
	props, err := f.GetWorkbookProps()
	if err != nil {
		return nil, fmt.Errorf("reading workbook properties: %w", err)
	}
	d := dateReader{f: f, date1904: props.Date1904 != nil && *props.Date1904, styles: make(map[int]bool)}

	b := &Book{names: f.GetSheetList(), sheets: make(map[string][][]any)}
	for _, name := range b.names {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("reading sheet %q: %w", name, err)
		}
		cells := stringRows(rows)
		for i := 1; i < len(rows); i++ {
			for j, text := range rows[i] {
				if strings.TrimSpace(text) == "" {
					continue
				}
				if t, ok := d.date(name, j+1, i+1); ok {
					cells[i][j] = t
				}
			}
		}
		b.sheets[name] = cells
	}
	return b, nil
}

// dateReader recognizes date cells by their style's number format.
type dateReader struct {
	f        *excelize.File
	date1904 bool
	// styles caches whether a style id formats dates.
	styles map[int]bool
}

func (d dateReader) date(sheet string, col, row int) (time.Time, bool) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return time.Time{}, false
	}
	id, err := d.f.GetCellStyle(sheet, cell)
	if err != nil || id == 0 {
		return time.Time{}, false
	}
	isDate, known := d.styles[id]
	if !known {
		isDate = d.dateStyle(id)
		d.styles[id] = isDate
	}
	if !isDate {
		return time.Time{}, false
	}
	raw, err := d.f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
	if err != nil {
		return time.Time{}, false
	}
	serial, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return time.Time{}, false
	}
	t, err := excelize.ExcelDateToTime(serial, d.date1904)
	return t, err == nil
}

func (d dateReader) dateStyle(id int) bool {
	style, err := d.f.GetStyle(id)
	if err != nil || style == nil {
		return false
	}
	if style.CustomNumFmt != nil {
		return dateFormatCode(*style.CustomNumFmt)
	}
	return builtinDateFormat(style.NumFmt)
}

// builtinDateFormat reports the built-in number formats that show a
// calendar date. Time-only formats (18-21, 45-47) are left as text.
func builtinDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 17, id == 22, id >= 27 && id <= 36, id >= 50 && id <= 58:
		return true
	}
	return false
}

var formatLiterals = regexp.MustCompile(`"[^"]*"|\[[^\]]*\]|\\.`)

// dateFormatCode reports a custom format code with a year or day token,
// ignoring quoted text, bracketed sections and escaped characters.
func dateFormatCode(code string) bool {
	code = strings.ToLower(formatLiterals.ReplaceAllString(code, ""))
	return strings.ContainsAny(code, "yd")
}

// ReadCSV reads a CSV document as a single sheet called name.
func ReadCSV(r io.Reader, name string) (*Book, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	return &Book{
		names:  []string{name},
		sheets: map[string][][]any{name: stringRows(rows)},
		single: true,
	}, nil
}

// BytesGetter downloads a document.
type BytesGetter interface {
	GetBytes(ctx context.Context, url string) ([]byte, error)
}

// ExportURL is the XLSX export address of a Google Sheets document.
func ExportURL(sheetID string) string {
	return exportBase + sheetID + "/export?format=xlsx"
}

// Fetch downloads a Google Sheets document as XLSX.
func Fetch(ctx context.Context, getter BytesGetter, sheetID string) (*Book, error) {
	if strings.TrimSpace(sheetID) == "" {
		return nil, errors.New("empty sheet id")
	}
	data, err := getter.GetBytes(ctx, ExportURL(sheetID))
	if err != nil {
		return nil, fmt.Errorf("downloading sheet %s: %w", sheetID, err)
	}
	return ReadXLSX(bytes.NewReader(data))
}

// Load opens src.File when set, else fetches src.SheetID.
func Load(ctx context.Context, getter BytesGetter, src types.SheetSource) (*Book, error) {
	if src.File != "" {
		return Open(src.File)
	}
	if src.SheetID == "" {
		return nil, errors.New("sheet source has neither file nor sheet_id")
	}
	return Fetch(ctx, getter, src.SheetID)
}

package importer

import (
	"io"
	"strings"

	gerrors "github.com/go-faster/errors"
	"github.com/xuri/excelize/v2"
)

// Grid is the raw cell matrix of a workbook's first sheet. Layout
// classification and row mapping are pure functions over it; file name and
// MIME type are never consulted.
type Grid [][]string

// ParseWorkbook reads an Excel workbook and returns the first sheet as a
// grid of cell strings.
func ParseWorkbook(r io.Reader) (Grid, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, unreadableWorkbook(err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyWorkbook
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, gerrors.Wrap(err, "read sheet")
	}
	return Grid(rows), nil
}

// Cell returns the trimmed cell value, or "" when the coordinate is out of
// range. Short rows are common in sparse sheets.
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g) {
		return ""
	}
	r := g[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[col])
}

func (g Grid) RowCount() int {
	return len(g)
}

// headerMap indexes first-row headers by their normalized form
// (lower-cased, spaces collapsed to underscores) for standard layouts.
type headerMap map[string]int

func (g Grid) headers() headerMap {
	m := headerMap{}
	if len(g) == 0 {
		return m
	}
	for i, v := range g[0] {
		key := normalizeHeader(v)
		if key == "" {
			continue
		}
		if _, ok := m[key]; !ok {
			m[key] = i
		}
	}
	return m
}

func (m headerMap) get(g Grid, row int, key string) string {
	col, ok := m[key]
	if !ok {
		return ""
	}
	return g.Cell(row, col)
}

func (m headerMap) has(keys ...string) bool {
	for _, k := range keys {
		if _, ok := m[k]; !ok {
			return false
		}
	}
	return true
}

func normalizeHeader(v string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(v)), " ", "_")
}

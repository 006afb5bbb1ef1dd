package balancete

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// this file contains the functions to read an uploaded sheet into raw rows.
// Only the first sheet of a workbook is read. Cells are either float64 for
// numeric cells, string for text cells, or nil for empty ones.

// ErrUnsupportedFormat is returned when a file extension is not a known sheet format.
var ErrUnsupportedFormat = errors.New("unsupported sheet format")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadRows reads the first sheet of 'r'. The format is selected by the extension of 'filename'.
func ReadRows(filename string, r io.Reader) ([][]any, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return readXLSX(r)
	case ".xls":
		return readXLS(r)
	case ".csv", ".txt":
		return readCSV(r, 0)
	case ".tsv":
		return readCSV(r, '\t')
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// readXLSX reads an OOXML workbook.
func readXLSX(r io.Reader) ([][]any, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("cannot open xlsx workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return [][]any{}, nil
	}
	sheet := sheets[0]

	// raw values, so that numbers are not rendered with the cell number format.
	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("cannot read sheet %q: %w", sheet, err)
	}

	rows := make([][]any, 0, len(raw))
	for i, line := range raw {
		row := make([]any, len(line))
		for j, v := range line {
			if v == "" {
				continue
			}
			row[j] = v
			axis, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				continue
			}
			typ, err := f.GetCellType(sheet, axis)
			if err != nil {
				continue
			}
			switch typ {
			case excelize.CellTypeUnset, excelize.CellTypeNumber, excelize.CellTypeDate:
				// unset cell type with a value is the default numeric cell in OOXML.
				if n, err := strconv.ParseFloat(v, 64); err == nil {
					row[j] = n
				}
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// readXLS reads a legacy BIFF workbook.
func readXLS(r io.Reader) ([][]any, error) {
	// The xls reader needs a real file.
	tmp, err := os.CreateTemp("", "balancete-*.xls")
	if err != nil {
		return nil, fmt.Errorf("cannot create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := io.Copy(tmp, r); err != nil {
		return nil, fmt.Errorf("cannot write temporary file: %w", err)
	}
	tmp.Close()

	workbook, err := xls.OpenFile(tmp.Name())
	if err != nil {
		return nil, fmt.Errorf("cannot open xls workbook: %w", err)
	}
	if workbook.GetNumberSheets() == 0 {
		return [][]any{}, nil
	}
	sheet, err := firstSheet(&workbook)
	if err != nil {
		return nil, err
	}

	n := int(sheet.GetNumberRows())
	rows := make([][]any, 0, n+1)
	for i := 0; i <= n; i++ {
		line, err := sheet.GetRow(i)
		if err != nil || line == nil {
			// keep the row position, the first row is the header
			rows = append(rows, []any{})
			continue
		}
		cols := line.GetCols()
		row := make([]any, len(cols))
		for j, col := range cols {
			if col == nil {
				continue
			}
			typ := col.GetType()
			switch {
			case strings.Contains(typ, "Number"), strings.Contains(typ, "Rk"):
				row[j] = col.GetFloat64()
			default:
				if s := col.GetString(); s != "" {
					row[j] = s
				}
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// sheetGetter is the part of an xls workbook used to reach its sheets.
type sheetGetter interface {
	GetSheet(sheetID int) (*xls.Sheet, error)
}

// firstSheet returns the first sheet of wb, a missing sheet is an error.
func firstSheet(wb sheetGetter) (*xls.Sheet, error) {
	sheet, err := wb.GetSheet(0)
	if err != nil {
		return nil, fmt.Errorf("cannot read first sheet: %w", err)
	}
	if sheet == nil {
		return nil, errors.New("cannot read first sheet: no such sheet")
	}
	return sheet, nil
}

// readCSV reads delimited text. When comma is 0 it is guessed from the first line.
//
// Text that is not valid UTF-8 is decoded as ISO-8859-1, which is what most
// Brazilian spreadsheet exports produce.
func readCSV(r io.Reader, comma rune) ([][]any, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read delimited text: %w", err)
	}
	content = bytes.TrimPrefix(content, utf8BOM)

	if comma == 0 {
		comma = guessComma(content)
	}

	var text io.Reader = bytes.NewReader(content)
	if !utf8.Valid(content) {
		text = transform.NewReader(text, charmap.ISO8859_1.NewDecoder())
	}

	reader := csv.NewReader(text)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot parse delimited text: %w", err)
	}

	rows := make([][]any, 0, len(records))
	for _, record := range records {
		row := make([]any, len(record))
		for j, v := range record {
			if v != "" {
				row[j] = v
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// guessComma returns ';' when the first lines hold more semicolons than
// commas, ',' otherwise. Quoted text is not counted, and neither are blank
// lines: the header row alone may be a title without any separator.
func guessComma(content []byte) rune {
	const sample = 5
	semicolons, commas := 0, 0
	lines := bytes.Split(content, []byte{'\n'})
	for i, n := 0, 0; i < len(lines) && n < sample; i++ {
		line := bytes.TrimSpace(lines[i])
		if len(line) == 0 {
			continue
		}
		n++
		quoted := false
		for _, c := range line {
			switch {
			case c == '"':
				quoted = !quoted
			case quoted:
			case c == ';':
				semicolons++
			case c == ',':
				commas++
			}
		}
	}
	if semicolons > commas {
		return ';'
	}
	return ','
}

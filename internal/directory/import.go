package directory

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"nocheckin/internal/domain"
)

const maxSpreadsheetRows = 100000

// Spreadsheet header names. Matching is case-insensitive and ignores spaces
// around the header text.
const (
	colRegion    = "region"
	colPrefix    = "prefix"
	colShortCode = "short_code"
	colName      = "name"
)

// ErrMissingColumn is returned when an imported sheet lacks a required header.
var ErrMissingColumn = errors.New("missing column")

// ReadSpreadsheet returns the rows of the single worksheet in an .xls or .xlsx file.
func ReadSpreadsheet(r io.Reader, filename string) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xls":
		workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
		if err != nil {
			return nil, err
		}
		if workbook.NumSheets() == 0 {
			return nil, fmt.Errorf("no worksheet found")
		}
		if workbook.NumSheets() > 1 {
			return nil, fmt.Errorf("multiple worksheets found; export a single sheet")
		}
		rows := workbook.ReadAllCells(maxSpreadsheetRows)
		if len(rows) == 0 {
			return nil, fmt.Errorf("worksheet is empty")
		}
		return rows, nil
	default:
		file, err := excelize.OpenReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer func() { _ = file.Close() }()

		sheetName := file.GetSheetName(0)
		if sheetName == "" {
			return nil, fmt.Errorf("no worksheet found")
		}
		rows, err := file.GetRows(sheetName)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return nil, fmt.Errorf("worksheet is empty")
		}
		return rows, nil
	}
}

// Import builds a dataset from spreadsheet rows. The first row is the header
// and must name the region, prefix, short_code and name columns in any order.
// Blank rows are skipped; literal "\n" sequences in names become line breaks.
func Import(rows [][]string) (*Dataset, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows to import")
	}
	idx := map[string]int{colRegion: -1, colPrefix: -1, colShortCode: -1, colName: -1}
	for i, h := range rows[0] {
		if _, ok := idx[normalizeHeader(h)]; ok {
			idx[normalizeHeader(h)] = i
		}
	}
	for _, col := range []string{colRegion, colPrefix, colShortCode, colName} {
		if idx[col] < 0 {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	ds := NewDataset()
	for n, row := range rows[1:] {
		region := strings.ToLower(cellValue(row, idx[colRegion]))
		prefix := padDigits(cellValue(row, idx[colPrefix]), domain.PrefixLength)
		code := padDigits(cellValue(row, idx[colShortCode]), domain.ShortCodeLength)
		name := strings.ReplaceAll(cellValue(row, idx[colName]), `\n`, "\n")
		if region == "" && prefix == "" && code == "" && name == "" {
			continue
		}
		if err := ds.Add(region, prefix, code, name); err != nil {
			return nil, fmt.Errorf("row %d: %w", n+2, err)
		}
	}
	return ds, nil
}

func normalizeHeader(header string) string {
	h := strings.ToLower(strings.TrimSpace(header))
	return strings.ReplaceAll(h, " ", "_")
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// padDigits restores leading zeros that spreadsheets drop from numeric cells.
func padDigits(s string, n int) string {
	if s == "" || len(s) >= n {
		return s
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return s
		}
	}
	return strings.Repeat("0", n-len(s)) + s
}

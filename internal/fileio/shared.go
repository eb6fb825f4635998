package fileio

import (
	"fmt"
	"path/filepath"
	"strings"

	"merge-service/internal/merge/model"
)

// CSVSheet is the pseudo-sheet name reported for CSV files, which
// have no workbook structure.
const CSVSheet = "Sheet1"

// SheetNames lists the sheets of an uploaded workbook. The parser is
// picked by filename extension.
func SheetNames(data []byte, filename string) ([]string, error) {
	switch ext(filename) {
	case ".xlsx":
		return xlsxSheetNames(data)
	case ".xls":
		return xlsSheetNames(data)
	case ".csv":
		return []string{CSVSheet}, nil
	default:
		return nil, model.BadDataf("unsupported file: %s", filename)
	}
}

// ReadSheet parses one sheet into a Dataset. The first row is the
// header and fixes the column order; an empty sheet name means the
// first sheet.
func ReadSheet(data []byte, filename, sheet string) (*model.Dataset, error) {
	switch ext(filename) {
	case ".xlsx":
		return readXLSX(data, sheet)
	case ".xls":
		return readXLS(data, sheet)
	case ".csv":
		return readCSV(data)
	default:
		return nil, model.BadDataf("unsupported file: %s", filename)
	}
}

func ext(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

// fromRows converts a header row plus data rows into a Dataset.
// Blank header cells get Column N placeholders; fully empty data rows
// are dropped; empty cells become nil (absent).
func fromRows(rows [][]string) *model.Dataset {
	if len(rows) == 0 {
		return &model.Dataset{Columns: []string{}, Rows: [][]any{}}
	}

	header := rows[0]
	cols := make([]string, len(header))
	for i, v := range header {
		v = strings.TrimSpace(v)
		if v == "" {
			v = fmt.Sprintf("Column %d", i+1)
		}
		cols[i] = v
	}

	out := make([][]any, 0, len(rows)-1)
	for _, rec := range rows[1:] {
		row := make([]any, len(cols))
		empty := true
		for c := range cols {
			if c < len(rec) && strings.TrimSpace(rec[c]) != "" {
				row[c] = rec[c]
				empty = false
			}
		}
		if !empty {
			out = append(out, row)
		}
	}
	return &model.Dataset{Columns: cols, Rows: out}
}

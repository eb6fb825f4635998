// Legacy .xls support. Exports from old ERP systems are usually
// cp1251, occasionally UTF-8 or KOI8-R, so opening tries a charset
// chain. Row widths are probed because Row.LastCol is unreliable.
package fileio

import (
	"bytes"
	"strings"

	xls "github.com/extrame/xls"

	"merge-service/internal/merge/model"
)

var xlsCharsets = []string{"windows-1251", "utf-8", "koi8-r"}

func openXLS(data []byte) (*xls.WorkBook, error) {
	var lastErr error
	for _, ch := range xlsCharsets {
		wb, err := xls.OpenReader(bytes.NewReader(data), ch)
		if err == nil && wb != nil {
			return wb, nil
		}
		lastErr = err
	}
	return nil, model.BadDataf("open xls: %v", lastErr)
}

func xlsSheetNames(data []byte) ([]string, error) {
	wb, err := openXLS(data)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, wb.NumSheets())
	for i := 0; i < wb.NumSheets(); i++ {
		if sh := wb.GetSheet(i); sh != nil {
			names = append(names, sh.Name)
		}
	}
	return names, nil
}

func readXLS(data []byte, sheet string) (*model.Dataset, error) {
	wb, err := openXLS(data)
	if err != nil {
		return nil, err
	}

	var ws *xls.WorkSheet
	if sheet == "" {
		ws = wb.GetSheet(0)
	} else {
		for i := 0; i < wb.NumSheets(); i++ {
			if sh := wb.GetSheet(i); sh != nil && sh.Name == sheet {
				ws = sh
				break
			}
		}
	}
	if ws == nil {
		if sheet == "" {
			return fromRows(nil), nil
		}
		return nil, model.BadDataf("read sheet %q: not found", sheet)
	}

	maxCols := probeMaxCols(ws)
	rows := make([][]string, 0, int(ws.MaxRow)+1)
	for i := 0; i <= int(ws.MaxRow); i++ {
		row := ws.Row(i)
		cols := make([]string, maxCols)
		if row != nil {
			for j := 0; j < maxCols; j++ {
				cols[j] = strings.TrimSpace(row.Col(j))
			}
		}
		rows = append(rows, cols)
	}
	return fromRows(rows), nil
}

// probeMaxCols walks every row looking for the rightmost non-empty
// cell instead of trusting per-row column counts.
func probeMaxCols(ws *xls.WorkSheet) int {
	const probeMax = 512
	maxCols := 0
	for i := 0; i <= int(ws.MaxRow); i++ {
		r := ws.Row(i)
		if r == nil {
			continue
		}
		for j := 0; j < probeMax; j++ {
			if strings.TrimSpace(r.Col(j)) != "" && j+1 > maxCols {
				maxCols = j + 1
			}
		}
	}
	if maxCols == 0 {
		maxCols = 1
	}
	return maxCols
}

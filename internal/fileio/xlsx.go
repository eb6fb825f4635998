package fileio

import (
	"bytes"

	excelize "github.com/xuri/excelize/v2"

	"merge-service/internal/merge/model"
)

func xlsxSheetNames(data []byte) ([]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, model.BadDataf("open xlsx: %v", err)
	}
	defer f.Close()
	return f.GetSheetList(), nil
}

func readXLSX(data []byte, sheet string) (*model.Dataset, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, model.BadDataf("open xlsx: %v", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, model.BadDataf("read sheet %q: %v", sheet, err)
	}
	return fromRows(rows), nil
}

package service

import (
	"strings"

	"merge-service/internal/merge/model"
)

// CombineColumns builds one normalized text per row from the selected
// columns, in dataset order. An empty selection yields empty strings
// for every row, which is how similarity gets structurally disabled.
// Normalization runs once on the joined string, not per field.
func CombineColumns(ds *model.Dataset, colIdx []int) []string {
	out := make([]string, ds.Len())
	if len(colIdx) == 0 {
		return out
	}
	var sb strings.Builder
	for i, row := range ds.Rows {
		sb.Reset()
		for j, c := range colIdx {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(CellString(row[c]))
		}
		out[i] = Normalize(sb.String())
	}
	return out
}

package service

import (
	"math"

	"merge-service/internal/merge/model"
)

// Output column names added in similarity mode.
const (
	ScoreColumn  = "Similarity_Score"
	StatusColumn = "Match_Status"
)

// assembler accumulates output rows for one run. Left output columns
// come first with a Left_ prefix, then right with Right_, then the
// score and status columns when similarity is on.
type assembler struct {
	left, right       *model.Dataset
	leftOut, rightOut []int
	includeUnmatched  bool
	withScore         bool
	out               *model.Dataset
}

func newAssembler(left, right *model.Dataset, leftOut, rightOut []int, p model.Params, withScore bool) *assembler {
	cols := make([]string, 0, len(leftOut)+len(rightOut)+2)
	for _, c := range leftOut {
		cols = append(cols, "Left_"+left.Columns[c])
	}
	for _, c := range rightOut {
		cols = append(cols, "Right_"+right.Columns[c])
	}
	if withScore {
		cols = append(cols, ScoreColumn, StatusColumn)
	}
	return &assembler{
		left:             left,
		right:            right,
		leftOut:          leftOut,
		rightOut:         rightOut,
		includeUnmatched: p.IncludeUnmatched,
		withScore:        withScore,
		out:              &model.Dataset{Columns: cols, Rows: make([][]any, 0, left.Len())},
	}
}

// similarityRow emits the row for left position i, or drops it when
// it is unmatched and unmatched rows are excluded.
func (a *assembler) similarityRow(i, rightPos int, score float64, matched bool) {
	if !matched && !a.includeUnmatched {
		return
	}
	row := a.startRow(i)
	if matched {
		row = a.appendRight(row, rightPos)
	} else {
		row = a.appendRightNulls(row)
	}
	status := model.StatusNoMatch
	if matched {
		status = model.StatusMatched
	}
	row = append(row, roundScore(score), status)
	a.out.Rows = append(a.out.Rows, row)
}

// positionalRow pairs left row i with right row i when it exists.
func (a *assembler) positionalRow(i int) {
	hasRight := i < a.right.Len()
	if !hasRight && !a.includeUnmatched {
		return
	}
	row := a.startRow(i)
	if hasRight {
		row = a.appendRight(row, i)
	} else {
		row = a.appendRightNulls(row)
	}
	a.out.Rows = append(a.out.Rows, row)
}

func (a *assembler) dataset() *model.Dataset { return a.out }

func (a *assembler) startRow(i int) []any {
	row := make([]any, 0, len(a.out.Columns))
	for _, c := range a.leftOut {
		row = append(row, a.left.Rows[i][c])
	}
	return row
}

func (a *assembler) appendRight(row []any, pos int) []any {
	for _, c := range a.rightOut {
		row = append(row, a.right.Rows[pos][c])
	}
	return row
}

func (a *assembler) appendRightNulls(row []any) []any {
	for range a.rightOut {
		row = append(row, nil)
	}
	return row
}

func roundScore(s float64) float64 {
	return math.Round(s*1e4) / 1e4
}

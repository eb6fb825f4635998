package model

// Dataset is a schema-aware table: declared column order plus
// index-addressed rows. Every row has exactly len(Columns) cells.
// A cell holds string, float64, int, bool, or nil for absent.
type Dataset struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// ColumnIndex returns the position of name in Columns.
func (d *Dataset) ColumnIndex(name string) (int, bool) {
	for i, c := range d.Columns {
		if c == name {
			return i, true
		}
	}
	return 0, false
}

// ColumnIndexes resolves a selection of column names to positions,
// validated once so the matching loop never does a name lookup.
func (d *Dataset) ColumnIndexes(names []string) ([]int, error) {
	idx := make([]int, 0, len(names))
	for _, n := range names {
		i, ok := d.ColumnIndex(n)
		if !ok {
			return nil, BadConfigf("unknown column %q", n)
		}
		idx = append(idx, i)
	}
	return idx, nil
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return len(d.Rows) }

// Params configures one matching run.
type Params struct {
	LeftOutputCols    []string `json:"leftOutputCols"`
	RightOutputCols   []string `json:"rightOutputCols"`
	LeftMatchCols     []string `json:"leftMatchCols"`
	RightMatchCols    []string `json:"rightMatchCols"`
	Threshold         float64  `json:"threshold"` // caller-supplied, expected in [0,1]
	IncludeUnmatched  bool     `json:"includeUnmatched"`
	PreferAccelerated bool     `json:"preferAccelerated"`
}

// SimilarityEnabled reports whether both sides selected at least one
// match column. When false the run degrades to a positional merge.
func (p Params) SimilarityEnabled() bool {
	return len(p.LeftMatchCols) > 0 && len(p.RightMatchCols) > 0
}

// Match statuses emitted in the Match_Status output column.
const (
	StatusMatched = "Matched"
	StatusNoMatch = "No match"
)

// NoPosition marks a left row with no best right row in BestPositions.
const NoPosition = -1

// Result is the aggregate of one matching run. Immutable once built.
type Result struct {
	Output *Dataset `json:"output"`

	// Per-left-row decisions; empty when similarity is disabled,
	// otherwise one entry per left row.
	BestScores    []float64 `json:"bestScores"`
	BestPositions []int     `json:"bestPositions"`

	SimilarityEnabled    bool   `json:"similarityEnabled"`
	Engine               string `json:"engine"` // sequence | strutil | disabled
	ExactMatches         int    `json:"exactMatches"`
	CandidateComparisons int    `json:"candidateComparisons"`

	LeftMatchColumnsUsed  []string `json:"leftMatchColumnsUsed"`
	RightMatchColumnsUsed []string `json:"rightMatchColumnsUsed"`
}

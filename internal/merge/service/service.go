package service

import (
	"strings"

	"merge-service/internal/merge/model"
)

// Run executes one matching pass of left against right. Column
// selections are resolved and validated up front; after that the loop
// is total. The engine keeps no state between runs and holds no
// locks, so independent runs may execute concurrently on their own
// inputs.
func Run(left, right *model.Dataset, p model.Params, cb ProgressFunc) (*model.Result, error) {
	leftOut, err := left.ColumnIndexes(p.LeftOutputCols)
	if err != nil {
		return nil, err
	}
	rightOut, err := right.ColumnIndexes(p.RightOutputCols)
	if err != nil {
		return nil, err
	}

	if !p.SimilarityEnabled() {
		return mergePositional(left, right, leftOut, rightOut, p, cb), nil
	}

	leftMatch, err := left.ColumnIndexes(p.LeftMatchCols)
	if err != nil {
		return nil, err
	}
	rightMatch, err := right.ColumnIndexes(p.RightMatchCols)
	if err != nil {
		return nil, err
	}

	leftText := CombineColumns(left, leftMatch)
	rightText := CombineColumns(right, rightMatch)
	ix := buildIndex(rightText)
	scorer := NewScorer(p.PreferAccelerated)

	total := len(leftText)
	prog := newProgress(cb, total)

	scores := make([]float64, total)
	positions := make([]int, total)
	exact, comparisons := 0, 0
	asm := newAssembler(left, right, leftOut, rightOut, p, true)

	for i, lt := range leftText {
		score, pos := 0.0, model.NoPosition

		if hits, ok := ix.exact[lt]; ok {
			// exact fast path: first inserted position, no scoring
			pos = hits[0]
			score = 1.0
			exact++
		} else if toks := strings.Fields(lt); len(toks) > 0 {
			for _, cand := range ix.candidates(toks) {
				comparisons++
				// strictly greater only: equal top scores keep the
				// lowest right-row position
				if s := scorer.Ratio(lt, rightText[cand]); s > score {
					score, pos = s, cand
				}
			}
		}

		scores[i] = score
		positions[i] = pos
		matched := pos != model.NoPosition && score >= p.Threshold
		asm.similarityRow(i, pos, score, matched)
		prog.tick(i + 1)
	}

	return &model.Result{
		Output:                asm.dataset(),
		BestScores:            scores,
		BestPositions:         positions,
		SimilarityEnabled:     true,
		Engine:                scorer.Name(),
		ExactMatches:          exact,
		CandidateComparisons:  comparisons,
		LeftMatchColumnsUsed:  p.LeftMatchCols,
		RightMatchColumnsUsed: p.RightMatchCols,
	}, nil
}

// mergePositional is the similarity-disabled path: left row i pairs
// with right row i when one exists. Threshold and scorer choice are
// inert here.
func mergePositional(left, right *model.Dataset, leftOut, rightOut []int, p model.Params, cb ProgressFunc) *model.Result {
	total := left.Len()
	prog := newProgress(cb, total)
	asm := newAssembler(left, right, leftOut, rightOut, p, false)

	for i := 0; i < total; i++ {
		asm.positionalRow(i)
		prog.tick(i + 1)
	}

	return &model.Result{
		Output:                asm.dataset(),
		BestScores:            []float64{},
		BestPositions:         []int{},
		SimilarityEnabled:     false,
		Engine:                "disabled",
		LeftMatchColumnsUsed:  []string{},
		RightMatchColumnsUsed: []string{},
	}
}

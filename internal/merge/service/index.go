package service

import (
	"sort"
	"strings"
)

// blockIndex accelerates matching against the right-side texts:
// an exact index from normalized text to the row positions that
// produced it (insertion order), and token postings for blocking.
// Read-only after buildIndex; rebuilt per run.
type blockIndex struct {
	exact  map[string][]int
	tokens map[string]map[int]struct{}
}

func buildIndex(texts []string) *blockIndex {
	ix := &blockIndex{
		exact:  make(map[string][]int),
		tokens: make(map[string]map[int]struct{}),
	}
	for pos, text := range texts {
		// empty texts carry no signal; keeping them out of the exact
		// index stops blank left rows from "matching" the first blank
		// right row with score 1.0
		if text != "" {
			ix.exact[text] = append(ix.exact[text], pos)
		}
		for _, tok := range strings.Fields(text) {
			set, ok := ix.tokens[tok]
			if !ok {
				set = make(map[int]struct{})
				ix.tokens[tok] = set
			}
			set[pos] = struct{}{}
		}
	}
	return ix
}

// candidates returns the union of posting sets for the given tokens,
// sorted ascending so enumeration order is deterministic and ties in
// scoring resolve to the lowest right-row position.
func (ix *blockIndex) candidates(tokens []string) []int {
	seen := make(map[int]struct{})
	for _, tok := range tokens {
		for pos := range ix.tokens[tok] {
			seen[pos] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for pos := range seen {
		out = append(out, pos)
	}
	sort.Ints(out)
	return out
}

package service

// sequenceRatio is the baseline similarity: a matching-blocks ratio
// over runes, 2*M/T, where M is the total length of the recursively
// found longest common blocks and T the combined length. Symmetric,
// 1.0 for identical strings, 0.0 for disjoint ones.
func sequenceRatio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1
	}
	m := matchingRunes(ra, rb, 0, len(ra), 0, len(rb))
	return 2 * float64(m) / float64(total)
}

// matchingRunes sums matched rune counts: take the longest common
// block, then recurse on the pieces before and after it.
func matchingRunes(ra, rb []rune, alo, ahi, blo, bhi int) int {
	i, j, k := longestMatch(ra, rb, alo, ahi, blo, bhi)
	if k == 0 {
		return 0
	}
	return k +
		matchingRunes(ra, rb, alo, i, blo, j) +
		matchingRunes(ra, rb, i+k, ahi, j+k, bhi)
}

// longestMatch finds the longest run of equal runes within
// ra[alo:ahi] and rb[blo:bhi], preferring the earliest start in ra,
// then in rb. Rolling j->length map keeps it O(n*m) worst case.
func longestMatch(ra, rb []rune, alo, ahi, blo, bhi int) (besti, bestj, size int) {
	b2j := make(map[rune][]int, bhi-blo)
	for j := blo; j < bhi; j++ {
		b2j[rb[j]] = append(b2j[rb[j]], j)
	}

	besti, bestj = alo, blo
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		next := make(map[int]int)
		for _, j := range b2j[ra[i]] {
			k := j2len[j-1] + 1
			next[j] = k
			if k > size {
				besti, bestj, size = i-k+1, j-k+1, k
			}
		}
		j2len = next
	}
	return besti, bestj, size
}

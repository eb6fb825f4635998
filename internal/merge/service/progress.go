package service

// ProgressFunc receives coarse progress ticks as (doneRows, totalRows).
// It is invoked inline on the goroutine that runs the match, so a
// blocking callback blocks the run.
type ProgressFunc func(done, total int)

// progressEvery spaces ticks so large runs report roughly 200 times
// and small runs report every row.
func progressEvery(total int) int {
	if e := total / 200; e > 1 {
		return e
	}
	return 1
}

type progress struct {
	cb    ProgressFunc
	every int
	total int
}

// newProgress fires the leading (0, total) tick.
func newProgress(cb ProgressFunc, total int) progress {
	if cb != nil {
		cb(0, total)
	}
	return progress{cb: cb, every: progressEvery(total), total: total}
}

func (p progress) tick(done int) {
	if p.cb == nil {
		return
	}
	if done%p.every == 0 || done == p.total {
		p.cb(done, p.total)
	}
}

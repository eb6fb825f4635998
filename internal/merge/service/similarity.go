package service

import (
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Scorer computes a similarity ratio in [0,1] between two normalized
// texts. Implementations are picked once at construction, not probed
// per call.
type Scorer interface {
	Ratio(a, b string) float64
	Name() string
}

// NewScorer returns the scoring strategy for a run: the baseline
// sequence ratio, or the strutil Levenshtein similarity when the
// caller asked for accelerated scoring. Both are symmetric and agree
// on the endpoints (identical -> 1.0, nothing shared -> 0.0).
func NewScorer(preferAccelerated bool) Scorer {
	if preferAccelerated {
		return &strutilScorer{lev: metrics.NewLevenshtein()}
	}
	return sequenceScorer{}
}

type sequenceScorer struct{}

func (sequenceScorer) Ratio(a, b string) float64 { return sequenceRatio(a, b) }
func (sequenceScorer) Name() string              { return "sequence" }

type strutilScorer struct {
	lev *metrics.Levenshtein
}

func (s *strutilScorer) Ratio(a, b string) float64 { return strutil.Similarity(a, b, s.lev) }
func (s *strutilScorer) Name() string              { return "strutil" }

package dedupe

import (
	"time"

	"github.com/agenthands/chronicle/internal/core/common"
)

// DefaultFamilyScores is the base priority of each article family. A linked
// Wikipedia article is the most useful note for a timeline entry.
var DefaultFamilyScores = map[string]int{
	"pedia":  1000,
	"quote":  600,
	"news":   500,
	"voyage": 200,
}

// MismatchedPartyPenalty is subtracted when the party membership started no
// earlier than the end of the acting term.
const MismatchedPartyPenalty = 10000

// Scorer computes the priority of one candidate record.
type Scorer struct {
	families map[string]int
	now      func() time.Time
}

// NewScorer returns a Scorer whose family table is DefaultFamilyScores with
// the given entries laid over it. A nil clock selects time.Now.
func NewScorer(families map[string]int, now func() time.Time) *Scorer {
	if now == nil {
		now = time.Now
	}
	table := make(map[string]int, len(DefaultFamilyScores)+len(families))
	for k, v := range DefaultFamilyScores {
		table[k] = v
	}
	for k, v := range families {
		table[k] = v
	}
	return &Scorer{families: table, now: now}
}

// Score rates a record by its article family and the plausibility of its
// party-membership date. Missing dates are absent, never sentinel values.
func (s *Scorer) Score(family string, startPartyDate, endActingDate *string) int {
	score := s.families[family]

	if startPartyDate != nil && endActingDate != nil && *startPartyDate >= *endActingDate {
		score -= MismatchedPartyPenalty
	}

	if startPartyDate != nil {
		if year, ok := common.YearOf(*startPartyDate); ok {
			score -= s.now().Year() - year
		}
	}

	return score
}

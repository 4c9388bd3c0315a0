package dedupe

import (
	"github.com/agenthands/chronicle/internal/core/model"
)

type Deduplicator struct {
	Scorer *Scorer
}

func NewDeduplicator(scorer *Scorer) *Deduplicator {
	if scorer == nil {
		scorer = NewScorer(nil, nil)
	}
	return &Deduplicator{
		Scorer: scorer,
	}
}

// Candidates scores every record and groups them by office-holder label.
// Labels are returned in the order they were first seen.
func (d *Deduplicator) Candidates(records []model.OfficeHolderRecord) ([]string, map[string][]model.ScoredRecord) {
	var order []string
	groups := make(map[string][]model.ScoredRecord)

	for _, rec := range records {
		family := ExtractWikiType(model.Value(rec.Article))
		scored := model.ScoredRecord{
			Record:   rec,
			Family:   family,
			Priority: d.Scorer.Score(family, rec.StartPartyDate, rec.EndActingDate),
		}

		if _, seen := groups[rec.OfficeHolderLabel]; !seen {
			order = append(order, rec.OfficeHolderLabel)
		}
		groups[rec.OfficeHolderLabel] = append(groups[rec.OfficeHolderLabel], scored)
	}

	return order, groups
}

// ResolveDuplicates keeps one record per office-holder label: the one with the
// strictly highest priority, the first seen on ties. The winner is returned as
// a new record with WikiType stamped; the input is not modified.
func (d *Deduplicator) ResolveDuplicates(records []model.OfficeHolderRecord) []model.OfficeHolderRecord {
	order, groups := d.Candidates(records)

	winners := make([]model.OfficeHolderRecord, 0, len(order))
	for _, label := range order {
		best := groups[label][0]
		for _, c := range groups[label][1:] {
			if c.Priority > best.Priority {
				best = c
			}
		}

		winner := best.Record
		winner.WikiType = "wiki" + best.Family
		winners = append(winners, winner)
	}

	return winners
}

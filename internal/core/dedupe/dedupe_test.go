package dedupe

import (
	"testing"
	"time"

	"github.com/agenthands/chronicle/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(year int) func() time.Time {
	return func() time.Time {
		return time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC)
	}
}

func TestResolveDuplicates_WalterScheel(t *testing.T) {
	// The Wikipedia candidate's party membership starts on the day the acting
	// term ends, which counts as mismatched.
	records := []model.OfficeHolderRecord{
		{
			OfficeHolderLabel: "Walter Scheel",
			StartPartyDate:    model.Str("1974-05-16T00:00:00Z"),
			EndActingDate:     model.Str("1974-05-16T00:00:00Z"),
			Article:           model.Str("https://de.wikipedia.org/wiki/Walter_Scheel"),
		},
		{
			OfficeHolderLabel: "Walter Scheel",
			Article:           model.Str("https://de.wikinews.org/wiki/Walter_Scheel"),
		},
	}

	d := NewDeduplicator(NewScorer(nil, fixedClock(2025)))
	winners := d.ResolveDuplicates(records)

	require.Len(t, winners, 1)
	assert.Equal(t, "wikinews", winners[0].WikiType)
	assert.Equal(t, "https://de.wikinews.org/wiki/Walter_Scheel", model.Value(winners[0].Article))
}

func TestResolveDuplicates_PartyBeforeTermEndKeepsWikipedia(t *testing.T) {
	// Party membership from 1968 precedes the 1974 term end, so no penalty
	// applies: 1000 - (2025 - 1968) = 943 still beats wikinews at 500.
	records := []model.OfficeHolderRecord{
		{
			OfficeHolderLabel: "Walter Scheel",
			StartPartyDate:    model.Str("1968-01-01T00:00:00Z"),
			EndActingDate:     model.Str("1974-05-16T00:00:00Z"),
			Article:           model.Str("https://de.wikipedia.org/wiki/Walter_Scheel"),
		},
		{
			OfficeHolderLabel: "Walter Scheel",
			Article:           model.Str("https://de.wikinews.org/wiki/Walter_Scheel"),
		},
	}

	d := NewDeduplicator(NewScorer(nil, fixedClock(2025)))
	assert.Equal(t, 943, d.Scorer.Score("pedia", records[0].StartPartyDate, records[0].EndActingDate))

	winners := d.ResolveDuplicates(records)
	require.Len(t, winners, 1)
	assert.Equal(t, "wikipedia", winners[0].WikiType)
	assert.Equal(t, "https://de.wikipedia.org/wiki/Walter_Scheel", model.Value(winners[0].Article))
}

func TestResolveDuplicates_FirstSeenWinsTies(t *testing.T) {
	records := []model.OfficeHolderRecord{
		{OfficeHolderLabel: "Helmut Kohl", Article: model.Str("https://de.wikipedia.org/wiki/Helmut_Kohl"), BirthDate: model.Str("1930-04-03T00:00:00Z")},
		{OfficeHolderLabel: "Helmut Kohl", Article: model.Str("https://en.wikipedia.org/wiki/Helmut_Kohl")},
	}

	winners := NewDeduplicator(NewScorer(nil, fixedClock(2025))).ResolveDuplicates(records)

	require.Len(t, winners, 1)
	assert.Equal(t, "https://de.wikipedia.org/wiki/Helmut_Kohl", model.Value(winners[0].Article))
	assert.Equal(t, "wikipedia", winners[0].WikiType)
}

func TestResolveDuplicates_PrefersRecentParty(t *testing.T) {
	records := []model.OfficeHolderRecord{
		{OfficeHolderLabel: "Joachim Gauck", PartyShortLabel: model.Str("A"), StartPartyDate: model.Str("1950-01-01T00:00:00Z"), Article: model.Str("https://de.wikipedia.org/wiki/Joachim_Gauck")},
		{OfficeHolderLabel: "Joachim Gauck", PartyShortLabel: model.Str("B"), StartPartyDate: model.Str("1990-01-01T00:00:00Z"), Article: model.Str("https://de.wikipedia.org/wiki/Joachim_Gauck")},
	}

	winners := NewDeduplicator(NewScorer(nil, fixedClock(2025))).ResolveDuplicates(records)

	require.Len(t, winners, 1)
	assert.Equal(t, "B", model.Value(winners[0].PartyShortLabel))
}

func TestResolveDuplicates_KeepsEncounterOrderAndInput(t *testing.T) {
	records := []model.OfficeHolderRecord{
		{OfficeHolderLabel: "Willy Brandt", Article: model.Str("https://de.wikiquote.org/wiki/Willy_Brandt")},
		{OfficeHolderLabel: "Angela Merkel", Article: model.Str("https://de.wikipedia.org/wiki/Angela_Merkel")},
		{OfficeHolderLabel: "Willy Brandt", Article: model.Str("https://de.wikipedia.org/wiki/Willy_Brandt")},
		{OfficeHolderLabel: "Olaf Scholz"},
	}

	winners := NewDeduplicator(nil).ResolveDuplicates(records)

	require.Len(t, winners, 3)
	assert.Equal(t, "Willy Brandt", winners[0].OfficeHolderLabel)
	assert.Equal(t, "wikipedia", winners[0].WikiType)
	assert.Equal(t, "Angela Merkel", winners[1].OfficeHolderLabel)
	assert.Equal(t, "Olaf Scholz", winners[2].OfficeHolderLabel)
	assert.Equal(t, "wiki", winners[2].WikiType)

	for _, r := range records {
		assert.Empty(t, r.WikiType, "input records must not be stamped")
	}
}

func TestResolveDuplicates_Empty(t *testing.T) {
	winners := NewDeduplicator(nil).ResolveDuplicates(nil)
	assert.Empty(t, winners)
}

func TestResolveDuplicates_WinnerHasMaxScore(t *testing.T) {
	articles := []string{
		"https://de.wikipedia.org/wiki/X",
		"https://de.wikiquote.org/wiki/X",
		"https://de.wikinews.org/wiki/X",
		"https://de.wikivoyage.org/wiki/X",
		"https://commons.wikimedia.org/wiki/X",
		"",
	}
	parties := []*string{nil, model.Str("1960-01-01T00:00:00Z"), model.Str("2001-01-01T00:00:00Z")}
	ends := []*string{nil, model.Str("1999-01-01T00:00:00Z")}

	var records []model.OfficeHolderRecord
	for i, a := range articles {
		for _, p := range parties {
			for _, e := range ends {
				label := "A"
				if i%2 == 1 {
					label = "B"
				}
				rec := model.OfficeHolderRecord{OfficeHolderLabel: label, StartPartyDate: p, EndActingDate: e}
				if a != "" {
					rec.Article = model.Str(a)
				}
				records = append(records, rec)
			}
		}
	}

	d := NewDeduplicator(NewScorer(nil, fixedClock(2025)))
	_, groups := d.Candidates(records)
	winners := d.ResolveDuplicates(records)

	require.Len(t, winners, 2)
	for _, w := range winners {
		family := ExtractWikiType(model.Value(w.Article))
		ws := d.Scorer.Score(family, w.StartPartyDate, w.EndActingDate)
		for _, c := range groups[w.OfficeHolderLabel] {
			assert.GreaterOrEqual(t, ws, c.Priority)
		}
	}
}

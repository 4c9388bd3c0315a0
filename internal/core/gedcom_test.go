package core

import (
	"testing"

	"github.com/agenthands/chronicle/internal/core/model"
	"github.com/agenthands/chronicle/internal/errors"
	"github.com/agenthands/chronicle/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	deLabels   = i18n.NewCatalog(nil).Lookup("de")
	enLabels   = i18n.NewCatalog(nil).Lookup("en")
	chancellor = model.OfficeDescriptor{Key: model.OfficeChancellor, OfficeEntityID: "Q4970706", LinkingPropertyID: "P1308", TranslatedOfficeLabel: "Bundeskanzler von Deutschland"}
)

func TestFormatOfficeHolder_Full(t *testing.T) {
	rec := model.OfficeHolderRecord{
		OfficeHolderLabel: "Konrad Adenauer",
		StartActingDate:   model.Str("1949-09-15T00:00:00Z"),
		EndActingDate:     model.Str("1963-10-16T00:00:00Z"),
		BirthDate:         model.Str("1876-01-05T00:00:00Z"),
		DeathDate:         model.Str("1967-04-19T00:00:00Z"),
		PartyShortLabel:   model.Str("CDU"),
		StartPartyDate:    model.Str("1945-01-01T00:00:00Z"),
		Article:           model.Str("https://de.wikipedia.org/wiki/Konrad_Adenauer"),
		WikiType:          "wikipedia",
	}

	got, err := FormatOfficeHolder(rec, chancellor, deLabels)
	require.NoError(t, err)

	want := "1 EVEN Konrad Adenauer (*5 JAN 1876, †19 APR 1967) (seit 1 JAN 1945 Mitglied der Partei CDU)\n" +
		"2 TYPE Bundeskanzler von Deutschland\n" +
		"2 DATE FROM 15 SEP 1949 TO 16 OCT 1963\n" +
		"2 NOTE [wikipedia](https://de.wikipedia.org/wiki/Konrad_Adenauer )"
	assert.Equal(t, want, got)
}

func TestFormatOfficeHolder_Minimal(t *testing.T) {
	rec := model.OfficeHolderRecord{
		OfficeHolderLabel: "Frank-Walter Steinmeier",
		StartActingDate:   model.Str("2017-03-19T00:00:00Z"),
		BirthDate:         model.Str("1956-01-05T00:00:00Z"),
		PartyShortLabel:   model.Str("SPD"),
	}
	office := chancellor
	office.TranslatedOfficeLabel = "President of Germany"

	got, err := FormatOfficeHolder(rec, office, enLabels)
	require.NoError(t, err)

	want := "1 EVEN Frank-Walter Steinmeier (*5 JAN 1956) (member of party SPD)\n" +
		"2 TYPE President of Germany\n" +
		"2 DATE FROM 19 MAR 2017"
	assert.Equal(t, want, got)
}

func TestFormatOfficeHolder_MalformedDate(t *testing.T) {
	rec := model.OfficeHolderRecord{
		OfficeHolderLabel: "Nobody",
		StartActingDate:   model.Str("not a date"),
	}

	_, err := FormatOfficeHolder(rec, chancellor, deLabels)
	assert.True(t, errors.Is(err, errors.ErrMalformedDate))
}

func TestFormatStaticRow_NoImage(t *testing.T) {
	row := model.StaticRow{
		Name:      "Konrad Adenauer (CDU)",
		TypeCode:  "C",
		DateRange: "FROM 15 SEP 1949 TO 16 OCT 1963",
		Article:   "Konrad_Adenauer",
	}

	got := FormatStaticRow(row, deLabels, "de")

	want := "1 EVEN Konrad Adenauer (CDU)\n" +
		"2 TYPE Bundeskanzler von Deutschland\n" +
		"2 DATE FROM 15 SEP 1949 TO 16 OCT 1963\n" +
		"2 NOTE [wikipedia de](https://de.wikipedia.org/wiki/Konrad_Adenauer )"
	assert.Equal(t, want, got)
	assert.NotContains(t, got, "3 CONT")
}

func TestFormatStaticRow_ImageAndAttribution(t *testing.T) {
	row := model.StaticRow{
		Name:        "Walter Scheel (FDP)",
		TypeCode:    "C (A)",
		DateRange:   "FROM 7 MAY 1974 TO 16 MAY 1974",
		Article:     "Walter_Scheel",
		Image:       "upload.wikimedia.org/scheel.jpg",
		Attribution: "Bundesarchiv / CC BY-SA 3.0 DE",
	}

	got := FormatStaticRow(row, enLabels, "de")

	want := "1 EVEN Walter Scheel (FDP)\n" +
		"2 TYPE Chancellor of Germany (acting)\n" +
		"2 DATE FROM 7 MAY 1974 TO 16 MAY 1974\n" +
		"2 NOTE [![wikipedia de](https://upload.wikimedia.org/scheel.jpg )](https://de.wikipedia.org/wiki/Walter_Scheel )\n" +
		"3 CONT source: Bundesarchiv / CC BY-SA 3.0 DE"
	assert.Equal(t, want, got)
}

func TestFormatStaticRow_ImageWithoutAttribution(t *testing.T) {
	row := model.StaticRow{Name: "X", TypeCode: "P", DateRange: "FROM 2000", Article: "X", Image: "img/x.jpg"}

	got := FormatStaticRow(row, enLabels, "de")
	assert.NotContains(t, got, "3 CONT")
	assert.Contains(t, got, "2 NOTE [![wikipedia de](https://img/x.jpg )]")
}

package core

import (
	"strings"

	"github.com/agenthands/chronicle/internal/core/common"
	"github.com/agenthands/chronicle/internal/core/dataset"
	"github.com/agenthands/chronicle/internal/core/model"
	"github.com/agenthands/chronicle/internal/i18n"
)

// FormatOfficeHolder renders a deduplicated live record:
//
//	1 EVEN <label> (*<birth>, †<death>) (<from> <party start> <member of party> <party>)
//	2 TYPE <office>
//	2 DATE FROM <start> TO <end>
//	2 NOTE [<wikiType>](<article> )
//
// Parentheticals, dates and the NOTE line are left out when their data is
// missing. Any date that cannot be normalized fails the whole record.
func FormatOfficeHolder(rec model.OfficeHolderRecord, office model.OfficeDescriptor, labels i18n.Labels) (string, error) {
	var b strings.Builder

	b.WriteString("1 EVEN ")
	b.WriteString(rec.OfficeHolderLabel)

	birth, err := optionalDate(rec.BirthDate)
	if err != nil {
		return "", err
	}
	death, err := optionalDate(rec.DeathDate)
	if err != nil {
		return "", err
	}
	if birth != "" || death != "" {
		var life []string
		if birth != "" {
			life = append(life, "*"+birth)
		}
		if death != "" {
			life = append(life, "†"+death)
		}
		b.WriteString(" (" + strings.Join(life, ", ") + ")")
	}

	if party := model.Value(rec.PartyShortLabel); party != "" {
		since, err := optionalDate(rec.StartPartyDate)
		if err != nil {
			return "", err
		}
		b.WriteString(" (")
		if since != "" {
			b.WriteString(labels.From + " " + since + " ")
		}
		b.WriteString(labels.MemberOfParty + " " + party + ")")
	}

	b.WriteString("\n2 TYPE ")
	b.WriteString(office.TranslatedOfficeLabel)

	start, err := optionalDate(rec.StartActingDate)
	if err != nil {
		return "", err
	}
	end, err := optionalDate(rec.EndActingDate)
	if err != nil {
		return "", err
	}
	switch {
	case start != "" && end != "":
		b.WriteString("\n2 DATE FROM " + start + " TO " + end)
	case start != "":
		b.WriteString("\n2 DATE FROM " + start)
	case end != "":
		b.WriteString("\n2 DATE TO " + end)
	}

	if article := model.Value(rec.Article); article != "" {
		b.WriteString("\n2 NOTE [" + rec.WikiType + "](" + article + " )")
	}

	return b.String(), nil
}

// FormatStaticRow renders a row of the bundled dataset. The NOTE links the
// Wikipedia article in wikiLang, wrapped around the image when there is one;
// the image attribution follows as a CONT line.
func FormatStaticRow(row model.StaticRow, labels i18n.Labels, wikiLang string) string {
	role := dataset.RoleReplacer(labels.Chancellor, labels.President, labels.Acting).Replace(row.TypeCode)
	articleURL := "https://" + wikiLang + ".wikipedia.org/wiki/" + row.Article
	wiki := "wikipedia " + wikiLang

	var b strings.Builder
	b.WriteString("1 EVEN " + row.Name)
	b.WriteString("\n2 TYPE " + role)
	b.WriteString("\n2 DATE " + row.DateRange)

	if row.Image == "" {
		b.WriteString("\n2 NOTE [" + wiki + "](" + articleURL + " )")
		return b.String()
	}

	b.WriteString("\n2 NOTE [![" + wiki + "](https://" + row.Image + " )](" + articleURL + " )")
	if row.Attribution != "" {
		b.WriteString("\n3 CONT " + labels.Source + ": " + row.Attribution)
	}
	return b.String()
}

func optionalDate(iso *string) (string, error) {
	if iso == nil || *iso == "" {
		return "", nil
	}
	return common.NormalizeDate(*iso)
}

package driver

import (
	"strings"

	"github.com/agenthands/chronicle/internal/core/model"
)

// OfficeHoldersQuery lists the holders of an office with their acting
// interval, life dates, party memberships and one linked article. The article
// in the requested language wins over the English one via COALESCE.
//
// Placeholders: {{office}}, {{property}}, {{lang}}.
const OfficeHoldersQuery = `
SELECT ?officeHolderLabel ?startActingDate ?endActingDate ?birthDate ?deathDate
       ?partyShortLabel ?startPartyDate ?article
WHERE {
  wd:{{office}} p:{{property}} ?statement .
  ?statement ps:{{property}} ?officeHolder .
  OPTIONAL { ?statement pq:P580 ?startActingDate . }
  OPTIONAL { ?statement pq:P582 ?endActingDate . }
  OPTIONAL { ?officeHolder wdt:P569 ?birthDate . }
  OPTIONAL { ?officeHolder wdt:P570 ?deathDate . }
  OPTIONAL {
    ?officeHolder p:P102 ?partyStatement .
    ?partyStatement ps:P102 ?party .
    OPTIONAL { ?partyStatement pq:P580 ?startPartyDate . }
    OPTIONAL {
      ?party wdt:P1813 ?partyShortLabel .
      FILTER(LANG(?partyShortLabel) = "{{lang}}" || LANG(?partyShortLabel) = "en")
    }
  }
  OPTIONAL {
    ?articleLang schema:about ?officeHolder ;
                 schema:inLanguage "{{lang}}" .
  }
  OPTIONAL {
    ?articleEn schema:about ?officeHolder ;
               schema:inLanguage "en" .
  }
  BIND(COALESCE(?articleLang, ?articleEn) AS ?article)
  SERVICE wikibase:label { bd:serviceParam wikibase:language "{{lang}},en". }
}
ORDER BY DESC(?officeHolderLabel) DESC(?startPartyDate)
`

// BuildOfficeHoldersQuery fills OfficeHoldersQuery for one office and a
// two-letter language code. Empty identifiers are a caller error.
func BuildOfficeHoldersQuery(office model.OfficeDescriptor, lang string) string {
	r := strings.NewReplacer(
		"{{office}}", office.OfficeEntityID,
		"{{property}}", office.LinkingPropertyID,
		"{{lang}}", lang,
	)
	return r.Replace(OfficeHoldersQuery)
}

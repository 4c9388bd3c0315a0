// Package i18n holds the translated strings that appear inside rendered
// event records: office names, role names and note fragments.
package i18n

// Labels is the set of strings for one language.
type Labels struct {
	Chancellor    string `toml:"chancellor"`
	President     string `toml:"president"`
	GDRHead       string `toml:"gdr_head"`
	Acting        string `toml:"acting"`
	Source        string `toml:"source"`
	From          string `toml:"from"`
	MemberOfParty string `toml:"member_of_party"`
}

// FallbackLanguage is used when a language has no catalog entry.
const FallbackLanguage = "en"

var builtin = map[string]Labels{
	"en": {
		Chancellor:    "Chancellor of Germany",
		President:     "President of Germany",
		GDRHead:       "Head of State of the GDR",
		Acting:        "acting",
		Source:        "source",
		From:          "from",
		MemberOfParty: "member of party",
	},
	"de": {
		Chancellor:    "Bundeskanzler von Deutschland",
		President:     "Bundespräsident von Deutschland",
		GDRHead:       "Staatsoberhaupt der DDR",
		Acting:        "geschäftsführend",
		Source:        "Quelle",
		From:          "seit",
		MemberOfParty: "Mitglied der Partei",
	},
}

// Catalog resolves Labels by two-letter language code.
type Catalog struct {
	entries map[string]Labels
}

// NewCatalog returns the built-in catalog with overrides applied field by
// field. Overrides may also introduce new languages; their empty fields are
// taken from the fallback language.
func NewCatalog(overrides map[string]Labels) *Catalog {
	entries := make(map[string]Labels, len(builtin)+len(overrides))
	for lang, l := range builtin {
		entries[lang] = l
	}
	for lang, o := range overrides {
		base, ok := entries[lang]
		if !ok {
			base = builtin[FallbackLanguage]
		}
		entries[lang] = merge(base, o)
	}
	return &Catalog{entries: entries}
}

// Lookup returns the labels for lang, or the fallback language's labels.
func (c *Catalog) Lookup(lang string) Labels {
	if l, ok := c.entries[lang]; ok {
		return l
	}
	return c.entries[FallbackLanguage]
}

// Has reports whether lang has its own entry.
func (c *Catalog) Has(lang string) bool {
	_, ok := c.entries[lang]
	return ok
}

func merge(base, o Labels) Labels {
	pick := func(b, v string) string {
		if v != "" {
			return v
		}
		return b
	}
	return Labels{
		Chancellor:    pick(base.Chancellor, o.Chancellor),
		President:     pick(base.President, o.President),
		GDRHead:       pick(base.GDRHead, o.GDRHead),
		Acting:        pick(base.Acting, o.Acting),
		Source:        pick(base.Source, o.Source),
		From:          pick(base.From, o.From),
		MemberOfParty: pick(base.MemberOfParty, o.MemberOfParty),
	}
}

package model

// OfficeHolderRecord is one result row of an office-holder query. Optional
// fields are nil when the row carried no binding for them.
type OfficeHolderRecord struct {
	OfficeHolderLabel string  `json:"officeHolderLabel"`
	StartActingDate   *string `json:"startActingDate,omitempty"`
	EndActingDate     *string `json:"endActingDate,omitempty"`
	BirthDate         *string `json:"birthDate,omitempty"`
	DeathDate         *string `json:"deathDate,omitempty"`
	PartyShortLabel   *string `json:"partyShortLabel,omitempty"`
	StartPartyDate    *string `json:"startPartyDate,omitempty"`
	Article           *string `json:"article,omitempty"`

	// WikiType is derived from Article during deduplication ("wikipedia", ...).
	WikiType string `json:"wikiType,omitempty"`
}

// ScoredRecord pairs a candidate with its priority.
type ScoredRecord struct {
	Record   OfficeHolderRecord
	Family   string
	Priority int
}

// StaticRow is one row of the bundled dataset, already split into columns.
type StaticRow struct {
	Name        string `json:"name"`
	TypeCode    string `json:"type"`
	DateRange   string `json:"date"`
	Article     string `json:"article"`
	Image       string `json:"image"`
	Attribution string `json:"attribution"`
}

// Str returns a pointer to s, for building records with optional fields.
func Str(s string) *string {
	return &s
}

// Value dereferences an optional field, returning "" when absent.
func Value(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

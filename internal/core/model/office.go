package model

// OfficeKey names one of the tracked offices.
type OfficeKey string

const (
	OfficeChancellor OfficeKey = "chancellor"
	OfficePresident  OfficeKey = "president"
	OfficeGDRHead    OfficeKey = "gdr_head"
)

// OfficeOrder is the fixed order in which offices contribute events.
var OfficeOrder = []OfficeKey{OfficeChancellor, OfficePresident, OfficeGDRHead}

// OfficeDescriptor identifies an office in the knowledge graph and carries the
// label rendered in the TYPE line.
type OfficeDescriptor struct {
	Key                   OfficeKey `json:"key"`
	OfficeEntityID        string    `json:"office_entity_id"`   // e.g. Q4970706
	LinkingPropertyID     string    `json:"linking_property_id"` // e.g. P1308
	TranslatedOfficeLabel string    `json:"translated_office_label"`
}

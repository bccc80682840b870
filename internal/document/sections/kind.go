// Package sections builds every part of the inspection report from gathered data.
// The set of sections is closed: Kind enumerates them and Build dispatches on it.
package sections

import (
	"fmt"
	"html/template"
)

// Kind identifies one section of the report
type Kind int

const (
	KindCover Kind = iota
	KindExecutiveSummary
	KindFoodSafety
	KindTemperature
	KindCleaning
	KindPestControl
	KindTraining
	KindIncidents
	KindOpeningClosing
	KindHealthSafety
	KindFireSafety
	KindCOSHH
	KindEquipment
	KindDocumentation
	KindAdditionalRecords
	KindEvidence
)

// Order is the fixed body order; the cover is rendered as the preamble
var Order = []Kind{
	KindExecutiveSummary,
	KindFoodSafety,
	KindTemperature,
	KindCleaning,
	KindPestControl,
	KindTraining,
	KindIncidents,
	KindOpeningClosing,
	KindHealthSafety,
	KindFireSafety,
	KindCOSHH,
	KindEquipment,
	KindDocumentation,
	KindAdditionalRecords,
	KindEvidence,
}

// Meta is the stable identity of a section
type Meta struct {
	Ordinal string
	Anchor  string
	Title   string
	// Group changes start a new printed page
	Group int
}

var metas = map[Kind]Meta{
	KindCover:             {Ordinal: "", Anchor: "cover", Title: "Cover & Contents", Group: 0},
	KindExecutiveSummary:  {Ordinal: "1", Anchor: "section-1", Title: "Executive Summary", Group: 1},
	KindFoodSafety:        {Ordinal: "2", Anchor: "section-2", Title: "Food Safety Management", Group: 2},
	KindTemperature:       {Ordinal: "3", Anchor: "section-3", Title: "Temperature Monitoring", Group: 2},
	KindCleaning:          {Ordinal: "4", Anchor: "section-4", Title: "Cleaning Records", Group: 2},
	KindPestControl:       {Ordinal: "5", Anchor: "section-5", Title: "Pest Control", Group: 2},
	KindTraining:          {Ordinal: "6", Anchor: "section-6", Title: "Staff Training", Group: 3},
	KindIncidents:         {Ordinal: "7", Anchor: "section-7", Title: "Incidents & Accidents", Group: 3},
	KindOpeningClosing:    {Ordinal: "8", Anchor: "section-8", Title: "Opening & Closing Checks", Group: 4},
	KindHealthSafety:      {Ordinal: "9", Anchor: "section-9", Title: "Health & Safety", Group: 4},
	KindFireSafety:        {Ordinal: "10", Anchor: "section-10", Title: "Fire Safety", Group: 4},
	KindCOSHH:             {Ordinal: "11", Anchor: "section-11", Title: "COSHH", Group: 4},
	KindEquipment:         {Ordinal: "12", Anchor: "section-12", Title: "Equipment & Maintenance", Group: 5},
	KindDocumentation:     {Ordinal: "13", Anchor: "section-13", Title: "Documentation & Licences", Group: 5},
	KindAdditionalRecords: {Ordinal: "14", Anchor: "section-14", Title: "Suppliers & Additional Records", Group: 5},
	KindEvidence:          {Ordinal: "A", Anchor: "appendix-a", Title: "Appendix A: Evidence Gallery", Group: 6},
}

// Meta returns the section's ordinal, anchor, title and group
func (k Kind) Meta() Meta {
	return metas[k]
}

func (k Kind) String() string {
	if m, ok := metas[k]; ok {
		return m.Title
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Build renders one section body
func Build(kind Kind, in *Input) (template.HTML, error) {
	if in == nil || in.Data == nil || in.Site == nil {
		return "", fmt.Errorf("%s: incomplete input", kind)
	}

	switch kind {
	case KindCover:
		return buildCover(in)
	case KindExecutiveSummary:
		return buildExecutiveSummary(in)
	case KindFoodSafety:
		return buildFoodSafety(in)
	case KindTemperature:
		return buildTemperature(in)
	case KindCleaning:
		return buildCleaning(in)
	case KindPestControl:
		return buildPestControl(in)
	case KindTraining:
		return buildTraining(in)
	case KindIncidents:
		return buildIncidents(in)
	case KindOpeningClosing:
		return buildOpeningClosing(in)
	case KindHealthSafety:
		return buildHealthSafety(in)
	case KindFireSafety:
		return buildFireSafety(in)
	case KindCOSHH:
		return buildCOSHH(in)
	case KindEquipment:
		return buildEquipment(in)
	case KindDocumentation:
		return buildDocumentation(in)
	case KindAdditionalRecords:
		return buildAdditionalRecords(in)
	case KindEvidence:
		return buildEvidence(in)
	default:
		return "", fmt.Errorf("unknown section kind %d", int(kind))
	}
}

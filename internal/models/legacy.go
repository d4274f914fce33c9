// models/legacy.go - Flat convenience fields for older API consumers
package models

// LegacyFields are the flat fields the API exposed before project_details
// became the source of truth. They are still stored as plain columns so
// rows written before the migration keep working.
type LegacyFields struct {
	EventDate     string   `json:"event_date"`
	EventLocation string   `json:"event_location"`
	SpeakerFee    *float64 `json:"speaker_fee,omitempty"`
	VenueName     string   `json:"venue_name"`
}

// ResolveLegacy shapes the flat fields for a response. The nested document
// wins whenever it carries a value; the stored flat column is only a
// fallback for pre-migration rows.
func ResolveLegacy(stored LegacyFields, d *ProjectDetails) LegacyFields {
	out := stored
	if d == nil {
		return out
	}
	if o := d.Overview; o != nil {
		if o.EventDate != "" {
			out.EventDate = o.EventDate
		}
		if o.EventLocation != "" {
			out.EventLocation = o.EventLocation
		}
		if o.SpeakerFee != nil {
			out.SpeakerFee = o.SpeakerFee
		}
	}
	if v := d.Venue; v != nil && v.Name != "" {
		out.VenueName = v.Name
	}
	return out
}

// models/completion.go - Data-quality scoring over project_details
package models

import "math"

// criticalFieldCount is the fixed denominator for the completion score.
// Adding optional fields to ProjectDetails must not move the score; only an
// explicit change to the critical-field audit below may.
const criticalFieldCount = 8

// Completion derives the data-quality score for a project document: the
// rounded percentage of critical fields present, and whether any critical
// field is still missing. A field is missing when its sub-object is absent
// or the value is the empty string; a numeric zero counts as present.
func Completion(d *ProjectDetails) (percent int, missing bool) {
	present := 0
	for _, ok := range criticalFields(d) {
		if ok {
			present++
		}
	}
	percent = int(math.Round(float64(present) * 100 / criticalFieldCount))
	return percent, present < criticalFieldCount
}

// criticalFields audits the 8 critical fields in their documented order:
// overview.speaker_name, overview.company_name, overview.event_location,
// overview.event_date, venue.name, contacts.on_site.name,
// audience.expected_size, event_details.event_title.
func criticalFields(d *ProjectDetails) [criticalFieldCount]bool {
	var f [criticalFieldCount]bool
	if d == nil {
		return f
	}
	if o := d.Overview; o != nil {
		f[0] = o.SpeakerName != ""
		f[1] = o.CompanyName != ""
		f[2] = o.EventLocation != ""
		f[3] = o.EventDate != ""
	}
	if v := d.Venue; v != nil {
		f[4] = v.Name != ""
	}
	if c := d.Contacts; c != nil && c.OnSite != nil {
		f[5] = c.OnSite.Name != ""
	}
	if a := d.Audience; a != nil {
		f[6] = a.ExpectedSize != nil
	}
	if e := d.EventDetails; e != nil {
		f[7] = e.EventTitle != ""
	}
	return f
}

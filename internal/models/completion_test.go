package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func boolPtr(v bool) *bool { return &v }

// fullDetails returns a document with all 8 critical fields present.
func fullDetails() *ProjectDetails {
	return &ProjectDetails{
		Overview: &Overview{
			SpeakerName:   "Jane Doe",
			CompanyName:   "Acme Corp",
			EventLocation: "Austin, TX",
			EventDate:     "2026-10-12",
		},
		Venue:        &Venue{Name: "Convention Center"},
		Contacts:     &Contacts{OnSite: &Contact{Name: "Sam Lee"}},
		Audience:     &Audience{ExpectedSize: intPtr(250)},
		EventDetails: &EventDetails{EventTitle: "Annual Kickoff"},
	}
}

func TestCompletionEmpty(t *testing.T) {
	percent, missing := Completion(nil)
	assert.Equal(t, 0, percent)
	assert.True(t, missing)

	percent, missing = Completion(&ProjectDetails{})
	assert.Equal(t, 0, percent)
	assert.True(t, missing)
}

func TestCompletionSingleField(t *testing.T) {
	d := &ProjectDetails{Overview: &Overview{SpeakerName: "Jane Doe"}}
	percent, missing := Completion(d)
	// 1 of 8 fields rounds to 13.
	assert.Equal(t, 13, percent)
	assert.True(t, missing)
}

func TestCompletionHalf(t *testing.T) {
	d := &ProjectDetails{
		Overview: &Overview{
			SpeakerName:   "Jane Doe",
			CompanyName:   "Acme Corp",
			EventLocation: "Austin, TX",
			EventDate:     "2026-10-12",
		},
	}
	percent, missing := Completion(d)
	assert.Equal(t, 50, percent)
	assert.True(t, missing)
}

func TestCompletionFull(t *testing.T) {
	percent, missing := Completion(fullDetails())
	assert.Equal(t, 100, percent)
	assert.False(t, missing)
}

func TestCompletionZeroAudienceCountsAsPresent(t *testing.T) {
	d := fullDetails()
	d.Audience.ExpectedSize = intPtr(0)
	percent, missing := Completion(d)
	assert.Equal(t, 100, percent)
	assert.False(t, missing)
}

func TestCompletionAbsentAudienceIsMissing(t *testing.T) {
	d := fullDetails()
	d.Audience.ExpectedSize = nil
	percent, missing := Completion(d)
	assert.Equal(t, 88, percent)
	assert.True(t, missing)
}

func TestCompletionIgnoresNonCriticalFields(t *testing.T) {
	d := &ProjectDetails{Overview: &Overview{SpeakerName: "Jane Doe"}}
	before, _ := Completion(d)

	// Pile on every non-critical field the schema has.
	d.Overview.EventTime = "09:00"
	d.Overview.EngagementType = "keynote"
	d.Overview.SpeakerFee = floatPtr(15000)
	d.Billing = &Billing{ContactName: "AP Desk", PONumber: "PO-991"}
	d.Logistics = &Logistics{TravelRequired: boolPtr(true), Hotel: "Downtown Marriott"}
	d.Audience = &Audience{Demographics: "executives", Industry: "insurance"}

	after, missing := Completion(d)
	assert.Equal(t, before, after)
	assert.True(t, missing)
}

func TestCompletionFlagTracksPercentage(t *testing.T) {
	cases := []*ProjectDetails{
		nil,
		{},
		{Overview: &Overview{SpeakerName: "Jane Doe"}},
		fullDetails(),
	}
	for _, d := range cases {
		percent, missing := Completion(d)
		assert.Equal(t, percent == 100, !missing)
	}
}

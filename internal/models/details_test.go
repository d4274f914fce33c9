package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeReplacesOnlySuppliedSubObjects(t *testing.T) {
	base := fullDetails()
	base.Billing = &Billing{ContactName: "AP Desk", PaymentTerms: "net 30"}

	wantOverview, err := json.Marshal(base.Overview)
	require.NoError(t, err)
	wantContacts, err := json.Marshal(base.Contacts)
	require.NoError(t, err)
	wantBilling, err := json.Marshal(base.Billing)
	require.NoError(t, err)

	merged := Merge(base, &ProjectDetails{
		Venue: &Venue{Name: "Grand Ballroom", City: "Chicago"},
	})

	assert.Equal(t, "Grand Ballroom", merged.Venue.Name)
	assert.Equal(t, "Chicago", merged.Venue.City)

	// Untouched sub-objects serialize byte-for-byte as before.
	gotOverview, _ := json.Marshal(merged.Overview)
	gotContacts, _ := json.Marshal(merged.Contacts)
	gotBilling, _ := json.Marshal(merged.Billing)
	assert.Equal(t, wantOverview, gotOverview)
	assert.Equal(t, wantContacts, gotContacts)
	assert.Equal(t, wantBilling, gotBilling)
}

func TestMergeReplacesSubObjectWholesale(t *testing.T) {
	base := &ProjectDetails{
		Venue: &Venue{Name: "Convention Center", Address: "500 Main St", City: "Austin"},
	}
	merged := Merge(base, &ProjectDetails{Venue: &Venue{Name: "Hilton"}})

	// The incoming venue wins in full; the old address does not leak in.
	assert.Equal(t, "Hilton", merged.Venue.Name)
	assert.Empty(t, merged.Venue.Address)
	assert.Empty(t, merged.Venue.City)
}

func TestMergeNilIncoming(t *testing.T) {
	base := fullDetails()
	merged := Merge(base, nil)
	assert.Equal(t, base, merged)
}

func TestMergeNilBase(t *testing.T) {
	merged := Merge(nil, &ProjectDetails{Venue: &Venue{Name: "Hilton"}})
	require.NotNil(t, merged.Venue)
	assert.Equal(t, "Hilton", merged.Venue.Name)
	assert.Nil(t, merged.Overview)
}

func TestMergeDoesNotModifyArguments(t *testing.T) {
	base := &ProjectDetails{Venue: &Venue{Name: "Convention Center"}}
	incoming := &ProjectDetails{Venue: &Venue{Name: "Hilton"}}
	Merge(base, incoming)
	assert.Equal(t, "Convention Center", base.Venue.Name)
	assert.Equal(t, "Hilton", incoming.Venue.Name)
}

func TestMergeStages(t *testing.T) {
	base := StageCompletion{
		"contracting": {"contract_sent": true, "contract_signed": false},
		"logistics":   {"travel_booked": false},
	}
	merged := MergeStages(base, StageCompletion{
		"contracting": {"contract_sent": true, "contract_signed": true},
	})

	assert.True(t, merged["contracting"]["contract_signed"])
	// Sibling stage preserved.
	assert.Contains(t, merged, "logistics")
	assert.False(t, merged["logistics"]["travel_booked"])
}

func TestDetailsScanRoundTrip(t *testing.T) {
	d := *fullDetails()

	v, err := d.Value()
	require.NoError(t, err)

	var back ProjectDetails
	require.NoError(t, back.Scan(v))
	assert.Equal(t, d, back)

	var fromNull ProjectDetails
	require.NoError(t, fromNull.Scan(nil))
	assert.Equal(t, ProjectDetails{}, fromNull)
}

func TestDefaultDetailsPrefersNestedDocument(t *testing.T) {
	nested := fullDetails()
	in := CreateInput{
		ProjectName: "Acme Kickoff",
		// Flat fields must be ignored for defaulting when the nested
		// document is supplied.
		SpeakerName: "Someone Else",
		VenueName:   "Wrong Venue",
		Details:     nested,
	}
	assert.Equal(t, nested, in.DefaultDetails())
}

func TestDefaultDetailsFromFlatFields(t *testing.T) {
	in := CreateInput{
		ProjectName:   "Acme Kickoff",
		Company:       "Acme Corp",
		SpeakerName:   "Jane Doe",
		EventDate:     "2026-10-12",
		EventLocation: "Austin, TX",
		SpeakerFee:    floatPtr(15000),
		VenueName:     "Convention Center",
	}
	d := in.DefaultDetails()

	require.NotNil(t, d.Overview)
	assert.Equal(t, "Jane Doe", d.Overview.SpeakerName)
	assert.Equal(t, "Acme Corp", d.Overview.CompanyName)
	assert.Equal(t, "2026-10-12", d.Overview.EventDate)
	assert.Equal(t, "Austin, TX", d.Overview.EventLocation)
	require.NotNil(t, d.Overview.SpeakerFee)
	assert.Equal(t, 15000.0, *d.Overview.SpeakerFee)
	require.NotNil(t, d.Venue)
	assert.Equal(t, "Convention Center", d.Venue.Name)
}

func TestDefaultDetailsEmptyInput(t *testing.T) {
	d := CreateInput{ProjectName: "Bare"}.DefaultDetails()
	require.NotNil(t, d)
	assert.Nil(t, d.Overview)
	assert.Nil(t, d.Venue)
}

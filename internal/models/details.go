// models/details.go - Nested project_details document
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ProjectDetails is the semi-structured document describing one booking.
// Every sub-object and every field inside one is optional; required-ness is
// a business rule enforced by the completion calculator, not by the type.
type ProjectDetails struct {
	Overview     *Overview     `json:"overview,omitempty"`
	Venue        *Venue        `json:"venue,omitempty"`
	Contacts     *Contacts     `json:"contacts,omitempty"`
	EventDetails *EventDetails `json:"event_details,omitempty"`
	Audience     *Audience     `json:"audience,omitempty"`
	Billing      *Billing      `json:"billing,omitempty"`
	Logistics    *Logistics    `json:"logistics,omitempty"`
}

// Overview holds the headline facts about the engagement.
type Overview struct {
	SpeakerName    string   `json:"speaker_name,omitempty"`
	CompanyName    string   `json:"company_name,omitempty"`
	EventLocation  string   `json:"event_location,omitempty"`
	EventDate      string   `json:"event_date,omitempty"`
	EventTime      string   `json:"event_time,omitempty"`
	EngagementType string   `json:"engagement_type,omitempty"`
	SpeakerFee     *float64 `json:"speaker_fee,omitempty"`
}

type Venue struct {
	Name        string `json:"name,omitempty"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Zip         string `json:"zip,omitempty"`
	MeetingRoom string `json:"meeting_room,omitempty"`
	Capacity    *int   `json:"capacity,omitempty"`
}

// Contact is one named person reachable for the event.
type Contact struct {
	Name  string `json:"name,omitempty"`
	Title string `json:"title,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type Contacts struct {
	OnSite    *Contact `json:"on_site,omitempty"`
	Logistics *Contact `json:"logistics,omitempty"`
	AV        *Contact `json:"av,omitempty"`
}

type EventDetails struct {
	EventTitle      string `json:"event_title,omitempty"`
	EventTheme      string `json:"event_theme,omitempty"`
	SessionFormat   string `json:"session_format,omitempty"`
	DurationMinutes *int   `json:"duration_minutes,omitempty"`
	Agenda          string `json:"agenda,omitempty"`
}

type Audience struct {
	ExpectedSize *int   `json:"expected_size,omitempty"`
	Demographics string `json:"demographics,omitempty"`
	Industry     string `json:"industry,omitempty"`
}

type Billing struct {
	ContactName  string `json:"contact_name,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	Address      string `json:"address,omitempty"`
	PONumber     string `json:"po_number,omitempty"`
	PaymentTerms string `json:"payment_terms,omitempty"`
}

type Logistics struct {
	TravelRequired *bool  `json:"travel_required,omitempty"`
	Hotel          string `json:"hotel,omitempty"`
	AVNeeds        string `json:"av_needs,omitempty"`
	ArrivalTime    string `json:"arrival_time,omitempty"`
	DepartureTime  string `json:"departure_time,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// Merge combines an incoming partial document into base, shallowly: each
// sub-object present in incoming replaces the base sub-object wholesale,
// each sub-object absent from incoming is preserved unchanged. Neither
// argument is modified.
func Merge(base, incoming *ProjectDetails) *ProjectDetails {
	var out ProjectDetails
	if base != nil {
		out = *base
	}
	if incoming == nil {
		return &out
	}
	if incoming.Overview != nil {
		out.Overview = incoming.Overview
	}
	if incoming.Venue != nil {
		out.Venue = incoming.Venue
	}
	if incoming.Contacts != nil {
		out.Contacts = incoming.Contacts
	}
	if incoming.EventDetails != nil {
		out.EventDetails = incoming.EventDetails
	}
	if incoming.Audience != nil {
		out.Audience = incoming.Audience
	}
	if incoming.Billing != nil {
		out.Billing = incoming.Billing
	}
	if incoming.Logistics != nil {
		out.Logistics = incoming.Logistics
	}
	return &out
}

// Value implements driver.Valuer so the document persists as JSONB.
func (d ProjectDetails) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan implements sql.Scanner for reading the JSONB column back.
func (d *ProjectDetails) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = ProjectDetails{}
		return nil
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	}
	return fmt.Errorf("unsupported project_details type %T", src)
}

// StageCompletion maps a workflow stage name to its checklist items and
// whether each item is done. It is independent of the project status.
type StageCompletion map[string]map[string]bool

// MergeStages follows the same precedence rule as Merge: a stage present in
// incoming replaces that stage's checklist wholesale, sibling stages are
// kept.
func MergeStages(base, incoming StageCompletion) StageCompletion {
	out := make(StageCompletion, len(base)+len(incoming))
	for stage, items := range base {
		out[stage] = items
	}
	for stage, items := range incoming {
		out[stage] = items
	}
	return out
}

func (sc StageCompletion) Value() (driver.Value, error) {
	if sc == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(sc)
}

func (sc *StageCompletion) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*sc = nil
		return nil
	case []byte:
		return json.Unmarshal(v, sc)
	case string:
		return json.Unmarshal([]byte(v), sc)
	}
	return fmt.Errorf("unsupported stage_completion type %T", src)
}

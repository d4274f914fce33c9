// models/project.go - Data models for the booking back office
package models

import "time"

// Status is the project lifecycle state. The set is open but these are the
// documented values; nothing transitions a project outside an explicit API
// call.
type Status string

const (
	StatusPlanning   Status = "planning"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusOnHold     Status = "on_hold"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Terminal reports whether the status excludes a project from the active
// and overdue listings.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Priority of a project.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Project is one booking engagement as returned by the API: the flat
// columns, the nested details document, and the resolved legacy fields.
type Project struct {
	ID          int64  `json:"id"`
	ProjectName string `json:"project_name"`
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email,omitempty"`
	ClientPhone string `json:"client_phone,omitempty"`
	Company     string `json:"company,omitempty"`
	ProjectType string `json:"project_type"`
	Description string `json:"description,omitempty"`

	Status   Status   `json:"status"`
	Priority Priority `json:"priority"`

	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Deadline  *time.Time `json:"deadline,omitempty"`

	Budget float64 `json:"budget"`
	Spent  float64 `json:"spent"`

	// CompletionPercentage is workflow progress set by the user;
	// DetailsCompletionPercentage is the system-derived data-quality score.
	CompletionPercentage        int  `json:"completion_percentage"`
	DetailsCompletionPercentage int  `json:"details_completion_percentage"`
	HasCriticalMissingInfo      bool `json:"has_critical_missing_info"`

	Notes string `json:"notes,omitempty"`
	Tags  string `json:"tags,omitempty"`

	Details         *ProjectDetails `json:"project_details"`
	StageCompletion StageCompletion `json:"stage_completion,omitempty"`

	ActualRevenue        *float64 `json:"actual_revenue,omitempty"`
	CommissionPercentage *float64 `json:"commission_percentage,omitempty"`
	CommissionAmount     *float64 `json:"commission_amount,omitempty"`
	PaymentStatus        string   `json:"payment_status"`
	StripePaymentID      string   `json:"stripe_payment_id,omitempty"`

	LegacyFields

	PortalToken         string     `json:"portal_token,omitempty"`
	PortalExpiresAt     *time.Time `json:"portal_expires_at,omitempty"`
	PortalAllowedFields []string   `json:"portal_allowed_fields,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// CreateInput is the payload for creating a project. Either the nested
// project_details document or the flat convenience fields may be supplied;
// when the nested form is present the flat fields play no part in
// defaulting the document.
type CreateInput struct {
	ProjectName string `json:"project_name" validate:"required"`
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email" validate:"omitempty,email"`
	ClientPhone string `json:"client_phone"`
	Company     string `json:"company"`
	ProjectType string `json:"project_type"`
	Description string `json:"description"`

	Status   Status   `json:"status"`
	Priority Priority `json:"priority" validate:"omitempty,oneof=low medium high urgent"`

	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Deadline  *time.Time `json:"deadline"`

	Budget float64 `json:"budget" validate:"gte=0"`
	Spent  float64 `json:"spent" validate:"gte=0"`

	Notes string `json:"notes"`
	Tags  string `json:"tags"`

	// Flat convenience inputs used to default project_details when the
	// nested document is absent.
	SpeakerName   string   `json:"speaker_name"`
	EventDate     string   `json:"event_date"`
	EventLocation string   `json:"event_location"`
	SpeakerFee    *float64 `json:"speaker_fee"`
	VenueName     string   `json:"venue_name"`

	Details *ProjectDetails `json:"project_details"`
}

// DefaultDetails picks the initial document for a new project: the supplied
// nested document verbatim, or one built from the flat convenience fields.
func (c CreateInput) DefaultDetails() *ProjectDetails {
	if c.Details != nil {
		return c.Details
	}
	d := &ProjectDetails{}
	if c.SpeakerName != "" || c.Company != "" || c.EventLocation != "" ||
		c.EventDate != "" || c.SpeakerFee != nil {
		d.Overview = &Overview{
			SpeakerName:   c.SpeakerName,
			CompanyName:   c.Company,
			EventLocation: c.EventLocation,
			EventDate:     c.EventDate,
			SpeakerFee:    c.SpeakerFee,
		}
	}
	if c.VenueName != "" {
		d.Venue = &Venue{Name: c.VenueName}
	}
	return d
}

// Metrics summarizes the project book for the back-office dashboard.
type Metrics struct {
	TotalProjects        int     `json:"total_projects"`
	ActiveProjects       int     `json:"active_projects"`
	OverdueProjects      int     `json:"overdue_projects"`
	MissingInfoProjects  int     `json:"missing_info_projects"`
	TotalBudget          float64 `json:"total_budget"`
	TotalActualRevenue   float64 `json:"total_actual_revenue"`
	AvgDetailsCompletion float64 `json:"avg_details_completion"`
}

// UpdateInput is a partial update. Nil fields are left untouched; the set
// of updatable columns is exactly the fields below, so an unknown column
// cannot reach the UPDATE statement.
type UpdateInput struct {
	ProjectName *string `json:"project_name"`
	ClientName  *string `json:"client_name"`
	ClientEmail *string `json:"client_email" validate:"omitempty,email"`
	ClientPhone *string `json:"client_phone"`
	Company     *string `json:"company"`
	ProjectType *string `json:"project_type"`
	Description *string `json:"description"`

	Status   *Status   `json:"status"`
	Priority *Priority `json:"priority" validate:"omitempty,oneof=low medium high urgent"`

	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Deadline  *time.Time `json:"deadline"`

	Budget *float64 `json:"budget" validate:"omitempty,gte=0"`
	Spent  *float64 `json:"spent" validate:"omitempty,gte=0"`

	CompletionPercentage *int `json:"completion_percentage" validate:"omitempty,gte=0,lte=100"`

	Notes *string `json:"notes"`
	Tags  *string `json:"tags"`

	ActualRevenue        *float64 `json:"actual_revenue" validate:"omitempty,gte=0"`
	CommissionPercentage *float64 `json:"commission_percentage" validate:"omitempty,gte=0,lte=100"`
	CommissionAmount     *float64 `json:"commission_amount" validate:"omitempty,gte=0"`
	PaymentStatus        *string  `json:"payment_status"`

	// Details is shallow-merged into the stored document; StageCompletion
	// merges at the stage level.
	Details         *ProjectDetails `json:"project_details"`
	StageCompletion StageCompletion `json:"stage_completion"`
}

// store/projects.go - Project persistence (merge-then-recompute on write)
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/speakerbase/backoffice/internal/models"
)

// projectRow mirrors the projects table for scanning.
type projectRow struct {
	ID          int64  `db:"id"`
	ProjectName string `db:"project_name"`
	ClientName  string `db:"client_name"`
	ClientEmail string `db:"client_email"`
	ClientPhone string `db:"client_phone"`
	Company     string `db:"company"`
	ProjectType string `db:"project_type"`
	Description string `db:"description"`

	Status   models.Status   `db:"status"`
	Priority models.Priority `db:"priority"`

	StartDate sql.NullTime `db:"start_date"`
	EndDate   sql.NullTime `db:"end_date"`
	Deadline  sql.NullTime `db:"deadline"`

	Budget float64 `db:"budget"`
	Spent  float64 `db:"spent"`

	CompletionPercentage        int  `db:"completion_percentage"`
	DetailsCompletionPercentage int  `db:"details_completion_percentage"`
	HasCriticalMissingInfo      bool `db:"has_critical_missing_info"`

	Notes string `db:"notes"`
	Tags  string `db:"tags"`

	Details         models.ProjectDetails  `db:"project_details"`
	StageCompletion models.StageCompletion `db:"stage_completion"`

	ActualRevenue        sql.NullFloat64 `db:"actual_revenue"`
	CommissionPercentage sql.NullFloat64 `db:"commission_percentage"`
	CommissionAmount     sql.NullFloat64 `db:"commission_amount"`
	PaymentStatus        string          `db:"payment_status"`
	StripePaymentID      sql.NullString  `db:"stripe_payment_id"`

	// Stored legacy flat columns; pre-migration rows carry values here
	// that the nested document may not.
	EventDate     string          `db:"event_date"`
	EventLocation string          `db:"event_location"`
	SpeakerFee    sql.NullFloat64 `db:"speaker_fee"`
	VenueName     string          `db:"venue_name"`

	PortalToken         sql.NullString `db:"portal_token"`
	PortalExpiresAt     sql.NullTime   `db:"portal_expires_at"`
	PortalAllowedFields pq.StringArray `db:"portal_allowed_fields"`

	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at"`
	CompletedAt sql.NullTime `db:"completed_at"`
}

// toProject shapes a row for the API, resolving the legacy flat fields
// against the nested document.
func (r *projectRow) toProject() *models.Project {
	details := r.Details
	stored := models.LegacyFields{
		EventDate:     r.EventDate,
		EventLocation: r.EventLocation,
		SpeakerFee:    nullFloat(r.SpeakerFee),
		VenueName:     r.VenueName,
	}

	return &models.Project{
		ID:          r.ID,
		ProjectName: r.ProjectName,
		ClientName:  r.ClientName,
		ClientEmail: r.ClientEmail,
		ClientPhone: r.ClientPhone,
		Company:     r.Company,
		ProjectType: r.ProjectType,
		Description: r.Description,

		Status:   r.Status,
		Priority: r.Priority,

		StartDate: nullTime(r.StartDate),
		EndDate:   nullTime(r.EndDate),
		Deadline:  nullTime(r.Deadline),

		Budget: r.Budget,
		Spent:  r.Spent,

		CompletionPercentage:        r.CompletionPercentage,
		DetailsCompletionPercentage: r.DetailsCompletionPercentage,
		HasCriticalMissingInfo:      r.HasCriticalMissingInfo,

		Notes: r.Notes,
		Tags:  r.Tags,

		Details:         &details,
		StageCompletion: r.StageCompletion,

		ActualRevenue:        nullFloat(r.ActualRevenue),
		CommissionPercentage: nullFloat(r.CommissionPercentage),
		CommissionAmount:     nullFloat(r.CommissionAmount),
		PaymentStatus:        r.PaymentStatus,
		StripePaymentID:      r.StripePaymentID.String,

		LegacyFields: models.ResolveLegacy(stored, &details),

		PortalToken:         r.PortalToken.String,
		PortalExpiresAt:     nullTime(r.PortalExpiresAt),
		PortalAllowedFields: r.PortalAllowedFields,

		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		CompletedAt: nullTime(r.CompletedAt),
	}
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func nullFloat(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}

// Create inserts a new project. The details document is either the supplied
// nested form or one defaulted from the flat convenience fields; the row is
// inserted with an empty score which is recomputed and persisted before the
// created record is returned.
func (s *DB) Create(ctx context.Context, in models.CreateInput) (*models.Project, error) {
	if !s.available("create project") {
		return nil, nil
	}

	status := in.Status
	if status == "" {
		status = models.StatusPlanning
	}
	priority := in.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	projectType := in.ProjectType
	if projectType == "" {
		projectType = "speaking_engagement"
	}
	details := in.DefaultDetails()

	var id int64
	err := s.db.QueryRowContext(ctx, qProjectInsert,
		in.ProjectName, in.ClientName, in.ClientEmail, in.ClientPhone, in.Company,
		projectType, in.Description, status, priority, in.StartDate, in.EndDate, in.Deadline,
		in.Budget, in.Spent, in.Notes, in.Tags, details,
		in.EventDate, in.EventLocation, in.SpeakerFee, in.VenueName,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("insert project: %w", ErrConflict)
		}
		return nil, fmt.Errorf("insert project: %w", err)
	}

	percent, missing := models.Completion(details)
	if _, err := s.db.ExecContext(ctx, qProjectSetDerived, percent, missing, id); err != nil {
		return nil, fmt.Errorf("persist completion for project %d: %w", id, err)
	}

	return s.GetByID(ctx, id)
}

// GetByID returns the shaped project, or nil when no row matches.
func (s *DB) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	if !s.available("get project") {
		return nil, nil
	}
	return s.getOne(ctx, qProjectByID, id)
}

func (s *DB) getOne(ctx context.Context, query string, arg any) (*models.Project, error) {
	var row projectRow
	err := s.db.GetContext(ctx, &row, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return row.toProject(), nil
}

// Update applies a partial update. Only columns present in the input are
// written; a supplied details document is shallow-merged into the stored
// one and the completion score is recomputed in the same write. Returns nil
// when the project does not exist.
func (s *DB) Update(ctx context.Context, id int64, in models.UpdateInput) (*models.Project, error) {
	if !s.available("update project") {
		return nil, nil
	}

	var current projectRow
	err := s.db.GetContext(ctx, &current, qProjectByID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load project %d for update: %w", id, err)
	}

	b := &updateBuilder{}
	b.setString("project_name", in.ProjectName)
	b.setString("client_name", in.ClientName)
	b.setString("client_email", in.ClientEmail)
	b.setString("client_phone", in.ClientPhone)
	b.setString("company", in.Company)
	b.setString("project_type", in.ProjectType)
	b.setString("description", in.Description)
	b.setString("notes", in.Notes)
	b.setString("tags", in.Tags)
	b.setString("payment_status", in.PaymentStatus)
	b.setFloat("budget", in.Budget)
	b.setFloat("spent", in.Spent)
	b.setFloat("actual_revenue", in.ActualRevenue)
	b.setFloat("commission_percentage", in.CommissionPercentage)
	b.setFloat("commission_amount", in.CommissionAmount)
	b.setTime("start_date", in.StartDate)
	b.setTime("end_date", in.EndDate)
	b.setTime("deadline", in.Deadline)
	if in.CompletionPercentage != nil {
		b.set("completion_percentage", *in.CompletionPercentage)
	}
	if in.Priority != nil {
		b.set("priority", *in.Priority)
	}
	if in.Status != nil {
		b.set("status", *in.Status)
		if *in.Status == models.StatusCompleted {
			b.setExpr("completed_at = NOW()")
		}
	}
	if in.Details != nil {
		merged := models.Merge(&current.Details, in.Details)
		percent, missing := models.Completion(merged)
		b.set("project_details", merged)
		b.set("details_completion_percentage", percent)
		b.set("has_critical_missing_info", missing)
	}
	if in.StageCompletion != nil {
		b.set("stage_completion", models.MergeStages(current.StageCompletion, in.StageCompletion))
	}

	query, args := b.build(id)
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("update project %d: %w", id, err)
	}

	return s.GetByID(ctx, id)
}

// Search runs a case-insensitive substring match over project_name,
// client_name, company, and the serialized details document.
func (s *DB) Search(ctx context.Context, term string) ([]models.Project, error) {
	return s.list(ctx, "search projects", qProjectsSearch, "%"+term+"%")
}

// ListByStatus returns projects in the given lifecycle state, most recently
// touched first.
func (s *DB) ListByStatus(ctx context.Context, status models.Status) ([]models.Project, error) {
	return s.list(ctx, "list projects by status", qProjectsByStatus, status)
}

// ListByPriority returns projects of the given priority, most recently
// touched first.
func (s *DB) ListByPriority(ctx context.Context, priority models.Priority) ([]models.Project, error) {
	return s.list(ctx, "list projects by priority", qProjectsByPriority, priority)
}

// ListActive returns non-terminal projects ordered by priority, then
// recency.
func (s *DB) ListActive(ctx context.Context) ([]models.Project, error) {
	return s.list(ctx, "list active projects", qProjectsActive)
}

// ListOverdue returns non-terminal projects whose deadline has passed,
// soonest deadline first.
func (s *DB) ListOverdue(ctx context.Context) ([]models.Project, error) {
	return s.list(ctx, "list overdue projects", qProjectsOverdue)
}

func (s *DB) list(ctx context.Context, op, query string, args ...any) ([]models.Project, error) {
	if !s.available(op) {
		return nil, nil
	}

	var rows []projectRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	projects := make([]models.Project, 0, len(rows))
	for i := range rows {
		projects = append(projects, *rows[i].toProject())
	}
	return projects, nil
}

// RecordPayment marks a project paid and stores the received amount and the
// processor's payment id.
func (s *DB) RecordPayment(ctx context.Context, id int64, amount float64, paymentID string) error {
	if !s.available("record payment") {
		return nil
	}

	res, err := s.db.ExecContext(ctx, qRecordPayment, amount, paymentID, id)
	if err != nil {
		return fmt.Errorf("record payment for project %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("record payment: project %d not found", id)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// updateBuilder maps the closed set of updatable columns to parameterized
// SET fragments. Column names only ever come from the literals in Update,
// never from caller input.
type updateBuilder struct {
	sets []string
	args []any
}

func (b *updateBuilder) set(column string, v any) {
	b.args = append(b.args, v)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

func (b *updateBuilder) setExpr(expr string) {
	b.sets = append(b.sets, expr)
}

func (b *updateBuilder) setString(column string, v *string) {
	if v != nil {
		b.set(column, *v)
	}
}

func (b *updateBuilder) setFloat(column string, v *float64) {
	if v != nil {
		b.set(column, *v)
	}
}

func (b *updateBuilder) setTime(column string, v *time.Time) {
	if v != nil {
		b.set(column, *v)
	}
}

func (b *updateBuilder) build(id int64) (string, []any) {
	b.setExpr("updated_at = NOW()")
	b.args = append(b.args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d",
		projectTable, strings.Join(b.sets, ", "), len(b.args))
	return query, b.args
}

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speakerbase/backoffice/internal/models"
)

// A disconnected store must degrade every operation to an empty result with
// a nil error, never a panic or failure.
func TestDisconnectedStoreDegrades(t *testing.T) {
	s := &DB{}
	ctx := context.Background()

	p, err := s.Create(ctx, models.CreateInput{ProjectName: "x"})
	assert.NoError(t, err)
	assert.Nil(t, p)

	p, err = s.GetByID(ctx, 1)
	assert.NoError(t, err)
	assert.Nil(t, p)

	p, err = s.Update(ctx, 1, models.UpdateInput{})
	assert.NoError(t, err)
	assert.Nil(t, p)

	for name, list := range map[string]func() ([]models.Project, error){
		"search":   func() ([]models.Project, error) { return s.Search(ctx, "acme") },
		"status":   func() ([]models.Project, error) { return s.ListByStatus(ctx, models.StatusPlanning) },
		"priority": func() ([]models.Project, error) { return s.ListByPriority(ctx, models.PriorityHigh) },
		"active":   func() ([]models.Project, error) { return s.ListActive(ctx) },
		"overdue":  func() ([]models.Project, error) { return s.ListOverdue(ctx) },
	} {
		projects, err := list()
		assert.NoError(t, err, name)
		assert.Empty(t, projects, name)
	}

	p, err = s.GrantPortalAccess(ctx, 1, time.Hour, nil)
	assert.NoError(t, err)
	assert.Nil(t, p)

	found, err := s.RevokePortalAccess(ctx, 1)
	assert.NoError(t, err)
	assert.False(t, found)

	p, err = s.GetByPortalToken(ctx, "token")
	assert.NoError(t, err)
	assert.Nil(t, p)

	assert.NoError(t, s.RecordPayment(ctx, 1, 100, "pi_123"))

	m, err := s.GetMetrics(ctx)
	assert.NoError(t, err)
	assert.Nil(t, m)

	assert.NoError(t, s.Close())
}

func TestUpdateBuilderParameterizesKnownColumns(t *testing.T) {
	b := &updateBuilder{}
	name := "Acme Kickoff"
	budget := 2500.0
	b.setString("project_name", &name)
	b.setFloat("budget", &budget)
	b.set("status", models.StatusConfirmed)
	b.setExpr("completed_at = NOW()")

	query, args := b.build(42)

	assert.Equal(t,
		"UPDATE projects SET project_name = $1, budget = $2, status = $3, completed_at = NOW(), updated_at = NOW() WHERE id = $4",
		query)
	require.Len(t, args, 4)
	assert.Equal(t, name, args[0])
	assert.Equal(t, budget, args[1])
	assert.Equal(t, models.StatusConfirmed, args[2])
	assert.Equal(t, int64(42), args[3])
}

func TestUpdateBuilderSkipsNilFields(t *testing.T) {
	b := &updateBuilder{}
	b.setString("project_name", nil)
	b.setFloat("budget", nil)
	b.setTime("deadline", nil)

	query, args := b.build(7)

	// Nothing supplied: only the touch timestamp is written.
	assert.Equal(t, "UPDATE projects SET updated_at = NOW() WHERE id = $1", query)
	require.Len(t, args, 1)
	assert.Equal(t, int64(7), args[0])
}

func TestProjectRowShapesLegacyFields(t *testing.T) {
	row := projectRow{
		ID:          9,
		ProjectName: "Acme Kickoff",
		Status:      models.StatusConfirmed,
		Priority:    models.PriorityHigh,
		// Pre-migration flat columns.
		EventDate:     "2025-01-01",
		EventLocation: "Old Town",
		VenueName:     "Old Hall",
		Details: models.ProjectDetails{
			Venue: &models.Venue{Name: "Convention Center"},
		},
	}

	p := row.toProject()

	// Nested venue wins; the other legacy fields fall back to the columns.
	assert.Equal(t, "Convention Center", p.VenueName)
	assert.Equal(t, "2025-01-01", p.EventDate)
	assert.Equal(t, "Old Town", p.EventLocation)
	assert.Nil(t, p.StartDate)
	assert.Nil(t, p.ActualRevenue)
}

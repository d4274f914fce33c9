// store/interface.go - Store interface for testability
package store

import (
	"context"
	"time"

	"github.com/speakerbase/backoffice/internal/models"
)

type Store interface {
	// Projects
	Create(ctx context.Context, in models.CreateInput) (*models.Project, error)
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	Update(ctx context.Context, id int64, in models.UpdateInput) (*models.Project, error)
	Search(ctx context.Context, term string) ([]models.Project, error)
	ListByStatus(ctx context.Context, status models.Status) ([]models.Project, error)
	ListByPriority(ctx context.Context, priority models.Priority) ([]models.Project, error)
	ListActive(ctx context.Context) ([]models.Project, error)
	ListOverdue(ctx context.Context) ([]models.Project, error)

	// Client portal
	GrantPortalAccess(ctx context.Context, id int64, ttl time.Duration, allowedFields []string) (*models.Project, error)
	RevokePortalAccess(ctx context.Context, id int64) (bool, error)
	GetByPortalToken(ctx context.Context, token string) (*models.Project, error)

	// Payments
	RecordPayment(ctx context.Context, id int64, amount float64, paymentID string) error

	// Dashboard
	GetMetrics(ctx context.Context) (*models.Metrics, error)
}

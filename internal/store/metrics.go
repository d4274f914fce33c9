// store/metrics.go - Dashboard metrics over the project book
package store

import (
	"context"
	"fmt"

	"github.com/speakerbase/backoffice/internal/models"
)

// GetMetrics summarizes the project book in one pass: totals, active and
// overdue counts, how many projects still miss critical info, and the
// booked/received money.
func (s *DB) GetMetrics(ctx context.Context) (*models.Metrics, error) {
	if !s.available("get metrics") {
		return nil, nil
	}

	m := &models.Metrics{}
	err := s.db.QueryRowContext(ctx, qMetricsBook).Scan(
		&m.TotalProjects,
		&m.ActiveProjects,
		&m.OverdueProjects,
		&m.MissingInfoProjects,
		&m.TotalBudget,
		&m.TotalActualRevenue,
		&m.AvgDetailsCompletion,
	)
	if err != nil {
		return nil, fmt.Errorf("get metrics: %w", err)
	}
	return m, nil
}

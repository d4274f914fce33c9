// store/portal.go - Client portal token operations
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/speakerbase/backoffice/internal/models"
)

// GrantPortalAccess issues a fresh portal token for a project, scoped to
// the given fields and valid for ttl. A new grant replaces any existing
// token. Returns nil when the project does not exist.
func (s *DB) GrantPortalAccess(ctx context.Context, id int64, ttl time.Duration, allowedFields []string) (*models.Project, error) {
	if !s.available("grant portal access") {
		return nil, nil
	}

	token := uuid.NewString()
	expires := time.Now().Add(ttl)

	res, err := s.db.ExecContext(ctx, qPortalGrant, token, expires, pq.StringArray(allowedFields), id)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("grant portal access: %w", ErrConflict)
		}
		return nil, fmt.Errorf("grant portal access for project %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, nil
	}

	return s.GetByID(ctx, id)
}

// RevokePortalAccess clears the portal token. The bool reports whether the
// project existed.
func (s *DB) RevokePortalAccess(ctx context.Context, id int64) (bool, error) {
	if !s.available("revoke portal access") {
		return false, nil
	}

	res, err := s.db.ExecContext(ctx, qPortalRevoke, id)
	if err != nil {
		return false, fmt.Errorf("revoke portal access for project %d: %w", id, err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// GetByPortalToken resolves an unexpired portal token to its project.
// Unknown and expired tokens both read as not-found.
func (s *DB) GetByPortalToken(ctx context.Context, token string) (*models.Project, error) {
	if !s.available("get project by portal token") {
		return nil, nil
	}
	return s.getOne(ctx, qProjectByPortalToken, token)
}

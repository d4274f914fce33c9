// store/queries.go - Centralized SQL queries for DRY
package store

const (
	projectTable = `projects`

	projectColumns = `id, project_name, client_name, client_email, client_phone, company,
		project_type, description, status, priority, start_date, end_date, deadline,
		budget, spent, completion_percentage, notes, tags, project_details,
		details_completion_percentage, has_critical_missing_info, stage_completion,
		actual_revenue, commission_percentage, commission_amount, payment_status, stripe_payment_id,
		event_date, event_location, speaker_fee, venue_name,
		portal_token, portal_expires_at, portal_allowed_fields,
		created_at, updated_at, completed_at`

	// Active and overdue listings exclude terminal statuses.
	terminalStatuses = `('completed', 'cancelled')`
)

const (
	qProjectByID = `SELECT ` + projectColumns + ` FROM ` + projectTable + ` WHERE id = $1`

	qProjectByPortalToken = `SELECT ` + projectColumns + ` FROM ` + projectTable +
		` WHERE portal_token = $1 AND portal_expires_at > NOW()`

	qProjectInsert = `INSERT INTO ` + projectTable + ` (
		project_name, client_name, client_email, client_phone, company,
		project_type, description, status, priority, start_date, end_date, deadline,
		budget, spent, notes, tags, project_details,
		details_completion_percentage, has_critical_missing_info,
		event_date, event_location, speaker_fee, venue_name
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
		$13, $14, $15, $16, $17, 0, TRUE, $18, $19, $20, $21
	) RETURNING id`

	qProjectSetDerived = `UPDATE ` + projectTable + `
		SET details_completion_percentage = $1, has_critical_missing_info = $2, updated_at = NOW()
		WHERE id = $3`

	qProjectsByStatus = `SELECT ` + projectColumns + ` FROM ` + projectTable +
		` WHERE status = $1 ORDER BY updated_at DESC`

	qProjectsByPriority = `SELECT ` + projectColumns + ` FROM ` + projectTable +
		` WHERE priority = $1 ORDER BY updated_at DESC`

	qProjectsActive = `SELECT ` + projectColumns + ` FROM ` + projectTable +
		` WHERE status NOT IN ` + terminalStatuses + `
		ORDER BY CASE priority
			WHEN 'urgent' THEN 0
			WHEN 'high' THEN 1
			WHEN 'medium' THEN 2
			ELSE 3
		END, updated_at DESC`

	qProjectsOverdue = `SELECT ` + projectColumns + ` FROM ` + projectTable +
		` WHERE deadline IS NOT NULL AND deadline < NOW()
		AND status NOT IN ` + terminalStatuses + `
		ORDER BY deadline ASC`

	qProjectsSearch = `SELECT ` + projectColumns + ` FROM ` + projectTable +
		` WHERE project_name ILIKE $1 OR client_name ILIKE $1 OR company ILIKE $1
		OR project_details::text ILIKE $1
		ORDER BY updated_at DESC`

	qPortalGrant = `UPDATE ` + projectTable + `
		SET portal_token = $1, portal_expires_at = $2, portal_allowed_fields = $3, updated_at = NOW()
		WHERE id = $4`

	qPortalRevoke = `UPDATE ` + projectTable + `
		SET portal_token = NULL, portal_expires_at = NULL, portal_allowed_fields = NULL, updated_at = NOW()
		WHERE id = $1`

	qRecordPayment = `UPDATE ` + projectTable + `
		SET payment_status = 'paid', actual_revenue = $1, stripe_payment_id = $2, updated_at = NOW()
		WHERE id = $3`
)

// Metrics queries
const (
	qMetricsBook = `SELECT
		COUNT(*),
		COUNT(*) FILTER (WHERE status NOT IN ` + terminalStatuses + `),
		COUNT(*) FILTER (WHERE deadline IS NOT NULL AND deadline < NOW() AND status NOT IN ` + terminalStatuses + `),
		COUNT(*) FILTER (WHERE has_critical_missing_info),
		COALESCE(SUM(budget), 0),
		COALESCE(SUM(actual_revenue), 0),
		COALESCE(AVG(details_completion_percentage), 0)
	FROM ` + projectTable
)

package jobs

import (
	"context"

	"agrishare-backend/internal/logger"
)

// AuditLedgerInvariants scans for drift between the ledger and the
// catalog: availability flags out of step with open transactions,
// double-booked resources, and stale aggregate ratings. The job only
// reads and reports; every legitimate write path goes through the
// ledger's own database transactions.
func (jr *JobRunner) AuditLedgerInvariants() {
	jr.runWithRecovery("AuditLedgerInvariants", func() {
		ctx := context.Background()
		jr.auditAvailability(ctx)
		jr.auditDoubleBookings(ctx)
		jr.auditRatings(ctx)
	})
}

// auditAvailability reports resources still marked available while an
// open transaction holds them. The reverse (unavailable without an open
// transaction) is a legitimate owner toggle, so it is not flagged.
func (jr *JobRunner) auditAvailability(ctx context.Context) {
	query := `
		SELECT r.id, count(t.id)
		FROM resources r
		JOIN transactions t ON t.resource_id = r.id AND t.status IN ('pending', 'active')
		WHERE r.is_available = true
		GROUP BY r.id`

	rows, err := jr.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("Availability audit query failed", "error", err)
		return
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var resourceID, open int32
		if err := rows.Scan(&resourceID, &open); err != nil {
			logger.Error("Failed to scan availability drift row", "error", err)
			continue
		}
		logger.Warn("Resource marked available while transactions are open",
			"resource_id", resourceID, "open_transactions", open)
		count++
	}
	if err := rows.Err(); err != nil {
		logger.Error("Error iterating availability audit", "error", err)
		return
	}
	if count == 0 {
		logger.Info("Availability audit clean")
	}
}

// auditDoubleBookings reports resources referenced by more than one open
// transaction.
func (jr *JobRunner) auditDoubleBookings(ctx context.Context) {
	query := `
		SELECT resource_id, count(*)
		FROM transactions
		WHERE status IN ('pending', 'active')
		GROUP BY resource_id
		HAVING count(*) > 1`

	rows, err := jr.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("Double-booking audit query failed", "error", err)
		return
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var resourceID, open int32
		if err := rows.Scan(&resourceID, &open); err != nil {
			logger.Error("Failed to scan double-booking row", "error", err)
			continue
		}
		logger.Warn("Resource has multiple open transactions", "resource_id", resourceID, "open_transactions", open)
		count++
	}
	if err := rows.Err(); err != nil {
		logger.Error("Error iterating double-booking audit", "error", err)
		return
	}
	if count == 0 {
		logger.Info("Double-booking audit clean")
	}
}

// auditRatings reports resources whose stored aggregate rating deviates
// from the mean of their completed transaction ratings.
func (jr *JobRunner) auditRatings(ctx context.Context) {
	query := `
		SELECT r.id, r.rating,
		       COALESCE((SELECT AVG(t.rating) FROM transactions t
		                 WHERE t.resource_id = r.id AND t.status = 'completed' AND t.rating IS NOT NULL), 0) AS expected
		FROM resources r
		WHERE ABS(r.rating - COALESCE((SELECT AVG(t.rating) FROM transactions t
		                               WHERE t.resource_id = r.id AND t.status = 'completed' AND t.rating IS NOT NULL), 0)) > 0.0001`

	rows, err := jr.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("Rating audit query failed", "error", err)
		return
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var resourceID int32
		var stored, expected float64
		if err := rows.Scan(&resourceID, &stored, &expected); err != nil {
			logger.Error("Failed to scan rating drift row", "error", err)
			continue
		}
		logger.Warn("Aggregate rating out of step with ledger",
			"resource_id", resourceID, "stored", stored, "expected", expected)
		count++
	}
	if err := rows.Err(); err != nil {
		logger.Error("Error iterating rating audit", "error", err)
		return
	}
	if count == 0 {
		logger.Info("Rating audit clean")
	}
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"agrishare-backend/internal/domain"
	"agrishare-backend/internal/repository"
)

type transactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

const transactionColumns = `id, resource_id, user_id, transaction_type, start_date, end_date, status, amount, rating, COALESCE(review, ''), created_on`

func scanTransaction(row interface{ Scan(...interface{}) error }, t *domain.Transaction) error {
	var endDate sql.NullTime
	var amount sql.NullFloat64
	var rating sql.NullInt32
	err := row.Scan(&t.ID, &t.ResourceID, &t.UserID, &t.Type, &t.StartDate, &endDate, &t.Status, &amount, &rating, &t.Review, &t.CreatedOn)
	if err != nil {
		return err
	}
	if endDate.Valid {
		t.EndDate = &endDate.Time
	}
	if amount.Valid {
		t.Amount = &amount.Float64
	}
	if rating.Valid {
		t.Rating = &rating.Int32
	}
	return nil
}

func (r *transactionRepository) CreateAndHoldResource(ctx context.Context, t *domain.Transaction) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// The conditional update takes the row lock that serializes concurrent
	// requests: the first committer flips the flag, every later one
	// matches zero rows. The NOT EXISTS clause additionally rejects the
	// booking if an open transaction exists while the flag has drifted.
	result, err := tx.ExecContext(ctx, `
		UPDATE resources SET is_available = false, updated_on = $2
		WHERE id = $1 AND is_available = true
		  AND NOT EXISTS (
			SELECT 1 FROM transactions
			WHERE resource_id = $1 AND status IN ('pending', 'active'))`,
		t.ResourceID, time.Now().UTC())
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrResourceUnavailable
	}

	query := `INSERT INTO transactions (resource_id, user_id, transaction_type, start_date, status, amount, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	t.CreatedOn = time.Now().UTC()
	var amount interface{}
	if t.Amount != nil {
		amount = *t.Amount
	}
	err = tx.QueryRowContext(ctx, query, t.ResourceID, t.UserID, t.Type, t.StartDate, t.Status, amount, t.CreatedOn).Scan(&t.ID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *transactionRepository) GetByID(ctx context.Context, id int32) (*domain.Transaction, error) {
	t := &domain.Transaction{}
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	err := scanTransaction(r.db.QueryRowContext(ctx, query, id), t)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *transactionRepository) Activate(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE transactions SET status = 'active' WHERE id = $1 AND status = 'pending'`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrInvalidTransition
	}
	return nil
}

func (r *transactionRepository) CancelAndReleaseResource(ctx context.Context, id int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var resourceID int32
	err = tx.QueryRowContext(ctx, `
		UPDATE transactions SET status = 'cancelled'
		WHERE id = $1 AND status IN ('pending', 'active')
		RETURNING resource_id`, id).Scan(&resourceID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrInvalidTransition
	}
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE resources SET is_available = true, updated_on = $2 WHERE id = $1`,
		resourceID, time.Now().UTC())
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *transactionRepository) CompleteAndReleaseResource(ctx context.Context, t *domain.Transaction) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var amount interface{}
	if t.Amount != nil {
		amount = *t.Amount
	}
	var rating interface{}
	if t.Rating != nil {
		rating = *t.Rating
	}

	var resourceID int32
	err = tx.QueryRowContext(ctx, `
		UPDATE transactions SET status = 'completed', end_date = $2, amount = $3, rating = $4, review = $5
		WHERE id = $1 AND status = 'active'
		RETURNING resource_id`,
		t.ID, t.EndDate, amount, rating, t.Review).Scan(&resourceID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrInvalidTransition
	}
	if err != nil {
		return err
	}
	t.ResourceID = resourceID
	t.Status = domain.TransactionStatusCompleted

	now := time.Now().UTC()
	if t.Rating != nil {
		// Recompute the aggregate from the ledger inside the same database
		// transaction; the AVG already sees the rating written above.
		_, err = tx.ExecContext(ctx, `
			UPDATE resources SET is_available = true, updated_on = $2,
			       rating = (SELECT COALESCE(AVG(rating), 0)
			                 FROM transactions
			                 WHERE resource_id = $1 AND status = 'completed' AND rating IS NOT NULL)
			WHERE id = $1`, resourceID, now)
	} else {
		_, err = tx.ExecContext(ctx,
			`UPDATE resources SET is_available = true, updated_on = $2 WHERE id = $1`, resourceID, now)
	}
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *transactionRepository) ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Transaction, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1`

	args := []interface{}{userID}
	argIdx := 2
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		if err := scanTransaction(rows, &t); err != nil {
			return nil, 0, err
		}
		txs = append(txs, t)
	}
	return txs, count, rows.Err()
}

func (r *transactionRepository) ListByResource(ctx context.Context, resourceID int32) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE resource_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, resourceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		if err := scanTransaction(rows, &t); err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"agrishare-backend/internal/domain"
	"agrishare-backend/internal/repository"

	"github.com/lib/pq"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, identity_token, email, name, COALESCE(phone, ''), COALESCE(location, ''), language_preference, created_on, updated_on`

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (identity_token, email, name, phone, location, language_preference, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	now := time.Now().UTC()
	u.CreatedOn = now
	u.UpdatedOn = now
	err := r.db.QueryRowContext(ctx, query, u.IdentityToken, u.Email, u.Name, u.Phone, u.Location, u.Language, u.CreatedOn, u.UpdatedOn).Scan(&u.ID)
	return mapUserConstraint(err)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.IdentityToken, &u.Email, &u.Name, &u.Phone, &u.Location, &u.Language, &u.CreatedOn, &u.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetByIdentityToken(ctx context.Context, token string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT ` + userColumns + ` FROM users WHERE identity_token = $1`
	err := r.db.QueryRowContext(ctx, query, token).Scan(&u.ID, &u.IdentityToken, &u.Email, &u.Name, &u.Phone, &u.Location, &u.Language, &u.CreatedOn, &u.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.IdentityToken, &u.Email, &u.Name, &u.Phone, &u.Location, &u.Language, &u.CreatedOn, &u.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET email=$1, name=$2, phone=$3, location=$4, language_preference=$5, updated_on=$6 WHERE id=$7`
	u.UpdatedOn = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, query, u.Email, u.Name, u.Phone, u.Location, u.Language, u.UpdatedOn, u.ID)
	if err != nil {
		return mapUserConstraint(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) DeleteCascade(ctx context.Context, id int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Lock the owned resource rows first. The booking path updates the
	// resource row before inserting its pending transaction, so the check
	// below cannot miss a concurrent booking of an owned resource.
	locked, err := tx.QueryContext(ctx, `SELECT id FROM resources WHERE owner_id = $1 FOR UPDATE`, id)
	if err != nil {
		return err
	}
	if err := drainRows(locked); err != nil {
		return err
	}

	var open bool
	err = tx.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM transactions t
			LEFT JOIN resources r ON t.resource_id = r.id
			WHERE (r.owner_id = $1 OR t.user_id = $1)
			  AND t.status IN ('pending', 'active'))`, id).Scan(&open)
	if err != nil {
		return err
	}
	if open {
		return domain.ErrHasActiveTransactions
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM resources WHERE owner_id = $1`, id); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}

	return tx.Commit()
}

// mapUserConstraint translates unique-violation errors from the driver
// into the matching domain error.
func mapUserConstraint(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		switch {
		case strings.Contains(pqErr.Constraint, "identity_token"):
			return domain.ErrDuplicateIdentity
		case strings.Contains(pqErr.Constraint, "email"):
			return domain.ErrDuplicateEmail
		}
	}
	return err
}

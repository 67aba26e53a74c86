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

type resourceRepository struct {
	db *sql.DB
}

func NewResourceRepository(db *sql.DB) repository.ResourceRepository {
	return &resourceRepository{db: db}
}

const resourceColumns = `id, owner_id, name, category, COALESCE(description, ''), price, listing_type, COALESCE(condition, ''), age_years, quality, COALESCE(image_url, ''), COALESCE(location, ''), is_available, rating, created_on, updated_on`

func scanResource(row interface{ Scan(...interface{}) error }, res *domain.Resource) error {
	return row.Scan(&res.ID, &res.OwnerID, &res.Name, &res.Category, &res.Description, &res.Price,
		&res.ListingType, &res.Condition, &res.AgeYears, &res.Quality, &res.ImageURL, &res.Location,
		&res.IsAvailable, &res.Rating, &res.CreatedOn, &res.UpdatedOn)
}

func (r *resourceRepository) Create(ctx context.Context, res *domain.Resource) error {
	query := `INSERT INTO resources (owner_id, name, category, description, price, listing_type, condition, age_years, quality, image_url, location, is_available, rating, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15) RETURNING id`
	now := time.Now().UTC()
	res.CreatedOn = now
	res.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query, res.OwnerID, res.Name, res.Category, res.Description, res.Price,
		res.ListingType, res.Condition, res.AgeYears, res.Quality, res.ImageURL, res.Location,
		res.IsAvailable, res.Rating, res.CreatedOn, res.UpdatedOn).Scan(&res.ID)
}

func (r *resourceRepository) GetByID(ctx context.Context, id int32) (*domain.Resource, error) {
	res := &domain.Resource{}
	query := `SELECT ` + resourceColumns + ` FROM resources WHERE id = $1`
	err := scanResource(r.db.QueryRowContext(ctx, query, id), res)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrResourceNotFound
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *resourceRepository) Update(ctx context.Context, res *domain.Resource) error {
	query := `UPDATE resources SET name=$1, category=$2, description=$3, price=$4, listing_type=$5, condition=$6, age_years=$7, quality=$8, image_url=$9, location=$10, is_available=$11, updated_on=$12 WHERE id=$13`
	res.UpdatedOn = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, query, res.Name, res.Category, res.Description, res.Price,
		res.ListingType, res.Condition, res.AgeYears, res.Quality, res.ImageURL, res.Location,
		res.IsAvailable, res.UpdatedOn, res.ID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrResourceNotFound
	}
	return nil
}

func (r *resourceRepository) Delete(ctx context.Context, id int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Lock the resource row first. The booking path updates this row
	// before inserting its pending transaction, so once the lock is held
	// the check below cannot miss a concurrent booking.
	var locked int32
	err = tx.QueryRowContext(ctx, `SELECT id FROM resources WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrResourceNotFound
	}
	if err != nil {
		return err
	}

	var open bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM transactions WHERE resource_id = $1 AND status IN ('pending', 'active'))`,
		id).Scan(&open)
	if err != nil {
		return err
	}
	if open {
		return domain.ErrHasActiveTransactions
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM resources WHERE id = $1`, id); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *resourceRepository) ListByOwner(ctx context.Context, ownerID int32, page, pageSize int32) ([]domain.Resource, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM resources WHERE owner_id = $1`, ownerID).Scan(&count)
	if err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + resourceColumns + ` FROM resources WHERE owner_id = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, ownerID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var resources []domain.Resource
	for rows.Next() {
		var res domain.Resource
		if err := scanResource(rows, &res); err != nil {
			return nil, 0, err
		}
		resources = append(resources, res)
	}
	return resources, count, rows.Err()
}

func (r *resourceRepository) ListAvailable(ctx context.Context, category, listingType string, page, pageSize int32) ([]domain.Resource, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + resourceColumns + ` FROM resources WHERE is_available = true`

	args := []interface{}{}
	argIdx := 1
	if category != "" {
		query += fmt.Sprintf(" AND category = $%d", argIdx)
		args = append(args, category)
		argIdx++
	}
	if listingType != "" {
		query += fmt.Sprintf(" AND listing_type = $%d", argIdx)
		args = append(args, listingType)
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

	var resources []domain.Resource
	for rows.Next() {
		var res domain.Resource
		if err := scanResource(rows, &res); err != nil {
			return nil, 0, err
		}
		resources = append(resources, res)
	}
	return resources, count, rows.Err()
}

func (r *resourceRepository) HasOpenTransaction(ctx context.Context, resourceID int32) (bool, error) {
	var open bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM transactions WHERE resource_id = $1 AND status IN ('pending', 'active'))`,
		resourceID).Scan(&open)
	return open, err
}

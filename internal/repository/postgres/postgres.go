package postgres

import (
	"database/sql"

	"agrishare-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.ResourceRepository
	repository.TransactionRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		UserRepository:        NewUserRepository(db),
		ResourceRepository:    NewResourceRepository(db),
		TransactionRepository: NewTransactionRepository(db),
	}
}

// drainRows consumes and closes the result of a row-locking query.
func drainRows(rows *sql.Rows) error {
	for rows.Next() {
	}
	err := rows.Err()
	rows.Close()
	return err
}

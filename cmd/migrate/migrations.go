package main

import "database/sql"

// Transactions carry no foreign key to resources on purpose: settled
// transactions are permanent history and must survive the cascading
// removal of a resource, while open transactions block that removal at
// the application layer.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id                  SERIAL PRIMARY KEY,
		identity_token      VARCHAR(128) UNIQUE NOT NULL,
		email               VARCHAR(120) UNIQUE NOT NULL,
		name                VARCHAR(100) NOT NULL,
		phone               VARCHAR(20),
		location            VARCHAR(200),
		language_preference VARCHAR(10) NOT NULL DEFAULT 'en',
		created_on          TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_on          TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS resources (
		id           SERIAL PRIMARY KEY,
		owner_id     INTEGER NOT NULL REFERENCES users(id),
		name         VARCHAR(200) NOT NULL,
		category     VARCHAR(50) NOT NULL,
		description  TEXT,
		price        DOUBLE PRECISION NOT NULL CHECK (price >= 0),
		listing_type VARCHAR(20) NOT NULL CHECK (listing_type IN ('rent', 'borrow', 'sell')),
		condition    VARCHAR(20),
		age_years    INTEGER NOT NULL DEFAULT 0 CHECK (age_years >= 0),
		quality      INTEGER NOT NULL DEFAULT 5 CHECK (quality BETWEEN 1 AND 10),
		image_url    VARCHAR(500),
		location     VARCHAR(200),
		is_available BOOLEAN NOT NULL DEFAULT true,
		rating       DOUBLE PRECISION NOT NULL DEFAULT 0.0,
		created_on   TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_on   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS transactions (
		id               SERIAL PRIMARY KEY,
		resource_id      INTEGER NOT NULL,
		user_id          INTEGER NOT NULL,
		transaction_type VARCHAR(20) NOT NULL CHECK (transaction_type IN ('rent', 'borrow', 'buy')),
		start_date       TIMESTAMPTZ NOT NULL DEFAULT now(),
		end_date         TIMESTAMPTZ,
		status           VARCHAR(20) NOT NULL DEFAULT 'pending'
		                 CHECK (status IN ('pending', 'active', 'completed', 'cancelled')),
		amount           DOUBLE PRECISION,
		rating           INTEGER CHECK (rating BETWEEN 1 AND 5),
		review           TEXT,
		created_on       TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_resources_owner ON resources(owner_id)`,
	`CREATE INDEX IF NOT EXISTS idx_resources_available ON resources(is_available, category)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_resource ON transactions(resource_id)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_user ON transactions(user_id)`,

	// At most one open transaction per resource, enforced by the database
	// as well as by the booking path.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_transactions_one_open_per_resource
		ON transactions(resource_id) WHERE status IN ('pending', 'active')`,
}

// runMigrations executes all schema statements
func runMigrations(db *sql.DB) error {
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

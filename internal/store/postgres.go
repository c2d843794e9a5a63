package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the repositories need. Satisfied by
// *pgxpool.Pool in production and by pgxmock in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore handles user and task CRUD against PostgreSQL.
type PostgresStore struct {
	db DB
}

func NewPostgresStore(db DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the users and tasks tables if they don't exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id         BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			full_name  VARCHAR(100) NOT NULL,
			email      VARCHAR(120) UNIQUE NOT NULL,
			username   VARCHAR(80)  UNIQUE NOT NULL,
			password   VARCHAR(200) NOT NULL,
			created_at TIMESTAMPTZ  DEFAULT NOW()
		)
	`)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS tasks (
			id        BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			content   VARCHAR(200) NOT NULL,
			completed BOOLEAN NOT NULL DEFAULT FALSE,
			priority  INTEGER NOT NULL DEFAULT 1,
			due_date  DATE,
			due_time  TIME,
			user_id   BIGINT NOT NULL REFERENCES users(id)
		)
	`)
	return err
}

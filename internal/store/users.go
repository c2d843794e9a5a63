package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ayush/donepath/internal/common"
	"github.com/ayush/donepath/internal/models"
)

func (s *PostgresStore) CreateUser(ctx context.Context, fullName, email, username, hashedPassword string) (*models.User, error) {
	var u models.User
	err := s.db.QueryRow(ctx,
		`INSERT INTO users (full_name, email, username, password)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, full_name, email, username, created_at`,
		fullName, email, username, hashedPassword,
	).Scan(&u.ID, &u.FullName, &u.Email, &u.Username, &u.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &u, nil
}

func (s *PostgresStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getUser(ctx,
		`SELECT id, full_name, email, username, password, created_at FROM users WHERE username = $1`,
		username)
}

func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUser(ctx,
		`SELECT id, full_name, email, username, password, created_at FROM users WHERE email = $1`,
		email)
}

func (s *PostgresStore) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.getUser(ctx,
		`SELECT id, full_name, email, username, password, created_at FROM users WHERE id = $1`,
		id)
}

func (s *PostgresStore) getUser(ctx context.Context, query string, arg any) (*models.User, error) {
	var u models.User
	err := s.db.QueryRow(ctx, query, arg).
		Scan(&u.ID, &u.FullName, &u.Email, &u.Username, &u.Password, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ayush/donepath/internal/common"
	"github.com/ayush/donepath/internal/models"
)

// due_time is a TIME column; it crosses the Go boundary as "HH:MM" text so
// the model stays free of driver-specific types.
const taskColumns = `id, content, completed, priority, due_date, to_char(due_time, 'HH24:MI'), user_id`

func (s *PostgresStore) CreateTask(ctx context.Context, t *models.Task) (*models.Task, error) {
	err := s.db.QueryRow(ctx,
		`INSERT INTO tasks (content, completed, priority, due_date, due_time, user_id)
		 VALUES ($1, $2, $3, $4, $5::time, $6)
		 RETURNING id`,
		t.Content, t.Completed, t.Priority, t.DueDate, t.DueTime, t.UserID,
	).Scan(&t.ID)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return t, nil
}

func (s *PostgresStore) GetTaskByID(ctx context.Context, id int64) (*models.Task, error) {
	var t models.Task
	err := s.db.QueryRow(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id,
	).Scan(&t.ID, &t.Content, &t.Completed, &t.Priority, &t.DueDate, &t.DueTime, &t.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return &t, nil
}

func (s *PostgresStore) ListTasksByUser(ctx context.Context, userID int64) ([]models.Task, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Content, &t.Completed, &t.Priority, &t.DueDate, &t.DueTime, &t.UserID); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTask overwrites content, due date/time, and priority of an existing task.
func (s *PostgresStore) UpdateTask(ctx context.Context, t *models.Task) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE tasks SET content = $1, due_date = $2, due_time = $3::time, priority = $4 WHERE id = $5`,
		t.Content, t.DueDate, t.DueTime, t.Priority, t.ID)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) SetTaskCompleted(ctx context.Context, id int64, completed bool) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE tasks SET completed = $1 WHERE id = $2`, completed, id)
	if err != nil {
		return fmt.Errorf("set task completed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) DeleteTask(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return common.ErrNotFound
	}
	return nil
}

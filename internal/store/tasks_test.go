package store

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayush/donepath/internal/common"
	"github.com/ayush/donepath/internal/models"
)

func TestCreateTask(t *testing.T) {
	s, mock := newMockStore(t)

	due := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tm := "09:30"
	task := &models.Task{Content: "pay bills", Priority: 2, DueDate: &due, DueTime: &tm, UserID: 42}

	mock.ExpectQuery(`INSERT INTO tasks`).
		WithArgs("pay bills", false, 2, &due, &tm, int64(42)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))

	created, err := s.CreateTask(context.Background(), task)
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTaskByID(t *testing.T) {
	s, mock := newMockStore(t)

	due := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT .+ FROM tasks WHERE id`).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "content", "completed", "priority", "due_date", "due_time", "user_id"}).
			AddRow(int64(7), "pay bills", false, 2, &due, (*string)(nil), int64(42)))

	task, err := s.GetTaskByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "pay bills", task.Content)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, due, *task.DueDate)
	assert.Nil(t, task.DueTime)
	assert.Equal(t, int64(42), task.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTaskByIDNotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT .+ FROM tasks WHERE id`).
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)

	_, err := s.GetTaskByID(context.Background(), 99)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTasksByUser(t *testing.T) {
	s, mock := newMockStore(t)

	due := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT .+ FROM tasks WHERE user_id`).
		WithArgs(int64(42)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "content", "completed", "priority", "due_date", "due_time", "user_id"}).
			AddRow(int64(1), "pay bills", false, 2, &due, (*string)(nil), int64(42)).
			AddRow(int64(2), "walk dog", true, 1, (*time.Time)(nil), (*string)(nil), int64(42)))

	tasks, err := s.ListTasksByUser(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "pay bills", tasks[0].Content)
	assert.Nil(t, tasks[1].DueDate)
	assert.True(t, tasks[1].Completed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTask(t *testing.T) {
	s, mock := newMockStore(t)

	task := &models.Task{ID: 7, Content: "new", Priority: 5, UserID: 42}
	mock.ExpectExec(`UPDATE tasks SET content`).
		WithArgs("new", (*time.Time)(nil), (*string)(nil), 5, int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, s.UpdateTask(context.Background(), task))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetTaskCompleted(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(`UPDATE tasks SET completed`).
		WithArgs(true, int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, s.SetTaskCompleted(context.Background(), 7, true))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTask(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(`DELETE FROM tasks`).
		WithArgs(int64(7)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, s.DeleteTask(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTaskNotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(`DELETE FROM tasks`).
		WithArgs(int64(99)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := s.DeleteTask(context.Background(), 99)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

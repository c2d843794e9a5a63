package models

import "time"

// Task is a single to-do item owned by exactly one user.
//
// DueDate carries a calendar date only (midnight UTC); DueTime is the
// optional time of day as "HH:MM". Both are nil when unset.
type Task struct {
	ID        int64      `json:"id"`
	Content   string     `json:"content"`
	Completed bool       `json:"completed"`
	Priority  int        `json:"priority"`
	DueDate   *time.Time `json:"-"`
	DueTime   *string    `json:"due_time"`
	UserID    int64      `json:"user_id"`
}

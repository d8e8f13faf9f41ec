package models

import (
	"database/sql"
	"time"
)

// Task is a single to-do item. UserID is NULL for tasks created through the
// public v1 surface and set to the owner on the authenticated v2 surface.
type Task struct {
	ID          string
	UserID      sql.NullString
	Name        string
	IsCompleted bool
	CreatedAt   time.Time
}

// OwnedBy reports whether the task belongs to the given user.
func (t *Task) OwnedBy(userID string) bool {
	return t.UserID.Valid && t.UserID.String == userID
}

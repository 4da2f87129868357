package models

import (
	"time"

	"github.com/google/uuid"
)

// TaskState is the board column a task sits in.
type TaskState string

const (
	TaskStatePlanning   TaskState = "planning"
	TaskStateInProgress TaskState = "in_progress"
	TaskStateInQA       TaskState = "in_qa"
	TaskStateDone       TaskState = "done"
)

// Valid reports whether s is one of the allowed task states.
func (s TaskState) Valid() bool {
	switch s {
	case TaskStatePlanning, TaskStateInProgress, TaskStateInQA, TaskStateDone:
		return true
	}
	return false
}

// MaxTaskTitleLen bounds the task title.
const MaxTaskTitleLen = 25

// Task is a standalone board item, independent of the issue tracker
// entities. Points is a story-point estimate.
type Task struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title     string    `json:"title" db:"title" gorm:"type:varchar(25);not null"`
	State     TaskState `json:"state" db:"state" gorm:"type:varchar(20);not null;default:'planning'"`
	Priority  int       `json:"priority" db:"priority" gorm:"type:integer;not null;default:0"`
	Points    int       `json:"points" db:"points" gorm:"type:integer;not null;default:0"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at" gorm:"not null"`
}

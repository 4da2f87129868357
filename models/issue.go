package models

import (
	"time"

	"github.com/google/uuid"
)

// IssueState is the lifecycle state of an issue.
type IssueState string

const (
	IssueStateOpen   IssueState = "open"
	IssueStateClosed IssueState = "closed"
)

// Valid reports whether s is one of the allowed issue states.
func (s IssueState) Valid() bool {
	switch s {
	case IssueStateOpen, IssueStateClosed:
		return true
	}
	return false
}

// Issue priority levels. Lower is more urgent; new issues default to normal.
const (
	IssuePriorityHigh   = 1
	IssuePriorityNormal = 2
	IssuePriorityLow    = 3
)

// ValidIssuePriority reports whether p is one of the defined priority levels.
func ValidIssuePriority(p int) bool {
	return p >= IssuePriorityHigh && p <= IssuePriorityLow
}

// MaxIssueTitleLen bounds the issue title.
const MaxIssueTitleLen = 100

// Issue is a unit of tracked work inside a project. It cannot outlive its
// project; its assignee link is cleared when the assignee account is removed.
type Issue struct {
	ID          uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	ProjectID   uuid.UUID  `json:"project_id" db:"project_id" gorm:"type:uuid;not null;index:idx_issue_project_id;constraint:OnDelete:CASCADE"`
	Title       string     `json:"title" db:"title" gorm:"type:varchar(100);not null"`
	Description string     `json:"description" db:"description" gorm:"type:text;not null;default:''"`
	CreatedByID uuid.UUID  `json:"created_by" db:"created_by" gorm:"column:created_by;type:uuid;not null;index:idx_issue_created_by"`
	AssigneeID  *uuid.UUID `json:"assignee,omitempty" db:"assignee" gorm:"column:assignee;type:uuid;index:idx_issue_assignee;constraint:OnDelete:SET NULL"`
	State       IssueState `json:"state" db:"state" gorm:"type:varchar(20);not null;default:'open'"`
	Priority    int        `json:"priority" db:"priority" gorm:"type:integer;not null;default:2"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at" gorm:"not null"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at" gorm:"not null"`

	Project  *Project  `json:"-" gorm:"foreignKey:ProjectID;references:ID"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:IssueID;references:ID;constraint:OnDelete:CASCADE"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a note left on an issue. Comments are removed together with
// their issue.
type Comment struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	IssueID   uuid.UUID `json:"issue_id" db:"issue_id" gorm:"type:uuid;not null;index:idx_comment_issue_id;constraint:OnDelete:CASCADE"`
	AuthorID  uuid.UUID `json:"author_id" db:"author_id" gorm:"type:uuid;not null;index:idx_comment_author_id"`
	Body      string    `json:"body" db:"body" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"not null"`

	Issue *Issue `json:"-" gorm:"foreignKey:IssueID;references:ID"`
}

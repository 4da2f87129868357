package models

import (
	"time"

	"github.com/google/uuid"
)

// MaxProjectNameLen bounds the project name.
const MaxProjectNameLen = 100

// Project groups issues under a single owner.
type Project struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	OwnerID     uuid.UUID `json:"owner_id" db:"owner_id" gorm:"type:uuid;not null;index:idx_project_owner_id;constraint:OnDelete:CASCADE"`
	Name        string    `json:"name" db:"name" gorm:"type:varchar(100);not null"`
	Description string    `json:"description" db:"description" gorm:"type:text;not null;default:''"`
	CreatedAt   time.Time `json:"created_at" db:"created_at" gorm:"not null"`

	Owner  *User   `json:"owner,omitempty" gorm:"foreignKey:OwnerID;references:ID"`
	Issues []Issue `json:"issues,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}

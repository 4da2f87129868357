package models

import "github.com/google/uuid"

// UserProfile holds the public-facing extras for a user. Each user has at
// most one profile, enforced with a unique index on user_id.
type UserProfile struct {
	ID     uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	UserID uuid.UUID `json:"user_id" db:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_profile_user_id"`
	Avatar string    `json:"avatar" db:"avatar" gorm:"type:text;not null;default:''"`
	Bio    string    `json:"bio" db:"bio" gorm:"type:text;not null;default:''"`
}

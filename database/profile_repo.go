package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tracker/models"
)

type ProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db}
}

// FindByUserID returns the profile attached to a user, if any
func (r *ProfileRepo) FindByUserID(userID uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert creates the user's profile or updates the existing one. A user
// never ends up with more than one profile row.
func (r *ProfileRepo) Upsert(profile *models.UserProfile) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.UserProfile
		err := tx.First(&existing, "user_id = ?", profile.UserID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if profile.ID == uuid.Nil {
				profile.ID = uuid.New()
			}
			return tx.Create(profile).Error
		}
		if err != nil {
			return err
		}

		profile.ID = existing.ID
		return tx.Save(profile).Error
	})
}

// Delete removes the profile attached to a user
func (r *ProfileRepo) Delete(userID uuid.UUID) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.UserProfile{}).Error
}

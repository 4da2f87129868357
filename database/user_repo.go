package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tracker/models"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db}
}

// FindAll returns all users with their profiles preloaded
func (r *UserRepo) FindAll() ([]*models.User, error) {
	var users []*models.User
	err := r.db.Preload("Profile").Order("username").Find(&users).Error
	return users, err
}

// FindByID returns a user by its ID with the profile preloaded
func (r *UserRepo) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Profile").First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername returns a user by username
func (r *UserRepo) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Profile").First(&user, "username = ?", username).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Add inserts a new user into the database
func (r *UserRepo) Add(user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	return r.db.Create(user).Error
}

// Update updates an existing user in the database
func (r *UserRepo) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// Delete removes a user and everything hanging off it. Issues assigned to
// the user survive with a cleared assignee; owned projects, authored
// comments, and the profile go with the account.
func (r *UserRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Issue{}).
			Where("assignee = ?", id).
			Update("assignee", nil).Error; err != nil {
			return err
		}

		var projectIDs []uuid.UUID
		if err := tx.Model(&models.Project{}).
			Where("owner_id = ?", id).
			Pluck("id", &projectIDs).Error; err != nil {
			return err
		}
		for _, projectID := range projectIDs {
			if err := deleteProjectTx(tx, projectID); err != nil {
				return err
			}
		}

		var issueIDs []uuid.UUID
		if err := tx.Model(&models.Issue{}).
			Where("created_by = ?", id).
			Pluck("id", &issueIDs).Error; err != nil {
			return err
		}
		for _, issueID := range issueIDs {
			if err := deleteIssueTx(tx, issueID); err != nil {
				return err
			}
		}

		if err := tx.Where("author_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.UserProfile{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, "id = ?", id).Error
	})
}

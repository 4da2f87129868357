package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tracker/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns all projects from the database
func (r *ProjectRepo) FindAll() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Order("created_at").Find(&projects).Error
	return projects, err
}

// FindByOwner returns all projects owned by a user
func (r *ProjectRepo) FindByOwner(ownerID uuid.UUID) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at").Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	return r.db.Create(project).Error
}

// Update updates an existing project in the database
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project together with its issues and their comments
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return deleteProjectTx(tx, id)
	})
}

// deleteProjectTx removes a project and cascades to issues and comments
// inside the caller's transaction.
func deleteProjectTx(tx *gorm.DB, id uuid.UUID) error {
	var issueIDs []uuid.UUID
	if err := tx.Model(&models.Issue{}).
		Where("project_id = ?", id).
		Pluck("id", &issueIDs).Error; err != nil {
		return err
	}
	if len(issueIDs) > 0 {
		if err := tx.Where("issue_id IN ?", issueIDs).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.Issue{}).Error; err != nil {
			return err
		}
	}
	return tx.Delete(&models.Project{}, "id = ?", id).Error
}

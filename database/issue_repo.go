package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tracker/models"
)

type IssueRepo struct {
	db *gorm.DB
}

func NewIssueRepo(db *gorm.DB) *IssueRepo {
	return &IssueRepo{db}
}

// IssueFilter narrows FindByProject results. Zero values mean "no filter".
type IssueFilter struct {
	State    models.IssueState
	Assignee *uuid.UUID
}

// FindByProject returns the issues of a project, optionally filtered by
// state and assignee
func (r *IssueRepo) FindByProject(projectID uuid.UUID, filter IssueFilter) ([]*models.Issue, error) {
	query := r.db.Where("project_id = ?", projectID)
	if filter.State != "" {
		query = query.Where("state = ?", filter.State)
	}
	if filter.Assignee != nil {
		query = query.Where("assignee = ?", *filter.Assignee)
	}

	var issues []*models.Issue
	err := query.Order("created_at").Find(&issues).Error
	return issues, err
}

// FindByID returns an issue by its ID
func (r *IssueRepo) FindByID(id uuid.UUID) (*models.Issue, error) {
	var issue models.Issue
	err := r.db.First(&issue, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &issue, nil
}

// Add inserts a new issue into the database
func (r *IssueRepo) Add(issue *models.Issue) error {
	if issue.ID == uuid.Nil {
		issue.ID = uuid.New()
	}
	return r.db.Create(issue).Error
}

// Update updates an existing issue in the database
func (r *IssueRepo) Update(issue *models.Issue) error {
	return r.db.Save(issue).Error
}

// Delete removes an issue and its comments
func (r *IssueRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return deleteIssueTx(tx, id)
	})
}

// deleteIssueTx removes an issue and its comments inside the caller's
// transaction.
func deleteIssueTx(tx *gorm.DB, id uuid.UUID) error {
	if err := tx.Where("issue_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Issue{}, "id = ?", id).Error
}

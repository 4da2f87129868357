package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tracker/models"
)

type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db}
}

// FindByIssue returns the comments on an issue, oldest first
func (r *CommentRepo) FindByIssue(issueID uuid.UUID) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.Where("issue_id = ?", issueID).Order("created_at").Find(&comments).Error
	return comments, err
}

// FindByID returns a comment by its ID
func (r *CommentRepo) FindByID(id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.First(&comment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Add inserts a new comment into the database
func (r *CommentRepo) Add(comment *models.Comment) error {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	return r.db.Create(comment).Error
}

// Delete removes a comment from the database by id
func (r *CommentRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Comment{}, "id = ?", id).Error
}

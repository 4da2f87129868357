package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tracker/models"
)

type TaskRepo struct {
	db *gorm.DB
}

func NewTaskRepo(db *gorm.DB) *TaskRepo {
	return &TaskRepo{db}
}

// FindAll returns all tasks, optionally restricted to one board state
func (r *TaskRepo) FindAll(state models.TaskState) ([]*models.Task, error) {
	query := r.db.Order("priority desc, created_at")
	if state != "" {
		query = query.Where("state = ?", state)
	}

	var tasks []*models.Task
	err := query.Find(&tasks).Error
	return tasks, err
}

// FindByID returns a task by its ID
func (r *TaskRepo) FindByID(id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Add inserts a new task into the database
func (r *TaskRepo) Add(task *models.Task) error {
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	return r.db.Create(task).Error
}

// Update updates an existing task in the database
func (r *TaskRepo) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// Delete removes a task from the database by id
func (r *TaskRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Task{}, "id = ?", id).Error
}

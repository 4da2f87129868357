package database

import (
	"gorm.io/gorm"

	"tracker/models"
)

type Database struct {
	userRepo    *UserRepo
	profileRepo *ProfileRepo
	projectRepo *ProjectRepo
	issueRepo   *IssueRepo
	commentRepo *CommentRepo
	taskRepo    *TaskRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		userRepo:    NewUserRepo(db),
		profileRepo: NewProfileRepo(db),
		projectRepo: NewProjectRepo(db),
		issueRepo:   NewIssueRepo(db),
		commentRepo: NewCommentRepo(db),
		taskRepo:    NewTaskRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) ProfileRepo() *ProfileRepo {
	return d.profileRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) IssueRepo() *IssueRepo {
	return d.issueRepo
}

func (d Database) CommentRepo() *CommentRepo {
	return d.commentRepo
}

func (d Database) TaskRepo() *TaskRepo {
	return d.taskRepo
}

// Migrate creates or updates the schema for every tracked entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Project{},
		&models.Issue{},
		&models.Comment{},
		&models.Task{},
	)
}

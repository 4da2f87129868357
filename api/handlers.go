package api

import (
	"tracker/auth"
	"tracker/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, issuer auth.TokenIssuer, tokens auth.TokenStore) *routeHandlers {
	return &routeHandlers{
		userHandler:    newUserHandler(db.UserRepo(), db.ProfileRepo(), issuer, tokens),
		projectHandler: newProjectHandler(db.ProjectRepo()),
		issueHandler:   newIssueHandler(db.IssueRepo(), db.ProjectRepo(), db.UserRepo()),
		commentHandler: newCommentHandler(db.CommentRepo(), db.IssueRepo()),
		taskHandler:    newTaskHandler(db.TaskRepo()),
	}
}

package api

import (
	"github.com/google/uuid"

	"tracker/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	userHandler    userHandler
	projectHandler projectHandler
	issueHandler   issueHandler
	commentHandler commentHandler
	taskHandler    taskHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
	Cause   string `json:"cause,omitempty"`
}

// UserProfileResponse is the serialized profile: exactly avatar and bio.
type UserProfileResponse struct {
	Avatar string `json:"avatar"`
	Bio    string `json:"bio"`
}

// UserResponse is the serialized user. Email is only present when the
// requester is allowed to see it (the user themselves).
type UserResponse struct {
	ID       uuid.UUID            `json:"id"`
	Username string               `json:"username"`
	Email    string               `json:"email,omitempty"`
	Profile  *UserProfileResponse `json:"profile"`
}

func newUserProfileResponse(profile *models.UserProfile) *UserProfileResponse {
	if profile == nil {
		return nil
	}
	return &UserProfileResponse{
		Avatar: profile.Avatar,
		Bio:    profile.Bio,
	}
}

func newUserResponse(user *models.User, includeEmail bool) UserResponse {
	response := UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Profile:  newUserProfileResponse(user.Profile),
	}
	if includeEmail {
		response.Email = user.Email
	}
	return response
}

// UserCollection represents multiple serialized users
type UserCollection struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}

// LoginResponse carries the minted token and the logged-in user
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ProjectCollection represents multiple projects
type ProjectCollection struct {
	Projects []*models.Project `json:"projects"`
	Total    int               `json:"total"`
}

// IssueCollection represents multiple issues
type IssueCollection struct {
	Issues []*models.Issue `json:"issues"`
	Total  int             `json:"total"`
}

// CommentCollection represents multiple comments
type CommentCollection struct {
	Comments []*models.Comment `json:"comments"`
	Total    int               `json:"total"`
}

// TaskCollection represents multiple tasks
type TaskCollection struct {
	Tasks []*models.Task `json:"tasks"`
	Total int            `json:"total"`
}

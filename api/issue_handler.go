package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tracker/database"
	"tracker/errs"
	"tracker/models"
)

type issueHandler struct {
	responder   Responder
	logger      zerolog.Logger
	issueRepo   *database.IssueRepo
	projectRepo *database.ProjectRepo
	userRepo    *database.UserRepo
}

func newIssueHandler(issueRepo *database.IssueRepo, projectRepo *database.ProjectRepo, userRepo *database.UserRepo) issueHandler {
	logger := log.With().Str("handlerName", "issueHandler").Logger()

	return issueHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		issueRepo:   issueRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

type issueRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Assignee    *string `json:"assignee"`
	State       *string `json:"state"`
	Priority    *int    `json:"priority"`
}

// resolveAssignee turns the request's assignee field into a user reference.
// An empty string clears the assignment.
func (h issueHandler) resolveAssignee(raw string) (*uuid.UUID, *errs.ApiErr) {
	if raw == "" {
		return nil, nil
	}
	assigneeID, err := uuid.Parse(raw)
	if err != nil {
		return nil, errs.NewValidationError("assignee", "assignee must be a user ID")
	}
	if _, err := h.userRepo.FindByID(assigneeID); err != nil {
		return nil, errs.NewValidationError("assignee", "assignee does not exist")
	}
	return &assigneeID, nil
}

// getProjectIssues lists a project's issues, optionally filtered
// @Summary Get project issues
// @Description Retrieves the issues of a project, filterable by state and assignee
// @Tags Issues
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Param state query string false "Filter by state (open/closed)"
// @Param assignee query string false "Filter by assignee user ID"
// @Success 200 {object} IssueCollection "List of issues"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /project/{projectID}/issues [get]
func (h issueHandler) getProjectIssues() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, apiErr := parseUUIDParam(r, "projectID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		if _, err := h.projectRepo.FindByID(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		var filter database.IssueFilter
		if state := r.URL.Query().Get("state"); state != "" {
			if !models.IssueState(state).Valid() {
				h.responder.WriteError(w, errs.NewValidationError("state", "state must be open or closed"))
				return
			}
			filter.State = models.IssueState(state)
		}
		if assignee := r.URL.Query().Get("assignee"); assignee != "" {
			assigneeID, err := uuid.Parse(assignee)
			if err != nil {
				h.responder.WriteError(w, errs.NewValidationError("assignee", "assignee must be a user ID"))
				return
			}
			filter.Assignee = &assigneeID
		}

		issues, err := h.issueRepo.FindByProject(projectID, filter)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "issues", err))
			return
		}

		if issues == nil {
			issues = []*models.Issue{}
		}
		h.responder.WriteJSON(w, IssueCollection{
			Issues: issues,
			Total:  len(issues),
		})
	}
}

// createIssue files a new issue in a project
// @Summary Create issue
// @Description Creates a new issue inside a project, reported by the authenticated user
// @Tags Issues
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Param issue body issueRequest true "Issue data"
// @Success 201 {object} models.Issue "Created issue"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid issue data"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /project/{projectID}/issue [post]
func (h issueHandler) createIssue() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		projectID, apiErr := parseUUIDParam(r, "projectID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		if _, err := h.projectRepo.FindByID(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		var req issueRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode issue request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Title == nil || *req.Title == "" {
			h.responder.WriteError(w, errs.NewValidationError("title", "title is required"))
			return
		}
		if len(*req.Title) > models.MaxIssueTitleLen {
			h.responder.WriteError(w, errs.NewValidationError("title", "title must be at most 100 characters"))
			return
		}

		issue := models.Issue{
			ProjectID:   projectID,
			Title:       *req.Title,
			CreatedByID: userID,
			State:       models.IssueStateOpen,
			Priority:    models.IssuePriorityNormal,
		}
		if req.Description != nil {
			issue.Description = *req.Description
		}
		if req.State != nil {
			state := models.IssueState(*req.State)
			if !state.Valid() {
				h.responder.WriteError(w, errs.NewValidationError("state", "state must be open or closed"))
				return
			}
			issue.State = state
		}
		if req.Priority != nil {
			if !models.ValidIssuePriority(*req.Priority) {
				h.responder.WriteError(w, errs.NewValidationError("priority", "priority must be 1 (high), 2 (normal) or 3 (low)"))
				return
			}
			issue.Priority = *req.Priority
		}
		if req.Assignee != nil {
			assigneeID, apiErr := h.resolveAssignee(*req.Assignee)
			if apiErr != nil {
				h.responder.WriteError(w, apiErr)
				return
			}
			issue.AssigneeID = assigneeID
		}

		if err := h.issueRepo.Add(&issue); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "issue", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, issue)
	}
}

// getIssue retrieves a specific issue by ID
// @Summary Get issue
// @Description Retrieves detailed information about a specific issue by ID
// @Tags Issues
// @Accept json
// @Produce json
// @Param issueID path string true "Issue ID" format(uuid)
// @Success 200 {object} models.Issue "Issue details"
// @Failure 404 {object} ErrorResponse "Not Found - Issue not found"
// @Router /issue/{issueID} [get]
func (h issueHandler) getIssue() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		issueID, apiErr := parseUUIDParam(r, "issueID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		issue, err := h.issueRepo.FindByID(issueID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "issue", err))
			return
		}

		h.responder.WriteJSON(w, issue)
	}
}

// updateIssue updates an existing issue
// @Summary Update issue
// @Description Updates an existing issue's fields; absent fields are left unchanged
// @Tags Issues
// @Accept json
// @Produce json
// @Param issueID path string true "Issue ID" format(uuid)
// @Param issue body issueRequest true "Updated issue data"
// @Success 200 {object} models.Issue "Updated issue"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid issue data"
// @Failure 404 {object} ErrorResponse "Not Found - Issue not found"
// @Router /issue/{issueID} [put]
func (h issueHandler) updateIssue() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		issueID, apiErr := parseUUIDParam(r, "issueID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		issue, err := h.issueRepo.FindByID(issueID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "issue", err))
			return
		}

		var req issueRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode issue request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Title != nil {
			if *req.Title == "" {
				h.responder.WriteError(w, errs.NewValidationError("title", "title cannot be empty"))
				return
			}
			if len(*req.Title) > models.MaxIssueTitleLen {
				h.responder.WriteError(w, errs.NewValidationError("title", "title must be at most 100 characters"))
				return
			}
			issue.Title = *req.Title
		}
		if req.Description != nil {
			issue.Description = *req.Description
		}
		if req.State != nil {
			state := models.IssueState(*req.State)
			if !state.Valid() {
				h.responder.WriteError(w, errs.NewValidationError("state", "state must be open or closed"))
				return
			}
			issue.State = state
		}
		if req.Priority != nil {
			if !models.ValidIssuePriority(*req.Priority) {
				h.responder.WriteError(w, errs.NewValidationError("priority", "priority must be 1 (high), 2 (normal) or 3 (low)"))
				return
			}
			issue.Priority = *req.Priority
		}
		if req.Assignee != nil {
			assigneeID, apiErr := h.resolveAssignee(*req.Assignee)
			if apiErr != nil {
				h.responder.WriteError(w, apiErr)
				return
			}
			issue.AssigneeID = assigneeID
		}

		if err := h.issueRepo.Update(issue); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "issue", err))
			return
		}

		h.responder.WriteJSON(w, issue)
	}
}

// deleteIssue deletes an issue and its comments
// @Summary Delete issue
// @Description Deletes an issue by ID; only the reporter or the project owner may delete
// @Tags Issues
// @Accept json
// @Produce json
// @Param issueID path string true "Issue ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 403 {object} ErrorResponse "Forbidden - Not the reporter or project owner"
// @Failure 404 {object} ErrorResponse "Not Found - Issue not found"
// @Router /issue/{issueID} [delete]
func (h issueHandler) deleteIssue() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		issueID, apiErr := parseUUIDParam(r, "issueID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		issue, err := h.issueRepo.FindByID(issueID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "issue", err))
			return
		}

		if issue.CreatedByID != userID {
			project, err := h.projectRepo.FindByID(issue.ProjectID)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
				return
			}
			if project.OwnerID != userID {
				h.responder.WriteError(w, errs.NewForbiddenError("only the reporter or the project owner can delete an issue"))
				return
			}
		}

		if err := h.issueRepo.Delete(issueID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "issue", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"message": "issue deleted"})
	}
}

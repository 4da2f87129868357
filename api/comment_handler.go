package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tracker/database"
	"tracker/errs"
	"tracker/models"
)

type commentHandler struct {
	responder   Responder
	logger      zerolog.Logger
	commentRepo *database.CommentRepo
	issueRepo   *database.IssueRepo
}

func newCommentHandler(commentRepo *database.CommentRepo, issueRepo *database.IssueRepo) commentHandler {
	logger := log.With().Str("handlerName", "commentHandler").Logger()

	return commentHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		commentRepo: commentRepo,
		issueRepo:   issueRepo,
	}
}

type commentRequest struct {
	Body string `json:"body"`
}

// getIssueComments lists an issue's comments, oldest first.
func (h commentHandler) getIssueComments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		issueID, apiErr := parseUUIDParam(r, "issueID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		if _, err := h.issueRepo.FindByID(issueID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "issue", err))
			return
		}

		comments, err := h.commentRepo.FindByIssue(issueID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "comments", err))
			return
		}

		if comments == nil {
			comments = []*models.Comment{}
		}
		h.responder.WriteJSON(w, CommentCollection{
			Comments: comments,
			Total:    len(comments),
		})
	}
}

// createComment adds a comment to an issue, authored by the requester.
func (h commentHandler) createComment() http.HandlerFunc {
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

		if _, err := h.issueRepo.FindByID(issueID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "issue", err))
			return
		}

		var req commentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode comment request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Body == "" {
			h.responder.WriteError(w, errs.NewValidationError("body", "body is required"))
			return
		}

		comment := models.Comment{
			IssueID:  issueID,
			AuthorID: userID,
			Body:     req.Body,
		}
		if err := h.commentRepo.Add(&comment); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "comment", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, comment)
	}
}

// deleteComment removes a comment; only its author may do so.
func (h commentHandler) deleteComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		commentID, apiErr := parseUUIDParam(r, "commentID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		comment, err := h.commentRepo.FindByID(commentID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "comment", err))
			return
		}

		if comment.AuthorID != userID {
			h.responder.WriteError(w, errs.NewForbiddenError("only the author can delete a comment"))
			return
		}

		if err := h.commentRepo.Delete(commentID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "comment", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"message": "comment deleted"})
	}
}

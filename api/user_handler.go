package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tracker/auth"
	"tracker/database"
	"tracker/errs"
	"tracker/models"
)

type userHandler struct {
	responder   Responder
	logger      zerolog.Logger
	userRepo    *database.UserRepo
	profileRepo *database.ProfileRepo
	issuer      auth.TokenIssuer
	tokens      auth.TokenStore
}

func newUserHandler(userRepo *database.UserRepo, profileRepo *database.ProfileRepo, issuer auth.TokenIssuer, tokens auth.TokenStore) userHandler {
	logger := log.With().Str("handlerName", "userHandler").Logger()

	return userHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		issuer:      issuer,
		tokens:      tokens,
	}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type profileRequest struct {
	Avatar string `json:"avatar"`
	Bio    string `json:"bio"`
}

// register creates a new user account.
func (h userHandler) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode register request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Username == "" {
			h.responder.WriteError(w, errs.NewValidationError("username", "username is required"))
			return
		}
		if req.Email == "" || !strings.Contains(req.Email, "@") {
			h.responder.WriteError(w, errs.NewValidationError("email", "a valid email is required"))
			return
		}
		if len(req.Password) < 8 {
			h.responder.WriteError(w, errs.NewValidationError("password", "password must be at least 8 characters"))
			return
		}

		passwordHash, err := auth.HashPassword(req.Password)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to hash password"))
			return
		}

		user := models.User{
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: passwordHash,
		}
		if err := h.userRepo.Add(&user); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "user", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, newUserResponse(&user, true))
	}
}

// login verifies credentials and mints a bearer token.
func (h userHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		user, err := h.userRepo.FindByUsername(req.Username)
		if err != nil {
			// Do not reveal whether the username exists
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid credentials"))
			return
		}

		if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
			h.logger.Warn().Str("username", req.Username).Msg("Password verification failed")
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid credentials"))
			return
		}

		token, err := h.issuer.Issue(user.ID)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to issue token"))
			return
		}

		h.responder.WriteJSON(w, LoginResponse{
			Token: token,
			User:  newUserResponse(user, true),
		})
	}
}

// logout revokes the token that authenticated this request.
func (h userHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := ctxGetToken(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		if err := h.tokens.Revoke(r.Context(), token, h.issuer.TTL()); err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to revoke token"))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"message": "logged out"})
	}
}

// me returns the authenticated user with their profile.
func (h userHandler) me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		user, err := h.userRepo.FindByID(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}

		h.responder.WriteJSON(w, newUserResponse(user, true))
	}
}

// upsertProfile creates or replaces the authenticated user's profile.
func (h userHandler) upsertProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		var req profileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		profile := models.UserProfile{
			UserID: userID,
			Avatar: req.Avatar,
			Bio:    req.Bio,
		}
		if err := h.profileRepo.Upsert(&profile); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("upsert", "profile", err))
			return
		}

		h.responder.WriteJSON(w, newUserProfileResponse(&profile))
	}
}

// getAllUsers lists every user. Emails stay private except the requester's own.
func (h userHandler) getAllUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requesterID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		users, err := h.userRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "users", err))
			return
		}

		response := UserCollection{Users: []UserResponse{}}
		for _, user := range users {
			response.Users = append(response.Users, newUserResponse(user, user.ID == requesterID))
		}
		response.Total = len(response.Users)

		h.responder.WriteJSON(w, response)
	}
}

// getUser returns one user by ID.
func (h userHandler) getUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requesterID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		userID, apiErr := parseUUIDParam(r, "userID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		user, err := h.userRepo.FindByID(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}

		h.responder.WriteJSON(w, newUserResponse(user, user.ID == requesterID))
	}
}

// deleteUser removes an account. Users may only delete themselves.
func (h userHandler) deleteUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requesterID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		userID, apiErr := parseUUIDParam(r, "userID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		if userID != requesterID {
			h.responder.WriteError(w, errs.NewForbiddenError("users can only delete their own account"))
			return
		}

		if _, err := h.userRepo.FindByID(userID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}

		if err := h.userRepo.Delete(userID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "user", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"message": "user deleted"})
	}
}

// parseUUIDParam reads a UUID path parameter, reporting 400 on bad input.
func parseUUIDParam(r *http.Request, name string) (uuid.UUID, *errs.ApiErr) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return uuid.Nil, errs.NewBadRequestError("missing " + name)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid " + name)
	}
	return id, nil
}

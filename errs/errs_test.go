package errs_test

import (
	"errors"
	"net/http"
	"testing"

	"gorm.io/gorm"

	"tracker/errs"
)

func TestApiErrError(t *testing.T) {
	err := errs.NewBadRequestError("missing projectID")
	if err.Error() != "missing projectID" {
		t.Errorf("Error() = %q, want %q", err.Error(), "missing projectID")
	}
	if err.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d, want %d", err.StatusCode, http.StatusBadRequest)
	}
}

func TestApiErrUnwrap(t *testing.T) {
	err := errs.NewMissingTokenError()
	if !errors.Is(err, errs.ErrMissingToken) {
		t.Error("errors.Is should match the sentinel through Unwrap")
	}
}

func TestValidationErrorCarriesField(t *testing.T) {
	err := errs.NewValidationError("state", "state must be open or closed")
	if err.Field != "state" {
		t.Errorf("Field = %q, want %q", err.Field, "state")
	}
	if err.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d, want %d", err.StatusCode, http.StatusBadRequest)
	}
}

func TestNewDatabaseError(t *testing.T) {
	tests := []struct {
		name       string
		cause      error
		wantStatus int
	}{
		{
			name:       "record not found",
			cause:      gorm.ErrRecordNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "postgres duplicate key",
			cause:      errors.New(`duplicate key value violates unique constraint "idx_users_username"`),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "sqlite unique violation",
			cause:      errors.New("UNIQUE constraint failed: users.username"),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "postgres foreign key violation",
			cause:      errors.New(`insert or update on table "issues" violates foreign key constraint "fk_projects_issues"`),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "sqlite foreign key violation",
			cause:      errors.New("FOREIGN KEY constraint failed"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "connection failure",
			cause:      errors.New("dial tcp 127.0.0.1:5432: connection refused"),
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "unclassified error",
			cause:      errors.New("something odd happened"),
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "nil cause",
			cause:      nil,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errs.NewDatabaseError("create", "user", tt.cause)
			if err.StatusCode != tt.wantStatus {
				t.Errorf("StatusCode = %d, want %d", err.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestGetFullErrorIncludesCause(t *testing.T) {
	err := errs.NewDatabaseError("create", "user", errors.New("UNIQUE constraint failed: users.username"))
	full := err.GetFullError()
	if full == err.Error() {
		t.Error("GetFullError() should append the cause")
	}
}

func TestIsNotFound(t *testing.T) {
	if !errs.IsNotFound(gorm.ErrRecordNotFound) {
		t.Error("IsNotFound should accept gorm.ErrRecordNotFound")
	}
	if !errs.IsNotFound(errs.NewNotFound("user")) {
		t.Error("IsNotFound should accept errs.NewNotFound")
	}
	if errs.IsNotFound(errors.New("boom")) {
		t.Error("IsNotFound should reject unrelated errors")
	}
}

package errs

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusCode(NewNotFound("attorney")))
	assert.Equal(t, http.StatusBadRequest, StatusCode(fmt.Errorf("wrapped: %w", NewMissingRequiredFieldError("name"))))
	assert.Equal(t, http.StatusServiceUnavailable, StatusCode(NewConfigMissingError("database")))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("boom")))
}

func TestNewDatabaseError(t *testing.T) {
	tests := []struct {
		name   string
		cause  error
		status int
		is     error
	}{
		{"record not found", gorm.ErrRecordNotFound, http.StatusNotFound, ErrNotFound},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout, ErrDatabaseTimeout},
		{"canceled", context.Canceled, http.StatusGatewayTimeout, ErrDatabaseTimeout},
		{"duplicate", gorm.ErrDuplicatedKey, http.StatusConflict, ErrAlreadyExists},
		{"duplicate text", errors.New(`ERROR: duplicate key value violates unique constraint "attorneys_pkey"`), http.StatusConflict, ErrAlreadyExists},
		{"not null", errors.New(`null value in column "email" violates not-null constraint`), http.StatusBadRequest, ErrMissingRequiredField},
		{"refused", errors.New("dial tcp 10.0.0.1:5432: connect: connection refused"), http.StatusServiceUnavailable, ErrDatabaseConnection},
		{"other", errors.New("syntax error at or near"), http.StatusInternalServerError, ErrDatabaseQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDatabaseError("list", "attorney", tt.cause)
			assert.Equal(t, tt.status, err.StatusCode)
			assert.ErrorIs(t, err, tt.is)
		})
	}
}

func TestNewDatabaseErrorPassesClassifiedErrors(t *testing.T) {
	original := NewInvalidFieldError("orderBy", "cannot sort on bio")
	assert.Same(t, original, NewDatabaseError("list", "attorney", original))
}

func TestGetFullError(t *testing.T) {
	inner := NewDatabaseError("list", "attorney", errors.New("connection reset by peer"))
	outer := NewInternalErrorWithCause("refresh failed", inner)

	full := outer.GetFullError()
	assert.Contains(t, full, "refresh failed")
	assert.Contains(t, full, "Unable to connect to database")
	assert.Contains(t, full, "connection reset by peer")
}

func TestCheckers(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("route")))
	assert.ErrorIs(t, NewBadRequestError("nope"), ErrBadRequest)
	assert.ErrorIs(t, Unauthorized, ErrUnauthorized)
	assert.True(t, IsConfigMissing(NewConfigMissingError("email")))
	assert.True(t, IsValidationError(NewInvalidFieldError("date", "bad")))
	assert.True(t, IsValidationError(NewMissingRequiredFieldError("name")))
	assert.False(t, IsValidationError(NewNotFound("attorney")))

	assert.ErrorIs(t, NewServiceUnavailableError("resend", errors.New("502")), ErrServiceUnavailable)
	assert.True(t, IsDatabaseConnectionError(NewDatabaseError("list", "attorney", errors.New("no such host"))))
}

func TestReason(t *testing.T) {
	assert.Empty(t, Reason(nil))
	assert.Equal(t, "attorney not found", Reason(NewNotFound("attorney")))
	assert.Equal(t, "configuration missing: database is not configured", Reason(NewConfigMissingError("database")))
}

package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsMapToHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code int
		kind ErrorType
	}{
		{"validation", NewValidationError("bad id"), http.StatusBadRequest, ErrorTypeValidation},
		{"conflict answers 400", NewConflictError("duplicate name"), http.StatusBadRequest, ErrorTypeConflict},
		{"not found", NewNotFoundError("provider not found"), http.StatusNotFound, ErrorTypeNotFound},
		{"unauthorized", NewUnauthorizedError("admin access required"), http.StatusUnauthorized, ErrorTypeUnauthorized},
		{"persistence", NewPersistenceError("failed to delete provider", nil), http.StatusInternalServerError, ErrorTypePersistence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.kind, tt.err.Type)
		})
	}
}

func TestNewPersistenceError_KeepsDriverText(t *testing.T) {
	driverErr := fmt.Errorf("Error 1451: Cannot delete or update a parent row")
	wrapped := fmt.Errorf("failed to delete services: %w", driverErr)

	err := NewPersistenceError("failed to delete provider", wrapped)

	assert.Equal(t, "failed to delete provider: Error 1451: Cannot delete or update a parent row", err.Message)
	assert.ErrorIs(t, err, driverErr)
	assert.True(t, IsPersistenceError(fmt.Errorf("outer: %w", err)))
}

func TestTypePredicates(t *testing.T) {
	assert.True(t, IsConflictError(NewConflictError("x")))
	assert.True(t, IsNotFoundError(fmt.Errorf("wrap: %w", NewNotFoundError("x"))))
	assert.True(t, IsValidationError(NewValidationError("x")))
	assert.False(t, IsValidationError(fmt.Errorf("plain")))
	assert.Nil(t, GetAppError(fmt.Errorf("plain")))
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(fmt.Errorf("Error 1062: Duplicate entry 'acme' for key 'idx_api_provider_name'")))
	assert.True(t, IsDuplicateError(fmt.Errorf("UNIQUE constraint failed: api_providers.name")))
	assert.False(t, IsDuplicateError(fmt.Errorf("connection refused")))
	assert.False(t, IsDuplicateError(nil))
}

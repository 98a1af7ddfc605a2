package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smmpanel/panel/internal/shared/errors"
)

type sampleRequest struct {
	Name       string `json:"name" validate:"required,max=10"`
	HTTPMethod string `json:"httpMethod" validate:"omitempty,httpmethod"`
	Status     string `json:"status" validate:"omitempty,oneof=active inactive"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(sampleRequest{Name: "acme", HTTPMethod: "get"}))
	})

	t.Run("messages use json names", func(t *testing.T) {
		err := ValidateStruct(sampleRequest{HTTPMethod: "DELETE", Status: "deleted"})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))

		appErr := errors.GetAppError(err)
		assert.Contains(t, appErr.Message, "name is required")
		assert.Contains(t, appErr.Message, "httpMethod must be GET or POST")
		assert.Contains(t, appErr.Message, "status must be one of [active inactive]")
	})

	t.Run("max length", func(t *testing.T) {
		err := ValidateStruct(sampleRequest{Name: "a-very-long-provider"})
		require.Error(t, err)
		assert.Contains(t, errors.GetAppError(err).Message, "name must be at most 10 characters long")
	})
}

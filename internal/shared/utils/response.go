package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smmpanel/panel/internal/shared/errors"
)

// APIResponse is the envelope every admin endpoint answers with.
// Data is always present and is null on errors.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data"`
}

// SuccessResponse sends a successful response with custom status code
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// CreatedResponse sends a created response
func CreatedResponse(c *gin.Context, data interface{}, message ...string) {
	msg := "Resource created successfully"
	if len(message) > 0 {
		msg = message[0]
	}
	SuccessResponse(c, http.StatusCreated, msg, data)
}

// ErrorResponse sends an error response with custom status code and message
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error:   message,
	})
}

// ErrorResponseWithError sends an error response based on error type.
// Errors that are not *AppError are never echoed to the client.
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		msg := appErr.Message
		if appErr.Details != "" {
			msg = msg + ": " + appErr.Details
		}
		ErrorResponse(c, appErr.Code, msg)
		return
	}
	ErrorResponse(c, http.StatusInternalServerError, "Internal server error occurred")
}

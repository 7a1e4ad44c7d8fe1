package types

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/killallgit/search-api/internal/validation"
	apperrors "github.com/killallgit/search-api/pkg/errors"
)

// Handler utility functions to reduce duplication across handlers

// BindAndValidate decodes the JSON body into target, normalizes and validates it.
// Returns false and sends an error response if either step fails.
func BindAndValidate(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
				Status:  StatusError,
				Message: "Request body too large",
			})
			return false
		}
		SendError(c, apperrors.InvalidInputError(err))
		return false
	}

	if err := validation.Validate(target); err != nil {
		SendError(c, err)
		return false
	}
	return true
}

// SendError sends a structured error response derived from err. Unknown
// errors are logged and reported with a generic message.
func SendError(c *gin.Context, err error) {
	appErr, ok := apperrors.As(err)
	if !ok || appErr.GetHTTPCode() >= http.StatusInternalServerError {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
		SendInternalError(c)
		return
	}

	resp := ErrorResponse{
		Status:  StatusError,
		Message: appErr.Message,
		Error:   string(appErr.Code),
	}
	if len(appErr.Details) > 0 {
		resp.Details = appErr.Details
	}
	if appErr.Code == apperrors.ErrCodeInvalidInput && appErr.Cause != nil {
		resp.Details = appErr.Cause.Error()
	}
	c.JSON(appErr.GetHTTPCode(), resp)
}

// SendBadRequest sends a 400 with a detail message
func SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, DetailResponse{Detail: message})
}

// SendInternalError sends the generic internal server error response
func SendInternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Status:  StatusError,
		Message: InternalErrorMessage,
		Error:   string(apperrors.ErrCodeInternal),
	})
}

// SendSuccess sends a standardized success response with data
func SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/wishzy/wishzy-backend/internal/apperrors"
	"github.com/wishzy/wishzy-backend/internal/dto"
	"github.com/wishzy/wishzy-backend/internal/middleware"
)

// respondSuccess writes the standard success envelope.
func respondSuccess(c *gin.Context, status int, data any, message string) {
	c.JSON(status, dto.APIResponse{
		Success: true,
		Data:    data,
		Message: message,
		URL:     c.Request.URL.Path,
	})
}

// respondError maps application errors to HTTP statuses and writes the
// standard failure envelope. Unrecognized errors become an opaque 500.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, apperrors.ErrRefreshTokenExpired):
		status = http.StatusUnauthorized
		message = "Refresh token expired, please login again"
	case errors.Is(err, apperrors.ErrUnauthorized):
		status = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, apperrors.ErrForbidden):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, apperrors.ErrDuplicate):
		status = http.StatusConflict
		message = err.Error()
	default:
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Unhandled error in handler", slog.String("error", err.Error()))
	}

	c.JSON(status, dto.APIResponse{
		Success: false,
		Message: message,
		URL:     c.Request.URL.Path,
	})
}

// respondBadRequest reports a malformed request body or query string. Binding
// failures are flattened to per-field messages instead of the raw struct paths.
func respondBadRequest(c *gin.Context, err error) {
	message := "Invalid request: " + err.Error()

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
		}
		message = "Invalid request: " + strings.Join(fields, ", ")
	}

	c.JSON(http.StatusBadRequest, dto.APIResponse{
		Success: false,
		Message: message,
		URL:     c.Request.URL.Path,
	})
}

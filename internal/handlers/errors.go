package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/ohada_ledger/internal/apperrors"
	"github.com/SscSPs/ohada_ledger/internal/core/validation"
	"github.com/SscSPs/ohada_ledger/internal/dto"
	"github.com/SscSPs/ohada_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError maps a service error to its HTTP status. resource names the
// thing that was not found, action the operation reported on a 500.
func respondError(c *gin.Context, err error, resource, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if verrs, ok := validation.AsValidationErrors(err); ok {
		logger.Warn("Validation failed", slog.Int("error_count", len(verrs)))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "validation failed", Details: verrs})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn(resource+" not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: resource + " not found"})
	case errors.Is(err, apperrors.ErrPeriodClosed):
		logger.Warn("Period closed", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "accounting period is closed"})
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Conflict", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
	default:
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to " + action})
	}
}

func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format", Details: err.Error()})
}

// requireUserID reads the authenticated user, answering 401 when absent.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
	}
	return userID, ok
}

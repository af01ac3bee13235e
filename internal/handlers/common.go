package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Triostacksoftware/robobooks-ledger/internal/apperrors"
	"github.com/Triostacksoftware/robobooks-ledger/internal/middleware"
	"github.com/Triostacksoftware/robobooks-ledger/internal/utils/accounting"
	"github.com/gin-gonic/gin"
)

func getUserID(c *gin.Context) (string, bool) {
	return middleware.GetUserIDFromCtx(c.Request.Context())
}

// respondServiceError translates service-layer errors into HTTP responses.
// Typed errors carry extra payload (validation reports, lock boundaries);
// sentinel errors map straight to status codes.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error) {
	var validationErr *accounting.ValidationFailedError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"report": validationErr.Result,
		})
		return
	}

	var seqErr *apperrors.SequenceUnavailableError
	if errors.As(err, &seqErr) {
		logger.Error("Document sequence unavailable", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Document numbering temporarily unavailable, retry the request"})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// requestScope pulls the organization ID from the path and the acting user
// from the auth context. A missing user aborts with 401.
func requestScope(c *gin.Context) (organizationID, userID string, ok bool) {
	organizationID = c.Param("orgID")
	userID, ok = getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	}
	return organizationID, userID, ok
}

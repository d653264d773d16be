package handlers

import (
	"errors"
	"net/http"

	"agendly/database/repository"
	"agendly/middleware"
	"agendly/models"
	"agendly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps domain errors to status codes with a message the caller can act on.
// Anything unrecognised is logged and reported as a 500.
func respondError(c *gin.Context, action string, err error) {
	var (
		validationErr *models.ValidationError
		rangeErr      *models.InvalidRangeError
		duplicateErr  *models.DuplicateSlotError
		conflictErr   *models.BookingConflictError
		transitionErr *models.InvalidTransitionError
		notFoundErr   *models.NotFoundError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "field": validationErr.Field, "message": validationErr.Error()})
	case errors.As(err, &rangeErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid range", "message": rangeErr.Error()})
	case errors.As(err, &duplicateErr):
		c.JSON(http.StatusConflict, gin.H{"error": "Slot already exists", "message": "That time is already on this day's schedule."})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{"error": "Slot unavailable", "message": "That time is already taken, please pick another slot."})
	case errors.As(err, &transitionErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid status change", "message": transitionErr.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found", "message": notFoundErr.Error()})
	case errors.Is(err, repository.ErrVersionConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Concurrent update", "message": "The record changed while saving, please retry."})
	default:
		utils.GetLogger().Error("Failed to "+action,
			zap.String("storeID", c.GetString(middleware.StoreIDKey)),
			zap.String("path", c.FullPath()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

// storeIDFromContext reads the store id placed by StoreAuthMiddleware.
func storeIDFromContext(c *gin.Context) (string, bool) {
	storeID := c.GetString(middleware.StoreIDKey)
	if storeID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Store not authenticated"})
		return "", false
	}
	return storeID, true
}

func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return false
	}
	return true
}

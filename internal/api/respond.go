package api

import (
	"errors"
	"net/http"
	"strconv"

	"rewards_miniapp/internal/service"
	"rewards_miniapp/pkg/auth"
	"rewards_miniapp/pkg/logger"
	"rewards_miniapp/pkg/validator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// errorStatus maps a service error onto its HTTP status.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrDailyLimitExceeded),
		errors.Is(err, service.ErrAlreadyClaimedToday),
		errors.Is(err, service.ErrAlreadyCompleted),
		errors.Is(err, service.ErrQuestNotCompleted),
		errors.Is(err, service.ErrQuestAlreadyClaimed),
		errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrAlreadyReferred),
		errors.Is(err, service.ErrInvalidState),
		errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, service.ErrInsufficientBalance):
		return http.StatusPaymentRequired
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrRateLimited):
		return http.StatusTooManyRequests
	}
	return http.StatusInternalServerError
}

// respondError writes err with its mapped status. Internal errors are logged
// and replaced by fallback so storage details never reach the client.
func respondError(c *gin.Context, err error, fallback string) {
	log := logger.Logger()

	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		log.Error(fallback, zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(status, gin.H{"error": fallback})
		return
	}

	log.Info("request rejected", zap.String("path", c.FullPath()), zap.Int("status", status), zap.Error(err))
	c.JSON(status, gin.H{"error": err.Error()})
}

func respondBindError(c *gin.Context, err error) {
	logger.Logger().Info("failed to bind request", zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
}

// callerID returns the authenticated Telegram user id.
func callerID(c *gin.Context) (int64, bool) {
	user, ok := auth.UserFromContext(c)
	if !ok {
		logger.Logger().Error("telegram user data not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return 0, false
	}
	return user.ID, true
}

func int64Param(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		logger.Logger().Info("failed to parse path parameter", zap.String("param", name), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

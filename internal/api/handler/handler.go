package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freelancehub/backend/internal/api/domain"
	"github.com/freelancehub/backend/internal/api/service"
)

// ContextCallerKey is the gin context key under which the authentication
// middleware stores the resolved domain.Caller.
const ContextCallerKey = "caller"

// Dependencies holds all dependencies needed by handlers
type Dependencies struct {
	Logger       *slog.Logger
	Users        *service.UserService
	Jobs         *service.JobService
	Applications *service.ApplicationService
}

// callerFrom returns the caller stored by the auth middleware, or the
// anonymous caller when the route ran without authentication.
func callerFrom(c *gin.Context) domain.Caller {
	v, ok := c.Get(ContextCallerKey)
	if !ok {
		return domain.Caller{}
	}
	caller, ok := v.(domain.Caller)
	if !ok {
		return domain.Caller{}
	}
	return caller
}

// respondError translates a service error into an HTTP response. Field
// validation gets a details map; everything else is a single message.
// Unrecognized errors are logged and returned as a bare 500.
func respondError(c *gin.Context, logger *slog.Logger, err error) {
	if ve, ok := domain.AsValidationError(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation failed",
			"details": ve.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrUnauthenticated),
		errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrJobNotFound),
		errors.Is(err, domain.ErrApplicationNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrDuplicateApplication),
		errors.Is(err, domain.ErrApplicationResolved),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("Unhandled service error",
			slog.String("path", c.Request.URL.Path),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

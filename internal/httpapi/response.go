package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rich365/rich365/internal/domain"
	"github.com/rich365/rich365/internal/intelligence"
	"github.com/rich365/rich365/internal/progress"
	"github.com/rich365/rich365/internal/repository"
	"github.com/rich365/rich365/internal/service"
)

// envelope is the body of every JSON response.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, envelope{Success: true, Data: data})
}

func fail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, envelope{Success: false, Error: msg})
}

// failErr maps service errors onto status codes.
func failErr(c *gin.Context, err error) {
	fail(c, statusFor(err), err.Error())
}

func statusFor(err error) int {
	var verr *domain.ValidationError
	switch {
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, service.ErrNoCurrentUser):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrProfileIncomplete),
		errors.Is(err, progress.ErrAlreadyCheckedIn),
		errors.Is(err, repository.ErrDuplicate):
		return http.StatusConflict
	case errors.As(err, &verr),
		errors.Is(err, domain.ErrInvalidMonth),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, progress.ErrFutureDate),
		errors.Is(err, intelligence.ErrGoalRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

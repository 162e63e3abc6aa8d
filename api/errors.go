package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mfar201/flight-ticket-booking-system-sub001/internal/domain"
)

// statusFromError maps the domain error taxonomy onto HTTP statuses.
// Transient store failures are the only 503: callers may retry those
// unchanged, everything else needs a different request.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidSeatClass),
		errors.Is(err, domain.ErrInvalidReferenceKind):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrFlightNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrRoleNotFound),
		errors.Is(err, domain.ErrEntityNotFound),
		errors.Is(err, domain.ErrNoStagedChange):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrNoSeatsAvailable),
		errors.Is(err, domain.ErrBookingCancelled),
		errors.Is(err, domain.ErrBookingNotPending),
		errors.Is(err, domain.ErrSeatLocked),
		errors.Is(err, domain.ErrReferenced),
		errors.Is(err, domain.ErrStaleProposal):
		return http.StatusConflict
	case errors.Is(err, domain.ErrTransient):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(statusFromError(err), gin.H{"error": err.Error()})
}

// actorID reads the authenticated user id placed in X-User-ID by the outer
// auth layer. Requests without it never reach the core in production; the
// check here keeps handler tests honest.
func actorID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.GetHeader("X-User-ID"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid X-User-ID"})
		return 0, false
	}
	return id, true
}

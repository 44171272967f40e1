package api

import (
	"net/http"

	"bookit/internal/domain/slot"
	"bookit/internal/handler/httperr"
	"bookit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	msgSlotNotFound       = "Slot not found"
	msgExperienceNotFound = "Experience not found"
	msgBookingNotFound    = "Booking not found"
	msgPromoNotFound      = "Invalid or inactive promo code"
	msgNotEnoughSpots     = "Not enough spots available"
	msgIdempotencyReused  = "Idempotency-Key was already used with a different request"
	msgInvalidIdempotency = "Idempotency-Key must be a UUID"
)

// abortWithDomainError maps a use case error onto its public status and body. fallback is
// the 500 message for errors nothing else claims; opts are applied to every body.
func abortWithDomainError(c *gin.Context, err error, fallback string, opts ...httperr.Option) {
	if ve, ok := errs.AsValidation(err); ok {
		httperr.AbortWithError(c, http.StatusBadRequest, err, ve.Message, opts...)
		return
	}

	switch {
	case errs.Is(err, errs.ErrInsufficientCapacity):
		available, _ := slot.AvailableFrom(err)
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgNotEnoughSpots, append(opts, httperr.WithAvailable(available))...)
	case errs.Is(err, errs.ErrSlotNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, msgSlotNotFound, opts...)
	case errs.Is(err, errs.ErrExperienceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, msgExperienceNotFound, opts...)
	case errs.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, msgBookingNotFound, opts...)
	case errs.Is(err, errs.ErrPromoNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, msgPromoNotFound, append(opts, httperr.WithValid(false))...)
	case errs.Is(err, errs.ErrIdempotencyKeyMismatch):
		httperr.AbortWithError(c, http.StatusConflict, err, msgIdempotencyReused, opts...)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback, opts...)
	}
}

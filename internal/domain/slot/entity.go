package slot

import (
	"fmt"

	"bookit/internal/pkg/errs"
)

// InsufficientCapacityError reports the remaining spots seen under the row lock.
type InsufficientCapacityError struct {
	Available int32
	Requested int32
}

func (e *InsufficientCapacityError) Error() string {
	return fmt.Sprintf("not enough spots available: requested %d, available %d", e.Requested, e.Available)
}

func NewInsufficientCapacityError(available, requested int32) error {
	return errs.Mark(&InsufficientCapacityError{Available: available, Requested: requested}, errs.ErrInsufficientCapacity)
}

// AvailableFrom extracts the available count from an insufficient capacity error.
func AvailableFrom(err error) (int32, bool) {
	var ice *InsufficientCapacityError
	if errs.As(err, &ice) {
		return ice.Available, true
	}
	return 0, false
}

// Locked is a slot row read with FOR UPDATE inside the reserving transaction.
type Locked struct {
	ID             int64
	ExperienceID   int64
	AvailableSpots int32
}

// BelongsTo reports whether the slot is offered by the given experience.
func (s Locked) BelongsTo(experienceID int64) bool {
	return s.ExperienceID == experienceID
}

// Reserve checks that quantity fits and returns the remaining spots after the decrement.
func (s Locked) Reserve(quantity int32) (int32, error) {
	if quantity <= 0 {
		return 0, errs.Newf("reserve quantity must be positive, got %d", quantity)
	}
	if s.AvailableSpots < quantity {
		return 0, NewInsufficientCapacityError(s.AvailableSpots, quantity)
	}
	return s.AvailableSpots - quantity, nil
}

package errs

// Sentinels shared by the command and query layers. Handlers map them to HTTP statuses.
var (
	// Catalog
	ErrExperienceNotFound = New("experience not found")
	ErrSlotNotFound       = New("slot not found")

	// Booking
	ErrBookingNotFound      = New("booking not found")
	ErrInsufficientCapacity = New("not enough spots available")

	// Promo
	ErrPromoNotFound = New("invalid or inactive promo code")

	// Idempotency
	ErrIdempotencyKeyMismatch = New("idempotency key reused with a different request")
	ErrIdempotencyCheckFailed = New("idempotency check failed")

	// Operation
	ErrDatabaseOperationFailed = New("database operation failed")
)

package commands

//go:generate mockgen -destination=../../mock/commands/commands.go -package=commandsmock bookit/internal/usecase/commands BookingCommands,EventPublisher

import "github.com/shopspring/decimal"

// CreateBookingInput mirrors the POST /api/bookings body after transport decoding.
type CreateBookingInput struct {
	ExperienceID  int64
	SlotID        int64
	CustomerName  string
	CustomerEmail string
	Quantity      int
	Subtotal      decimal.Decimal
	Taxes         decimal.Decimal
	Total         decimal.Decimal
	PromoCode     *string
	// Discount nil means "not supplied" and is stored as 0.
	Discount *decimal.Decimal
}

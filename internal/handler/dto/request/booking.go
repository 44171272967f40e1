package request

import (
	"bookit/internal/domain/booking"
	"bookit/internal/usecase/commands"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Money fields accept JSON numbers or numeric strings.
type CreateBookingRequest struct {
	ExperienceID  int64            `json:"experience_id" binding:"required"`
	SlotID        int64            `json:"slot_id" binding:"required"`
	CustomerName  string           `json:"customer_name" binding:"required"`
	CustomerEmail string           `json:"customer_email" binding:"required,emailshape"`
	Quantity      int              `json:"quantity" binding:"required,min=1,max=10"`
	Subtotal      *decimal.Decimal `json:"subtotal" binding:"required"`
	Taxes         *decimal.Decimal `json:"taxes" binding:"required"`
	Total         *decimal.Decimal `json:"total" binding:"required"`
	PromoCode     *string          `json:"promo_code,omitempty"`
	Discount      *decimal.Decimal `json:"discount,omitempty"`
}

// Failures are reported in a fixed order: missing fields, email shape, quantity, prices.
func (r *CreateBookingRequest) validationMessage(fes validator.ValidationErrors) error {
	var email, quantity bool
	for _, fe := range fes {
		switch {
		case isPriceField(fe.Field()):
		case fe.Tag() == "required":
			return booking.ErrMissingFields
		case fe.Tag() == "emailshape":
			email = true
		default:
			quantity = true
		}
	}

	switch {
	case email:
		return booking.ErrInvalidEmail
	case quantity:
		return booking.ErrInvalidQuantity
	default:
		return booking.ErrInvalidPrice
	}
}

func (r *CreateBookingRequest) decodeMessage() error {
	return booking.ErrInvalidPrice
}

func isPriceField(name string) bool {
	return name == "Subtotal" || name == "Taxes" || name == "Total"
}

func (r *CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		ExperienceID:  r.ExperienceID,
		SlotID:        r.SlotID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		Quantity:      r.Quantity,
		Subtotal:      *r.Subtotal,
		Taxes:         *r.Taxes,
		Total:         *r.Total,
		PromoCode:     r.PromoCode,
		Discount:      r.Discount,
	}
}

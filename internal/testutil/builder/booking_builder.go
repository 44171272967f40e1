//go:build unit || e2e

package builder

import (
	"time"

	"bookit/internal/domain/booking"
	reqdto "bookit/internal/handler/dto/request"
	"bookit/internal/usecase/commands"
	"bookit/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type BookingBuilder struct {
	ID            int64
	ExperienceID  int64
	SlotID        int64
	CustomerName  string
	CustomerEmail string
	Quantity      int
	Subtotal      decimal.Decimal
	Taxes         decimal.Decimal
	Total         decimal.Decimal
	PromoCode     *string
	Discount      *decimal.Decimal
	Reference     string
	CreatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:            1,
		ExperienceID:  1,
		SlotID:        1,
		CustomerName:  "Asha Rao",
		CustomerEmail: "asha@example.com",
		Quantity:      2,
		Subtotal:      decimal.RequireFromString("1998.00"),
		Taxes:         decimal.RequireFromString("118.00"),
		Total:         decimal.RequireFromString("2116.00"),
		Reference:     "HUF1A2B3C4",
		CreatedAt:     time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithSlot(experienceID, slotID int64) *BookingBuilder {
	b.ExperienceID = experienceID
	b.SlotID = slotID
	return b
}

func (b *BookingBuilder) WithQuantity(q int) *BookingBuilder {
	b.Quantity = q
	return b
}

func (b *BookingBuilder) WithPromo(code string, discount *decimal.Decimal) *BookingBuilder {
	b.PromoCode = &code
	b.Discount = discount
	return b
}

// Build methods
func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ExperienceID:  b.ExperienceID,
		SlotID:        b.SlotID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		Quantity:      b.Quantity,
		Subtotal:      &b.Subtotal,
		Taxes:         &b.Taxes,
		Total:         &b.Total,
		PromoCode:     b.PromoCode,
		Discount:      b.Discount,
	}
}

func (b *BookingBuilder) BuildInput() commands.CreateBookingInput {
	dto := b.BuildDTO()
	return dto.ToInput()
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	discount := decimal.Zero
	if b.Discount != nil {
		discount = *b.Discount
	}
	return &booking.Booking{
		ID:               b.ID,
		ExperienceID:     b.ExperienceID,
		SlotID:           b.SlotID,
		CustomerName:     b.CustomerName,
		CustomerEmail:    b.CustomerEmail,
		Quantity:         int32(b.Quantity),
		Subtotal:         b.Subtotal,
		Taxes:            b.Taxes,
		Total:            b.Total,
		PromoCode:        b.PromoCode,
		Discount:         discount,
		BookingReference: booking.Reference(b.Reference),
		Status:           booking.StatusConfirmed,
		CreatedAt:        b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildDetailView() *queries.BookingDetailView {
	d := b.BuildDomain()
	return &queries.BookingDetailView{
		ID:               d.ID,
		ExperienceID:     d.ExperienceID,
		SlotID:           d.SlotID,
		CustomerName:     d.CustomerName,
		CustomerEmail:    d.CustomerEmail,
		Quantity:         d.Quantity,
		Subtotal:         d.Subtotal,
		Taxes:            d.Taxes,
		Total:            d.Total,
		PromoCode:        d.PromoCode,
		Discount:         d.Discount,
		BookingReference: d.BookingReference.String(),
		Status:           string(d.Status),
		CreatedAt:        d.CreatedAt,
		ExperienceTitle:  "Kayaking in Udupi",
		Date:             "2026-01-16",
		Time:             "09:00",
	}
}

func (b *BookingBuilder) BuildDraft() (*booking.Draft, error) {
	spec := booking.DraftSpec{
		ExperienceID:  b.ExperienceID,
		SlotID:        b.SlotID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		Quantity:      b.Quantity,
		Subtotal:      b.Subtotal,
		Taxes:         b.Taxes,
		Total:         b.Total,
		PromoCode:     b.PromoCode,
	}
	if b.Discount != nil {
		spec.Discount = *b.Discount
	}
	return booking.NewDraft(spec)
}

package converter

import (
	"bookit/internal/domain/booking"
	"bookit/internal/infra/sqlc"
	"bookit/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

func DraftToCreateParams(d *booking.Draft, ref booking.Reference) sqlc.CreateBookingParams {
	p := d.Pricing()
	return sqlc.CreateBookingParams{
		ExperienceID:     d.ExperienceID(),
		SlotID:           d.SlotID(),
		CustomerName:     d.CustomerName(),
		CustomerEmail:    d.CustomerEmail().String(),
		Quantity:         d.Quantity().Int32(),
		Subtotal:         pgconv.DecimalToNumeric(p.Subtotal.Decimal()),
		Taxes:            pgconv.DecimalToNumeric(p.Taxes.Decimal()),
		Total:            pgconv.DecimalToNumeric(p.Total.Decimal()),
		PromoCode:        pgconv.StringPtrToPgtype(d.PromoCode()),
		Discount:         pgconv.DecimalToNumeric(p.Discount.Decimal()),
		BookingReference: ref.String(),
	}
}

func BookingFromRow(row sqlc.Bookings) *booking.Booking {
	return &booking.Booking{
		ID:               row.ID,
		ExperienceID:     row.ExperienceID,
		SlotID:           row.SlotID,
		CustomerName:     row.CustomerName,
		CustomerEmail:    row.CustomerEmail,
		Quantity:         row.Quantity,
		Subtotal:         money(row.Subtotal),
		Taxes:            money(row.Taxes),
		Total:            money(row.Total),
		PromoCode:        pgconv.StringPtrFromPgtype(row.PromoCode),
		Discount:         money(row.Discount),
		BookingReference: booking.Reference(row.BookingReference),
		Status:           booking.Status(row.Status),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

func money(n pgtype.Numeric) decimal.Decimal {
	return pgconv.MustDecimalFromNumeric(n)
}

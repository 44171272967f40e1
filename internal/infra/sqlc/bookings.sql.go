package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createBooking = `-- name: CreateBooking :one
INSERT INTO bookings (
    experience_id, slot_id, customer_name, customer_email, quantity,
    subtotal, taxes, total, promo_code, discount, booking_reference
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
)
RETURNING id, experience_id, slot_id, customer_name, customer_email, quantity,
          subtotal, taxes, total, promo_code, discount, booking_reference, status, created_at
`

type CreateBookingParams struct {
	ExperienceID     int64          `json:"experience_id"`
	SlotID           int64          `json:"slot_id"`
	CustomerName     string         `json:"customer_name"`
	CustomerEmail    string         `json:"customer_email"`
	Quantity         int32          `json:"quantity"`
	Subtotal         pgtype.Numeric `json:"subtotal"`
	Taxes            pgtype.Numeric `json:"taxes"`
	Total            pgtype.Numeric `json:"total"`
	PromoCode        pgtype.Text    `json:"promo_code"`
	Discount         pgtype.Numeric `json:"discount"`
	BookingReference string         `json:"booking_reference"`
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) (Bookings, error) {
	row := db.QueryRow(ctx, createBooking,
		arg.ExperienceID,
		arg.SlotID,
		arg.CustomerName,
		arg.CustomerEmail,
		arg.Quantity,
		arg.Subtotal,
		arg.Taxes,
		arg.Total,
		arg.PromoCode,
		arg.Discount,
		arg.BookingReference,
	)
	var i Bookings
	err := scanBooking(row, &i)
	return i, err
}

const getBookingByID = `-- name: GetBookingByID :one
SELECT id, experience_id, slot_id, customer_name, customer_email, quantity,
       subtotal, taxes, total, promo_code, discount, booking_reference, status, created_at
FROM bookings
WHERE id = $1
`

func (q *Queries) GetBookingByID(ctx context.Context, db DBTX, id int64) (Bookings, error) {
	row := db.QueryRow(ctx, getBookingByID, id)
	var i Bookings
	err := scanBooking(row, &i)
	return i, err
}

const getBookingByReference = `-- name: GetBookingByReference :one
SELECT b.id, b.experience_id, b.slot_id, b.customer_name, b.customer_email, b.quantity,
       b.subtotal, b.taxes, b.total, b.promo_code, b.discount, b.booking_reference, b.status, b.created_at,
       e.title                       AS experience_title,
       to_char(s.date, 'YYYY-MM-DD') AS date,
       to_char(s.time, 'HH24:MI')    AS time
FROM bookings b
JOIN experiences e ON b.experience_id = e.id
JOIN slots s ON b.slot_id = s.id
WHERE b.booking_reference = $1
`

type GetBookingByReferenceRow struct {
	Bookings
	ExperienceTitle string `json:"experience_title"`
	Date            string `json:"date"`
	Time            string `json:"time"`
}

func (q *Queries) GetBookingByReference(ctx context.Context, db DBTX, bookingReference string) (GetBookingByReferenceRow, error) {
	row := db.QueryRow(ctx, getBookingByReference, bookingReference)
	var i GetBookingByReferenceRow
	err := row.Scan(
		&i.ID,
		&i.ExperienceID,
		&i.SlotID,
		&i.CustomerName,
		&i.CustomerEmail,
		&i.Quantity,
		&i.Subtotal,
		&i.Taxes,
		&i.Total,
		&i.PromoCode,
		&i.Discount,
		&i.BookingReference,
		&i.Status,
		&i.CreatedAt,
		&i.ExperienceTitle,
		&i.Date,
		&i.Time,
	)
	return i, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner, i *Bookings) error {
	return row.Scan(
		&i.ID,
		&i.ExperienceID,
		&i.SlotID,
		&i.CustomerName,
		&i.CustomerEmail,
		&i.Quantity,
		&i.Subtotal,
		&i.Taxes,
		&i.Total,
		&i.PromoCode,
		&i.Discount,
		&i.BookingReference,
		&i.Status,
		&i.CreatedAt,
	)
}

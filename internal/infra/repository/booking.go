package repository

import (
	"context"

	"bookit/internal/domain/booking"
	"bookit/internal/infra"
	"bookit/internal/infra/repository/converter"
	"bookit/internal/infra/sqlc"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Bookings, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, draft *booking.Draft, ref booking.Reference) (*booking.Booking, error) {
	params := converter.DraftToCreateParams(draft, ref)

	row, err := r.queries.CreateBooking(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return converter.BookingFromRow(row), nil
}

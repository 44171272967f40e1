package response

import (
	"time"

	"bookit/internal/domain/booking"
	"bookit/internal/usecase/queries"
)

const MsgBookingCreated = "Booking created successfully"

type BookingResponse struct {
	ID               int64     `json:"id"`
	ExperienceID     int64     `json:"experience_id"`
	SlotID           int64     `json:"slot_id"`
	CustomerName     string    `json:"customer_name"`
	CustomerEmail    string    `json:"customer_email"`
	Quantity         int32     `json:"quantity"`
	Subtotal         float64   `json:"subtotal"`
	Taxes            float64   `json:"taxes"`
	Total            float64   `json:"total"`
	PromoCode        *string   `json:"promo_code"`
	Discount         float64   `json:"discount"`
	BookingReference string    `json:"booking_reference"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

type CreateBookingResponse struct {
	Message string           `json:"message"`
	Booking *BookingResponse `json:"booking"`
}

type BookingDetailResponse struct {
	BookingResponse
	ExperienceTitle string `json:"experience_title"`
	Date            string `json:"date"`
	Time            string `json:"time"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:               b.ID,
		ExperienceID:     b.ExperienceID,
		SlotID:           b.SlotID,
		CustomerName:     b.CustomerName,
		CustomerEmail:    b.CustomerEmail,
		Quantity:         b.Quantity,
		Subtotal:         b.Subtotal.InexactFloat64(),
		Taxes:            b.Taxes.InexactFloat64(),
		Total:            b.Total.InexactFloat64(),
		PromoCode:        b.PromoCode,
		Discount:         b.Discount.InexactFloat64(),
		BookingReference: b.BookingReference.String(),
		Status:           string(b.Status),
		CreatedAt:        b.CreatedAt,
	}
}

func NewCreateBookingResponse(b *booking.Booking) *CreateBookingResponse {
	return &CreateBookingResponse{
		Message: MsgBookingCreated,
		Booking: FromBooking(b),
	}
}

func FromBookingDetailView(v *queries.BookingDetailView) *BookingDetailResponse {
	return &BookingDetailResponse{
		BookingResponse: BookingResponse{
			ID:               v.ID,
			ExperienceID:     v.ExperienceID,
			SlotID:           v.SlotID,
			CustomerName:     v.CustomerName,
			CustomerEmail:    v.CustomerEmail,
			Quantity:         v.Quantity,
			Subtotal:         v.Subtotal.InexactFloat64(),
			Taxes:            v.Taxes.InexactFloat64(),
			Total:            v.Total.InexactFloat64(),
			PromoCode:        v.PromoCode,
			Discount:         v.Discount.InexactFloat64(),
			BookingReference: v.BookingReference,
			Status:           v.Status,
			CreatedAt:        v.CreatedAt,
		},
		ExperienceTitle: v.ExperienceTitle,
		Date:            v.Date,
		Time:            v.Time,
	}
}

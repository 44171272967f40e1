package queries

//go:generate mockgen -destination=../../mock/queries/queries.go -package=queriesmock bookit/internal/usecase/queries BookingQueries,ExperienceQueries,PromoQueries

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingDetailView is a booking joined with its experience title and slot date/time.
type BookingDetailView struct {
	ID               int64           `json:"id"`
	ExperienceID     int64           `json:"experience_id"`
	SlotID           int64           `json:"slot_id"`
	CustomerName     string          `json:"customer_name"`
	CustomerEmail    string          `json:"customer_email"`
	Quantity         int32           `json:"quantity"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	Taxes            decimal.Decimal `json:"taxes"`
	Total            decimal.Decimal `json:"total"`
	PromoCode        *string         `json:"promo_code" copier:"-"`
	Discount         decimal.Decimal `json:"discount"`
	BookingReference string          `json:"booking_reference"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
	ExperienceTitle  string          `json:"experience_title"`
	Date             string          `json:"date"`
	Time             string          `json:"time"`
}

type ExperienceView struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Location    string          `json:"location"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    *string         `json:"image_url" copier:"-"`
	CreatedAt   time.Time       `json:"created_at"`
}

// SlotView is an upcoming slot; Date is YYYY-MM-DD and Time is HH:MM.
type SlotView struct {
	ID             int64  `json:"id"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	AvailableSpots int32  `json:"available_spots"`
	TotalSpots     int32  `json:"total_spots"`
}

type ExperienceDetailView struct {
	ExperienceView
	Slots []SlotView `json:"slots"`
}

type PromoView struct {
	Code          string
	DiscountType  string
	DiscountValue decimal.Decimal
}

type PromoEvaluation struct {
	Code          string          `json:"code"`
	DiscountType  string          `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	Discount      decimal.Decimal `json:"discount"`
}

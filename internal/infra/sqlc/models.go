package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Bookings struct {
	ID               int64              `json:"id"`
	ExperienceID     int64              `json:"experience_id"`
	SlotID           int64              `json:"slot_id"`
	CustomerName     string             `json:"customer_name"`
	CustomerEmail    string             `json:"customer_email"`
	Quantity         int32              `json:"quantity"`
	Subtotal         pgtype.Numeric     `json:"subtotal"`
	Taxes            pgtype.Numeric     `json:"taxes"`
	Total            pgtype.Numeric     `json:"total"`
	PromoCode        pgtype.Text        `json:"promo_code"`
	Discount         pgtype.Numeric     `json:"discount"`
	BookingReference string             `json:"booking_reference"`
	Status           string             `json:"status"`
	CreatedAt        pgtype.Timestamptz `json:"created_at"`
}

type Experiences struct {
	ID          int64              `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Location    string             `json:"location"`
	Price       pgtype.Numeric     `json:"price"`
	ImageUrl    pgtype.Text        `json:"image_url"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
}

type IdempotencyKeys struct {
	Key             uuid.UUID          `json:"key"`
	Endpoint        string             `json:"endpoint"`
	RequestHash     string             `json:"request_hash"`
	ResultBookingID pgtype.Int8        `json:"result_booking_id"`
	CreatedAt       pgtype.Timestamptz `json:"created_at"`
	ExpiresAt       pgtype.Timestamptz `json:"expires_at"`
}

type NotificationJobs struct {
	ID        uuid.UUID          `json:"id"`
	Kind      string             `json:"kind"`
	Topic     string             `json:"topic"`
	EventKey  string             `json:"event_key"`
	Payload   []byte             `json:"payload"`
	Status    string             `json:"status"`
	Attempts  int32              `json:"attempts"`
	LastError pgtype.Text        `json:"last_error"`
	RunAt     pgtype.Timestamptz `json:"run_at"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

type PromoCodes struct {
	ID            int64              `json:"id"`
	Code          string             `json:"code"`
	DiscountType  string             `json:"discount_type"`
	DiscountValue pgtype.Numeric     `json:"discount_value"`
	IsActive      bool               `json:"is_active"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
}

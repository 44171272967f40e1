package booking

import (
	"regexp"
	"strings"

	"bookit/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	MinQuantity = 1
	MaxQuantity = 10
)

// Messages surfaced verbatim to API clients.
const (
	MsgMissingFields   = "Missing required fields"
	MsgInvalidEmail    = "Invalid email format"
	MsgInvalidQuantity = "Quantity must be between 1 and 10"
	MsgInvalidPrice    = "Invalid price values"
)

var (
	ErrMissingFields   = errs.NewValidationError("", MsgMissingFields)
	ErrInvalidEmail    = errs.NewValidationError("customer_email", MsgInvalidEmail)
	ErrInvalidQuantity = errs.NewValidationError("quantity", MsgInvalidQuantity)
	ErrInvalidPrice    = errs.NewValidationError("", MsgInvalidPrice)
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsEmailShape reports whether s looks like local@domain.tld.
func IsEmailShape(s string) bool {
	return emailRegex.MatchString(s)
}

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Email{}, ErrMissingFields
	}
	if !IsEmailShape(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) String() string {
	return e.value
}

type Quantity int32

func NewQuantity(n int) (Quantity, error) {
	if n < MinQuantity || n > MaxQuantity {
		return 0, ErrInvalidQuantity
	}
	return Quantity(n), nil
}

func (q Quantity) Int32() int32 {
	return int32(q)
}

type Status string

const (
	StatusConfirmed Status = "confirmed"
)

func (s Status) String() string {
	return string(s)
}

// maxAmount is the largest value a NUMERIC(10,2) column holds.
var maxAmount = decimal.RequireFromString("99999999.99")

// Money is a non-negative two-decimal amount. Values are rounded half-up on construction.
type Money struct {
	amount decimal.Decimal
}

func NewMoney(d decimal.Decimal) (Money, error) {
	d = d.Round(2)
	if d.IsNegative() || d.GreaterThan(maxAmount) {
		return Money{}, ErrInvalidPrice
	}
	return Money{amount: d}, nil
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) String() string {
	return m.amount.StringFixed(2)
}

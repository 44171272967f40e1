package promo

import (
	"strings"

	"bookit/internal/pkg/errs"
)

var (
	ErrEmptyCode           = errs.New("promo code is empty")
	ErrInvalidDiscountType = errs.New("invalid discount type")
	ErrNegativeDiscount    = errs.New("discount value cannot be negative")
	ErrNonPositiveSubtotal = errs.New("subtotal must be positive")
)

// Code is the canonical uppercased form used for storage and lookups.
type Code string

func NewCode(code string) (Code, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return Code(""), ErrEmptyCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

func NewDiscountType(s string) (DiscountType, error) {
	switch DiscountType(s) {
	case DiscountPercentage, DiscountFixed:
		return DiscountType(s), nil
	default:
		return "", ErrInvalidDiscountType
	}
}

func (t DiscountType) String() string {
	return string(t)
}

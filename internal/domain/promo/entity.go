package promo

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type Promo struct {
	code          Code
	discountType  DiscountType
	discountValue decimal.Decimal
}

func NewPromo(code string, discountType string, discountValue decimal.Decimal) (*Promo, error) {
	c, err := NewCode(code)
	if err != nil {
		return nil, err
	}
	t, err := NewDiscountType(discountType)
	if err != nil {
		return nil, err
	}
	if discountValue.IsNegative() {
		return nil, ErrNegativeDiscount
	}
	return &Promo{code: c, discountType: t, discountValue: discountValue}, nil
}

// DiscountFor computes the discount for subtotal: a percentage of it or a fixed amount,
// clamped to [0, subtotal] and rounded half-up to 2 places.
func (p *Promo) DiscountFor(subtotal decimal.Decimal) decimal.Decimal {
	if !subtotal.IsPositive() {
		return decimal.Zero.Round(2)
	}

	var discount decimal.Decimal
	switch p.discountType {
	case DiscountPercentage:
		discount = subtotal.Mul(p.discountValue).Div(hundred)
	case DiscountFixed:
		discount = p.discountValue
	}

	discount = decimal.Min(discount, subtotal)
	discount = decimal.Max(discount, decimal.Zero)
	return discount.Round(2)
}

func (p *Promo) Code() Code                     { return p.code }
func (p *Promo) DiscountType() DiscountType     { return p.discountType }
func (p *Promo) DiscountValue() decimal.Decimal { return p.discountValue }

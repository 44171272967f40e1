package booking

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Pricing is supplied by the client. Total is accepted as sent; no payment is taken.
type Pricing struct {
	Subtotal Money
	Taxes    Money
	Total    Money
	Discount Money
}

func NewPricing(subtotal, taxes, total, discount decimal.Decimal) (Pricing, error) {
	var p Pricing
	var err error
	if p.Subtotal, err = NewMoney(subtotal); err != nil {
		return Pricing{}, err
	}
	if p.Taxes, err = NewMoney(taxes); err != nil {
		return Pricing{}, err
	}
	if p.Total, err = NewMoney(total); err != nil {
		return Pricing{}, err
	}
	if p.Discount, err = NewMoney(discount); err != nil {
		return Pricing{}, err
	}
	return p, nil
}

// Draft is a validated booking request that has not been written yet.
type Draft struct {
	experienceID  int64
	slotID        int64
	customerName  string
	customerEmail Email
	quantity      Quantity
	pricing       Pricing
	promoCode     *string
}

type DraftSpec struct {
	ExperienceID  int64
	SlotID        int64
	CustomerName  string
	CustomerEmail string
	Quantity      int
	Subtotal      decimal.Decimal
	Taxes         decimal.Decimal
	Total         decimal.Decimal
	Discount      decimal.Decimal
	PromoCode     *string
}

// NewDraft validates the request in the order clients expect errors to be reported:
// required fields, email shape, quantity range, then amounts.
func NewDraft(spec DraftSpec) (*Draft, error) {
	name := strings.TrimSpace(spec.CustomerName)
	if spec.ExperienceID <= 0 || spec.SlotID <= 0 || name == "" || strings.TrimSpace(spec.CustomerEmail) == "" || spec.Quantity == 0 {
		return nil, ErrMissingFields
	}

	email, err := NewEmail(spec.CustomerEmail)
	if err != nil {
		return nil, err
	}

	quantity, err := NewQuantity(spec.Quantity)
	if err != nil {
		return nil, err
	}

	pricing, err := NewPricing(spec.Subtotal, spec.Taxes, spec.Total, spec.Discount)
	if err != nil {
		return nil, err
	}

	var promoCode *string
	if spec.PromoCode != nil {
		if code := strings.ToUpper(strings.TrimSpace(*spec.PromoCode)); code != "" {
			promoCode = &code
		}
	}

	return &Draft{
		experienceID:  spec.ExperienceID,
		slotID:        spec.SlotID,
		customerName:  name,
		customerEmail: email,
		quantity:      quantity,
		pricing:       pricing,
		promoCode:     promoCode,
	}, nil
}

func (d *Draft) ExperienceID() int64  { return d.experienceID }
func (d *Draft) SlotID() int64        { return d.slotID }
func (d *Draft) CustomerName() string { return d.customerName }
func (d *Draft) CustomerEmail() Email { return d.customerEmail }
func (d *Draft) Quantity() Quantity   { return d.quantity }
func (d *Draft) Pricing() Pricing     { return d.pricing }
func (d *Draft) PromoCode() *string   { return d.promoCode }

// Booking is the stored ledger entry. It is never updated after creation.
type Booking struct {
	ID               int64
	ExperienceID     int64
	SlotID           int64
	CustomerName     string
	CustomerEmail    string
	Quantity         int32
	Subtotal         decimal.Decimal
	Taxes            decimal.Decimal
	Total            decimal.Decimal
	PromoCode        *string
	Discount         decimal.Decimal
	BookingReference Reference
	Status           Status
	CreatedAt        time.Time
}

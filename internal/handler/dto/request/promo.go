package request

import (
	"bookit/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	MsgPromoCodeRequired = "Promo code is required"
	MsgSubtotalRequired  = "Valid subtotal is required"
)

type ValidatePromoRequest struct {
	Code     string           `json:"code" binding:"required"`
	Subtotal *decimal.Decimal `json:"subtotal" binding:"required"`
}

func (r *ValidatePromoRequest) validationMessage(fes validator.ValidationErrors) error {
	if _, ok := hasField(fes, "Code"); ok {
		return errs.NewValidationError("code", MsgPromoCodeRequired)
	}
	return errs.NewValidationError("subtotal", MsgSubtotalRequired)
}

func (r *ValidatePromoRequest) decodeMessage() error {
	return errs.NewValidationError("subtotal", MsgSubtotalRequired)
}

// Validate applies the rules binding tags cannot express on decimals.
func (r *ValidatePromoRequest) Validate() error {
	if !r.Subtotal.IsPositive() {
		return errs.NewValidationError("subtotal", MsgSubtotalRequired)
	}
	return nil
}

package response

import "bookit/internal/usecase/queries"

type PromoValidationResponse struct {
	Valid         bool    `json:"valid"`
	Code          string  `json:"code"`
	DiscountType  string  `json:"discount_type"`
	DiscountValue float64 `json:"discount_value"`
	Discount      float64 `json:"discount"`
}

func FromPromoEvaluation(e *queries.PromoEvaluation) *PromoValidationResponse {
	return &PromoValidationResponse{
		Valid:         true,
		Code:          e.Code,
		DiscountType:  e.DiscountType,
		DiscountValue: e.DiscountValue.InexactFloat64(),
		Discount:      e.Discount.InexactFloat64(),
	}
}

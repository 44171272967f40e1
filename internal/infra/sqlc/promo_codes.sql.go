package sqlc

import (
	"context"
)

const getActivePromoCodeByCode = `-- name: GetActivePromoCodeByCode :one
SELECT id, code, discount_type, discount_value, is_active, created_at
FROM promo_codes
WHERE code = $1
  AND is_active = TRUE
`

func (q *Queries) GetActivePromoCodeByCode(ctx context.Context, db DBTX, code string) (PromoCodes, error) {
	row := db.QueryRow(ctx, getActivePromoCodeByCode, code)
	var i PromoCodes
	err := row.Scan(
		&i.ID,
		&i.Code,
		&i.DiscountType,
		&i.DiscountValue,
		&i.IsActive,
		&i.CreatedAt,
	)
	return i, err
}

package readstore

import (
	"context"

	"bookit/internal/infra"
	"bookit/internal/infra/sqlc"
	"bookit/internal/pkg/pgconv"
	"bookit/internal/usecase/queries"
)

type PromoViewQueries interface {
	GetActivePromoCodeByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.PromoCodes, error)
}

type PromoReadStore struct {
	queries PromoViewQueries
	db      sqlc.DBTX
}

func NewPromoReadStore(queries *sqlc.Queries, db sqlc.DBTX) *PromoReadStore {
	return &PromoReadStore{
		queries: queries,
		db:      db,
	}
}

// FindActiveByCode expects an already normalized (upper-case) code.
func (r *PromoReadStore) FindActiveByCode(ctx context.Context, code string) (*queries.PromoView, error) {
	row, err := r.queries.GetActivePromoCodeByCode(ctx, r.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("promo code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get promo code", err)
	}

	value, err := pgconv.DecimalFromNumeric(row.DiscountValue)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid promo discount value", err)
	}

	return &queries.PromoView{
		Code:          row.Code,
		DiscountType:  row.DiscountType,
		DiscountValue: value,
	}, nil
}

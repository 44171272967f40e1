package queries

import (
	"context"

	"bookit/internal/domain/promo"
	"bookit/internal/infra"
	"bookit/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type PromoReadStore interface {
	FindActiveByCode(ctx context.Context, code string) (*PromoView, error)
}

type PromoQueries interface {
	// Evaluate looks up an active code and computes its discount for subtotal.
	// Unknown and inactive codes both return errs.ErrPromoNotFound.
	Evaluate(ctx context.Context, code string, subtotal decimal.Decimal) (*PromoEvaluation, error)
}

type promoQueriesImpl struct {
	store PromoReadStore
}

func NewPromoQueries(store PromoReadStore) PromoQueries {
	return &promoQueriesImpl{store: store}
}

func (q *promoQueriesImpl) Evaluate(ctx context.Context, code string, subtotal decimal.Decimal) (*PromoEvaluation, error) {
	normalized, err := promo.NewCode(code)
	if err != nil {
		return nil, errs.ErrPromoNotFound
	}

	view, err := q.store.FindActiveByCode(ctx, normalized.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPromoNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	p, err := promo.NewPromo(view.Code, view.DiscountType, view.DiscountValue)
	if err != nil {
		// A row that fails domain rules cannot be applied.
		return nil, errs.Mark(err, errs.ErrPromoNotFound)
	}

	return &PromoEvaluation{
		Code:          p.Code().String(),
		DiscountType:  p.DiscountType().String(),
		DiscountValue: p.DiscountValue(),
		Discount:      p.DiscountFor(subtotal),
	}, nil
}

package queries

import (
	"context"

	"bookit/internal/infra"
	"bookit/internal/pkg/errs"
)

type ExperienceReadStore interface {
	List(ctx context.Context) ([]*ExperienceView, error)
	FindByID(ctx context.Context, id int64) (*ExperienceView, error)
	ListUpcomingSlots(ctx context.Context, experienceID int64) ([]SlotView, error)
}

type ExperienceQueries interface {
	List(ctx context.Context) ([]*ExperienceView, error)
	GetByID(ctx context.Context, id int64) (*ExperienceDetailView, error)
}

type experienceQueriesImpl struct {
	store ExperienceReadStore
}

func NewExperienceQueries(store ExperienceReadStore) ExperienceQueries {
	return &experienceQueriesImpl{store: store}
}

func (q *experienceQueriesImpl) List(ctx context.Context) ([]*ExperienceView, error) {
	views, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *experienceQueriesImpl) GetByID(ctx context.Context, id int64) (*ExperienceDetailView, error) {
	exp, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrExperienceNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slots, err := q.store.ListUpcomingSlots(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &ExperienceDetailView{ExperienceView: *exp, Slots: slots}, nil
}

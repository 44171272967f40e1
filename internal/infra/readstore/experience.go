package readstore

import (
	"context"

	"bookit/internal/infra"
	"bookit/internal/infra/sqlc"
	"bookit/internal/pkg/pgconv"
	"bookit/internal/usecase/queries"
)

type ExperienceViewQueries interface {
	ListExperiences(ctx context.Context, db sqlc.DBTX) ([]sqlc.Experiences, error)
	GetExperienceByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Experiences, error)
	ListUpcomingSlotsByExperience(ctx context.Context, db sqlc.DBTX, experienceID int64) ([]sqlc.ListUpcomingSlotsByExperienceRow, error)
}

type ExperienceReadStore struct {
	queries ExperienceViewQueries
	db      sqlc.DBTX
}

func NewExperienceReadStore(queries *sqlc.Queries, db sqlc.DBTX) *ExperienceReadStore {
	return &ExperienceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ExperienceReadStore) List(ctx context.Context) ([]*queries.ExperienceView, error) {
	rows, err := r.queries.ListExperiences(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list experiences", err)
	}

	views := make([]*queries.ExperienceView, 0, len(rows))
	for _, row := range rows {
		view, err := toExperienceView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (r *ExperienceReadStore) FindByID(ctx context.Context, id int64) (*queries.ExperienceView, error) {
	row, err := r.queries.GetExperienceByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("experience not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get experience by id", err)
	}
	return toExperienceView(row)
}

func (r *ExperienceReadStore) ListUpcomingSlots(ctx context.Context, experienceID int64) ([]queries.SlotView, error) {
	rows, err := r.queries.ListUpcomingSlotsByExperience(ctx, r.db, experienceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list upcoming slots", err)
	}

	slots := make([]queries.SlotView, len(rows))
	for i, row := range rows {
		slots[i] = queries.SlotView{
			ID:             row.ID,
			Date:           row.Date,
			Time:           row.Time,
			AvailableSpots: row.AvailableSpots,
			TotalSpots:     row.TotalSpots,
		}
	}
	return slots, nil
}

func toExperienceView(row sqlc.Experiences) (*queries.ExperienceView, error) {
	var view queries.ExperienceView
	if err := copyRow(&view, &row); err != nil {
		return nil, infra.WrapRepoErr("failed to map experience row", err)
	}
	view.ImageURL = pgconv.StringPtrFromPgtype(row.ImageUrl)
	return &view, nil
}

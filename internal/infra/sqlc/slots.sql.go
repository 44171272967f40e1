package sqlc

import (
	"context"
)

const lockSlotForUpdate = `-- name: LockSlotForUpdate :one
SELECT id, experience_id, available_spots
FROM slots
WHERE id = $1
FOR UPDATE
`

type LockSlotForUpdateRow struct {
	ID             int64 `json:"id"`
	ExperienceID   int64 `json:"experience_id"`
	AvailableSpots int32 `json:"available_spots"`
}

func (q *Queries) LockSlotForUpdate(ctx context.Context, db DBTX, id int64) (LockSlotForUpdateRow, error) {
	row := db.QueryRow(ctx, lockSlotForUpdate, id)
	var i LockSlotForUpdateRow
	err := row.Scan(&i.ID, &i.ExperienceID, &i.AvailableSpots)
	return i, err
}

const decrementSlotAvailability = `-- name: DecrementSlotAvailability :one
UPDATE slots
SET available_spots = available_spots - $2
WHERE id = $1
RETURNING available_spots
`

type DecrementSlotAvailabilityParams struct {
	ID       int64 `json:"id"`
	Quantity int32 `json:"quantity"`
}

func (q *Queries) DecrementSlotAvailability(ctx context.Context, db DBTX, arg DecrementSlotAvailabilityParams) (int32, error) {
	row := db.QueryRow(ctx, decrementSlotAvailability, arg.ID, arg.Quantity)
	var availableSpots int32
	err := row.Scan(&availableSpots)
	return availableSpots, err
}

const listUpcomingSlotsByExperience = `-- name: ListUpcomingSlotsByExperience :many
SELECT id,
       to_char(date, 'YYYY-MM-DD') AS date,
       to_char(time, 'HH24:MI')    AS time,
       available_spots,
       total_spots
FROM slots
WHERE experience_id = $1
  AND date >= CURRENT_DATE
ORDER BY date, time
`

type ListUpcomingSlotsByExperienceRow struct {
	ID             int64  `json:"id"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	AvailableSpots int32  `json:"available_spots"`
	TotalSpots     int32  `json:"total_spots"`
}

func (q *Queries) ListUpcomingSlotsByExperience(ctx context.Context, db DBTX, experienceID int64) ([]ListUpcomingSlotsByExperienceRow, error) {
	rows, err := db.Query(ctx, listUpcomingSlotsByExperience, experienceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListUpcomingSlotsByExperienceRow{}
	for rows.Next() {
		var i ListUpcomingSlotsByExperienceRow
		if err := rows.Scan(
			&i.ID,
			&i.Date,
			&i.Time,
			&i.AvailableSpots,
			&i.TotalSpots,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

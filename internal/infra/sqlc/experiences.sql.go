package sqlc

import (
	"context"
)

const listExperiences = `-- name: ListExperiences :many
SELECT id, title, description, location, price, image_url, created_at
FROM experiences
ORDER BY id
`

func (q *Queries) ListExperiences(ctx context.Context, db DBTX) ([]Experiences, error) {
	rows, err := db.Query(ctx, listExperiences)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Experiences{}
	for rows.Next() {
		var i Experiences
		if err := rows.Scan(
			&i.ID,
			&i.Title,
			&i.Description,
			&i.Location,
			&i.Price,
			&i.ImageUrl,
			&i.CreatedAt,
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

const getExperienceByID = `-- name: GetExperienceByID :one
SELECT id, title, description, location, price, image_url, created_at
FROM experiences
WHERE id = $1
`

func (q *Queries) GetExperienceByID(ctx context.Context, db DBTX, id int64) (Experiences, error) {
	row := db.QueryRow(ctx, getExperienceByID, id)
	var i Experiences
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Description,
		&i.Location,
		&i.Price,
		&i.ImageUrl,
		&i.CreatedAt,
	)
	return i, err
}

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const tryInsertIdempotencyKey = `-- name: TryInsertIdempotencyKey :execrows
INSERT INTO idempotency_keys (key, endpoint, request_hash, expires_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (key) DO NOTHING
`

type TryInsertIdempotencyKeyParams struct {
	Key         uuid.UUID          `json:"key"`
	Endpoint    string             `json:"endpoint"`
	RequestHash string             `json:"request_hash"`
	ExpiresAt   pgtype.Timestamptz `json:"expires_at"`
}

func (q *Queries) TryInsertIdempotencyKey(ctx context.Context, db DBTX, arg TryInsertIdempotencyKeyParams) (int64, error) {
	result, err := db.Exec(ctx, tryInsertIdempotencyKey,
		arg.Key,
		arg.Endpoint,
		arg.RequestHash,
		arg.ExpiresAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getIdempotencyKeyForUpdate = `-- name: GetIdempotencyKeyForUpdate :one
SELECT key, endpoint, request_hash, result_booking_id, created_at, expires_at
FROM idempotency_keys
WHERE key = $1
FOR UPDATE
`

func (q *Queries) GetIdempotencyKeyForUpdate(ctx context.Context, db DBTX, key uuid.UUID) (IdempotencyKeys, error) {
	row := db.QueryRow(ctx, getIdempotencyKeyForUpdate, key)
	var i IdempotencyKeys
	err := row.Scan(
		&i.Key,
		&i.Endpoint,
		&i.RequestHash,
		&i.ResultBookingID,
		&i.CreatedAt,
		&i.ExpiresAt,
	)
	return i, err
}

const reclaimExpiredIdempotencyKey = `-- name: ReclaimExpiredIdempotencyKey :execrows
UPDATE idempotency_keys
SET endpoint          = $2,
    request_hash      = $3,
    expires_at        = $4,
    result_booking_id = NULL,
    created_at        = NOW()
WHERE key = $1
  AND expires_at <= $5
`

type ReclaimExpiredIdempotencyKeyParams struct {
	Key         uuid.UUID          `json:"key"`
	Endpoint    string             `json:"endpoint"`
	RequestHash string             `json:"request_hash"`
	ExpiresAt   pgtype.Timestamptz `json:"expires_at"`
	Now         pgtype.Timestamptz `json:"now"`
}

func (q *Queries) ReclaimExpiredIdempotencyKey(ctx context.Context, db DBTX, arg ReclaimExpiredIdempotencyKeyParams) (int64, error) {
	result, err := db.Exec(ctx, reclaimExpiredIdempotencyKey,
		arg.Key,
		arg.Endpoint,
		arg.RequestHash,
		arg.ExpiresAt,
		arg.Now,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const completeIdempotencyKey = `-- name: CompleteIdempotencyKey :exec
UPDATE idempotency_keys
SET result_booking_id = $2
WHERE key = $1
`

type CompleteIdempotencyKeyParams struct {
	Key             uuid.UUID   `json:"key"`
	ResultBookingID pgtype.Int8 `json:"result_booking_id"`
}

func (q *Queries) CompleteIdempotencyKey(ctx context.Context, db DBTX, arg CompleteIdempotencyKeyParams) error {
	_, err := db.Exec(ctx, completeIdempotencyKey, arg.Key, arg.ResultBookingID)
	return err
}

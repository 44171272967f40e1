//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestExperience(t *testing.T, db DBLike, title string, price string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO experiences (title, description, location, price) VALUES ($1, 'test experience', 'Test City', $2::numeric) RETURNING id",
		title, price).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestSlot inserts a slot dated tomorrow with available == total == spots.
func CreateTestSlot(t *testing.T, db DBLike, experienceID int64, timeOfDay string, spots int32) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO slots (experience_id, date, time, available_spots, total_spots) VALUES ($1, CURRENT_DATE + 1, $2::time, $3, $3) RETURNING id",
		experienceID, timeOfDay, spots).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestPromo(t *testing.T, db DBLike, code, discountType, value string, active bool) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO promo_codes (code, discount_type, discount_value, is_active) VALUES ($1, $2, $3::numeric, $4)",
		code, discountType, value, active)
	require.NoError(t, err)
}

func AvailableSpots(t *testing.T, db DBLike, slotID int64) int32 {
	t.Helper()

	var n int32
	err := db.QueryRow(context.Background(), "SELECT available_spots FROM slots WHERE id = $1", slotID).Scan(&n)
	require.NoError(t, err)
	return n
}

// BookedQuantity sums booking quantities for a slot.
func BookedQuantity(t *testing.T, db DBLike, slotID int64) int32 {
	t.Helper()

	var n int32
	err := db.QueryRow(context.Background(), "SELECT COALESCE(SUM(quantity), 0)::int FROM bookings WHERE slot_id = $1", slotID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}

//go:build unit

package slot_test

import (
	"testing"

	"bookit/internal/domain/slot"
	"bookit/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockedReserve(t *testing.T) {
	locked := slot.Locked{ID: 1, ExperienceID: 7, AvailableSpots: 5}

	cases := []struct {
		name          string
		quantity      int32
		wantAfter     int32
		wantAvailable int32
		wantErr       bool
	}{
		{name: "一部予約", quantity: 3, wantAfter: 2},
		{name: "ちょうど満席", quantity: 5, wantAfter: 0},
		{name: "超過NG", quantity: 6, wantErr: true, wantAvailable: 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			after, err := locked.Reserve(tc.quantity)
			if !tc.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tc.wantAfter, after)
				return
			}

			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrInsufficientCapacity))
			available, ok := slot.AvailableFrom(err)
			require.True(t, ok)
			assert.Equal(t, tc.wantAvailable, available)
		})
	}

	t.Run("数量0は拒否", func(t *testing.T) {
		_, err := locked.Reserve(0)
		require.Error(t, err)
		assert.False(t, errs.Is(err, errs.ErrInsufficientCapacity))
	})

	t.Run("ラップされても残数を取り出せる", func(t *testing.T) {
		_, err := slot.Locked{AvailableSpots: 2}.Reserve(3)
		wrapped := errs.Wrap(err, "reserve")
		available, ok := slot.AvailableFrom(wrapped)
		require.True(t, ok)
		assert.Equal(t, int32(2), available)
	})
}

func TestLockedBelongsTo(t *testing.T) {
	locked := slot.Locked{ID: 1, ExperienceID: 7}
	assert.True(t, locked.BelongsTo(7))
	assert.False(t, locked.BelongsTo(8))
}

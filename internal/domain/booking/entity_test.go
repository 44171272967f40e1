//go:build unit

package booking_test

import (
	"testing"

	"bookit/internal/domain/booking"
	"bookit/internal/testutil/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestNewDraft(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		draft, err := builder.NewBookingBuilder().BuildDraft()
		require.NoError(t, err)

		assert.Equal(t, int64(1), draft.ExperienceID())
		assert.Equal(t, int64(1), draft.SlotID())
		assert.Equal(t, "Asha Rao", draft.CustomerName())
		assert.Equal(t, "asha@example.com", draft.CustomerEmail().String())
		assert.Equal(t, int32(2), draft.Quantity().Int32())
		assert.Equal(t, "2116.00", draft.Pricing().Total.String())
		assert.Equal(t, "0.00", draft.Pricing().Discount.String())
		assert.Nil(t, draft.PromoCode())
	})

	t.Run("必須項目検証", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "experience_idなしNG", mutate: func(b *builder.BookingBuilder) { b.ExperienceID = 0 }, errIs: booking.ErrMissingFields},
			{name: "slot_idなしNG", mutate: func(b *builder.BookingBuilder) { b.SlotID = 0 }, errIs: booking.ErrMissingFields},
			{name: "名前が空白のみNG", mutate: func(b *builder.BookingBuilder) { b.CustomerName = "   " }, errIs: booking.ErrMissingFields},
			{name: "メールなしNG", mutate: func(b *builder.BookingBuilder) { b.CustomerEmail = "" }, errIs: booking.ErrMissingFields},
			{name: "数量0NG", mutate: func(b *builder.BookingBuilder) { b.Quantity = 0 }, errIs: booking.ErrMissingFields},
		})
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "サブドメイン付きOK", mutate: func(b *builder.BookingBuilder) { b.CustomerEmail = "a.b@mail.example.co" }},
			{name: "@なしNG", mutate: func(b *builder.BookingBuilder) { b.CustomerEmail = "asha.example.com" }, errIs: booking.ErrInvalidEmail},
			{name: "TLDなしNG", mutate: func(b *builder.BookingBuilder) { b.CustomerEmail = "asha@example" }, errIs: booking.ErrInvalidEmail},
			{name: "空白を含むNG", mutate: func(b *builder.BookingBuilder) { b.CustomerEmail = "as ha@example.com" }, errIs: booking.ErrInvalidEmail},
		})
	})

	t.Run("数量境界値", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "1はOK", mutate: func(b *builder.BookingBuilder) { b.Quantity = 1 }},
			{name: "10はOK", mutate: func(b *builder.BookingBuilder) { b.Quantity = 10 }},
			{name: "11はNG", mutate: func(b *builder.BookingBuilder) { b.Quantity = 11 }, errIs: booking.ErrInvalidQuantity},
			{name: "負数はNG", mutate: func(b *builder.BookingBuilder) { b.Quantity = -1 }, errIs: booking.ErrInvalidQuantity},
		})
	})

	t.Run("金額検証", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "0円OK", mutate: func(b *builder.BookingBuilder) { b.Total = decimal.Zero }},
			{name: "負の小計NG", mutate: func(b *builder.BookingBuilder) { b.Subtotal = decimal.RequireFromString("-1.00") }, errIs: booking.ErrInvalidPrice},
			{name: "負の税額NG", mutate: func(b *builder.BookingBuilder) { b.Taxes = decimal.RequireFromString("-0.01") }, errIs: booking.ErrInvalidPrice},
			{name: "負の割引NG", mutate: func(b *builder.BookingBuilder) { d := decimal.RequireFromString("-50"); b.Discount = &d }, errIs: booking.ErrInvalidPrice},
			{name: "丸めて0になる負数はOK", mutate: func(b *builder.BookingBuilder) { b.Taxes = decimal.RequireFromString("-0.001") }},
			{name: "NUMERIC(10,2)上限超過NG", mutate: func(b *builder.BookingBuilder) { b.Total = decimal.RequireFromString("100000000") }, errIs: booking.ErrInvalidPrice},
		})
	})

	t.Run("検証順序: メールより必須項目が優先", func(t *testing.T) {
		_, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.SlotID = 0
			b.CustomerEmail = "broken"
			b.Quantity = 99
		}).BuildDraft()
		require.ErrorIs(t, err, booking.ErrMissingFields)
	})

	t.Run("プロモコードは大文字化して空文字は無視", func(t *testing.T) {
		draft, err := builder.NewBookingBuilder().WithPromo("  save10 ", nil).BuildDraft()
		require.NoError(t, err)
		require.NotNil(t, draft.PromoCode())
		assert.Equal(t, "SAVE10", *draft.PromoCode())

		draft, err = builder.NewBookingBuilder().WithPromo("   ", nil).BuildDraft()
		require.NoError(t, err)
		assert.Nil(t, draft.PromoCode())
	})

	t.Run("金額は小数2桁に丸める", func(t *testing.T) {
		draft, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Subtotal = decimal.RequireFromString("10.005")
		}).BuildDraft()
		require.NoError(t, err)
		assert.Equal(t, "10.01", draft.Pricing().Subtotal.String())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.NewBookingBuilder().With(tc.mutate).BuildDraft()
			if tc.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.errIs)
		})
	}
}

//go:build unit

package infra_test

import (
	"errors"
	"fmt"
	"testing"

	"bookit/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErrClassification(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505", ConstraintName: "bookings_booking_reference_key"}, want: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "check violation", err: &pgconn.PgError{Code: "23514"}, want: infra.KindCheckViolated},
		{name: "wrapped pg error", err: fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23503"}), want: infra.KindForeignKeyViolated},
		{name: "other error", err: errors.New("conn closed"), want: infra.KindDBFailure},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op", tc.err)
			assert.True(t, infra.IsKind(err, tc.want), "got %v", err)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestWrapRepoErrExplicitKind(t *testing.T) {
	err := infra.WrapRepoErr("slot not found", errors.New("no row"), infra.KindNotFound)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.False(t, infra.IsKind(err, infra.KindDBFailure))
}

func TestConstraintName(t *testing.T) {
	err := infra.WrapRepoErr("insert", &pgconn.PgError{Code: "23505", ConstraintName: "idempotency_keys_pkey"})
	assert.Equal(t, "idempotency_keys_pkey", infra.ConstraintName(err))
	assert.Equal(t, "", infra.ConstraintName(errors.New("plain")))
}

//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"car-rental-api/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		kind           []infra.RepositoryErrorKind
		wantKind       infra.RepositoryErrorKind
		wantConstraint string
	}{
		{
			name:     "no rows",
			err:      pgx.ErrNoRows,
			wantKind: infra.KindNotFound,
		},
		{
			name:           "unique violation",
			err:            &pgconn.PgError{Code: "23505", ConstraintName: "rentals_open_car_key"},
			wantKind:       infra.KindDuplicateKey,
			wantConstraint: "rentals_open_car_key",
		},
		{
			name:           "foreign key violation",
			err:            &pgconn.PgError{Code: "23503", ConstraintName: "cars_merchant_id_fkey"},
			wantKind:       infra.KindForeignKeyViolated,
			wantConstraint: "cars_merchant_id_fkey",
		},
		{
			name:     "other failure",
			err:      errors.New("connection reset"),
			wantKind: infra.KindDBFailure,
		},
		{
			name:     "explicit kind wins",
			err:      nil,
			kind:     []infra.RepositoryErrorKind{infra.KindNotFound},
			wantKind: infra.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("operation failed", tt.err, tt.kind...)

			assert.True(t, infra.IsKind(err, tt.wantKind))
			assert.Equal(t, tt.wantConstraint, infra.ConstraintOf(err))
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

//go:build unit

package pgconv_test

import (
	"math/big"
	"testing"
	"time"

	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalRoundTrip(t *testing.T) {
	tests := []string{"0", "10.00", "25.5", "12345678.99", "0.01"}

	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			d := decimal.RequireFromString(in)

			got, err := pgconv.DecimalFromNumeric(pgconv.DecimalToNumeric(d))
			require.NoError(t, err)
			assert.True(t, d.Equal(got), "want %s got %s", d, got)
		})
	}
}

func TestDecimalFromNumeric(t *testing.T) {
	n := pgtype.Numeric{Int: big.NewInt(2500), Exp: -2, Valid: true}

	got, err := pgconv.DecimalFromNumeric(n)
	require.NoError(t, err)
	assert.Equal(t, "25.00", got.StringFixed(2))

	_, err = pgconv.DecimalFromNumeric(pgtype.Numeric{Valid: true, NaN: true})
	assert.ErrorIs(t, err, pgconv.ErrInvalidNumeric)

	ptr, err := pgconv.DecimalPtrFromNumeric(pgtype.Numeric{})
	require.NoError(t, err)
	assert.Nil(t, ptr)
}

func TestTimePtr(t *testing.T) {
	assert.Nil(t, pgconv.TimePtrFromPgtype(pgtype.Timestamptz{}))

	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	got := pgconv.TimePtrFromPgtype(pgconv.TimeToPgtype(now))
	require.NotNil(t, got)
	assert.True(t, now.Equal(*got))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(errs.Wrap(pgx.ErrNoRows, "find car")))
	assert.False(t, pgconv.IsNoRows(errs.New("boom")))
}

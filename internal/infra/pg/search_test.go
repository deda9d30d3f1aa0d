//go:build unit

package pg

import (
	"math/big"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestCarSearchParams_Predicates(t *testing.T) {
	carMake := "toyota"
	status := "AVAILABLE"
	year := int32(2020)

	p := CarSearchParams{
		Make:     &carMake,
		Year:     &year,
		MaxPrice: pgtype.Numeric{Int: big.NewInt(2000), Exp: -2, Valid: true},
		Status:   &status,
	}.predicates()

	assert.Equal(t,
		" WHERE lower(make) = lower($1) AND year = $2 AND price_per_hour <= $3 AND status = $4",
		p.where(),
	)
	assert.Len(t, p.args, 4)

	clause, args := p.page(10, 20)
	assert.Equal(t, " LIMIT $5 OFFSET $6", clause)
	assert.Equal(t, []any{int64(10), int64(20)}, args[4:])
	assert.Len(t, p.args, 4, "page must not mutate the filter arguments")
}

func TestCarSearchParams_Empty(t *testing.T) {
	p := CarSearchParams{}.predicates()

	assert.Equal(t, "", p.where())
	clause, _ := p.page(10, 0)
	assert.Equal(t, " LIMIT $1 OFFSET $2", clause)
}

func TestRentalSearchParams_Predicates(t *testing.T) {
	merchantID := int64(3)
	open := false
	day := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	arg := RentalSearchParams{
		MerchantID:    &merchantID,
		Open:          &open,
		RentalDateGTE: pgtype.Date{Time: day, Valid: true},
		RentalDateLTE: pgtype.Date{Time: day, Valid: true},
	}
	p := arg.predicates()

	assert.Equal(t, " FROM rentals r JOIN cars c ON c.id = r.car_id", arg.from())
	assert.Equal(t,
		" WHERE c.merchant_id = $1 AND r.return_date IS NOT NULL AND r.rental_date::date >= $2 AND r.rental_date::date <= $3",
		p.where(),
	)
	assert.Len(t, p.args, 3)
}

func TestRentalSearchParams_UserScope(t *testing.T) {
	userID := int64(9)
	open := true

	arg := RentalSearchParams{UserID: &userID, Open: &open}

	assert.Equal(t, " FROM rentals r", arg.from())
	assert.Equal(t, " WHERE r.user_id = $1 AND r.return_date IS NULL", arg.predicates().where())
}

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

// bcrypt("password123")
const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

const TestPassword = "password123"

func CreateTestUser(t *testing.T, db DBLike, email, role string) int64 {
	t.Helper()

	ctx := context.Background()
	var userID int64
	err := db.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, name, surname, role)
		VALUES ($1, $2, 'Taro', 'Yamada', $3)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id`,
		email, TestPasswordHash, role).Scan(&userID)
	require.NoError(t, err)

	return userID
}

// CreateTestMerchant returns the user id and the merchant profile id.
func CreateTestMerchant(t *testing.T, db DBLike, email, companyName string) (int64, int64) {
	t.Helper()

	userID := CreateTestUser(t, db, email, "merchant")

	var merchantID int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO merchants (user_id, company_name) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET company_name = EXCLUDED.company_name
		RETURNING id`,
		userID, companyName).Scan(&merchantID)
	require.NoError(t, err)

	return userID, merchantID
}

func CreateTestCar(t *testing.T, db DBLike, merchantID int64, carMake, model string, year int, pricePerHour string) int64 {
	t.Helper()

	var carID int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO cars (make, model, year, price_per_hour, merchant_id)
		VALUES ($1, $2, $3, $4::numeric, $5)
		RETURNING id`,
		carMake, model, year, pricePerHour, merchantID).Scan(&carID)
	require.NoError(t, err)

	return carID
}

// BackdateRental moves the open rental's start into the past so a return
// is charged for a known duration.
func BackdateRental(t *testing.T, db DBLike, rentalID int64, by time.Duration) {
	t.Helper()

	tag, err := db.Exec(context.Background(),
		"UPDATE rentals SET rental_date = rental_date - make_interval(secs => $2) WHERE id = $1",
		rentalID, by.Seconds())
	require.NoError(t, err)
	require.Equal(t, int64(1), tag.RowsAffected())
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// A merchant with one available car, used by the search suites.
	_, err := pool.Exec(ctx, `
		WITH u AS (
			INSERT INTO users (email, password_hash, name, surname, role)
			VALUES ('seed-merchant@example.com', $1, 'Seed', 'Merchant', 'merchant')
			ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
			RETURNING id
		), m AS (
			INSERT INTO merchants (user_id, company_name)
			SELECT id, 'Seed Rentals' FROM u
			ON CONFLICT (user_id) DO UPDATE SET company_name = EXCLUDED.company_name
			RETURNING id
		)
		INSERT INTO cars (make, model, year, price_per_hour, merchant_id)
		SELECT 'Seed', 'Roadster', 2020, 5.00, id FROM m`,
		TestPasswordHash)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
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
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}

//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"car-rental-api/internal/domain/rental"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/infra/pg"
	"car-rental-api/internal/pkg/clock"
	"car-rental-api/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRentalWriteQueries struct {
	mock.Mock
}

func (m *MockRentalWriteQueries) CreateRental(ctx context.Context, db pg.DBTX, arg pg.CreateRentalParams) (pg.Rentals, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(pg.Rentals), args.Error(1)
}

func (m *MockRentalWriteQueries) FindOpenRentalByUserForUpdate(ctx context.Context, db pg.DBTX, userID int64) (pg.Rentals, error) {
	args := m.Called(ctx, db, userID)
	return args.Get(0).(pg.Rentals), args.Error(1)
}

func (m *MockRentalWriteQueries) CloseRental(ctx context.Context, db pg.DBTX, arg pg.CloseRentalParams) (pg.Rentals, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(pg.Rentals), args.Error(1)
}

// pg.DBTX implementation for MockRentalWriteQueries
func (m *MockRentalWriteQueries) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockRentalWriteQueries) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockRentalWriteQueries) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

func TestRentalRepository_Create(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	services := &rental.Services{Clock: clock.NewMockClock(now), FeeCalculator: rental.NewDefaultFeeCalculator()}
	opened := rental.Open(services, 1, 2)

	t.Run("success", func(t *testing.T) {
		mockQueries := new(MockRentalWriteQueries)
		mockQueries.On("CreateRental", mock.Anything, mock.Anything, pg.CreateRentalParams{
			UserID:     1,
			CarID:      2,
			RentalDate: pgtype.Timestamptz{Time: now, Valid: true},
		}).Return(builder.NewRentalBuilder().With(func(b *builder.RentalBuilder) {
			b.ID = 30
			b.CarID = 2
			b.RentalDate = now
		}).BuildInfra(), nil)

		created, err := NewRentalRepository(mockQueries, mockQueries).Create(context.Background(), opened)

		require.NoError(t, err)
		assert.Equal(t, int64(30), created.ID())
		assert.True(t, created.IsOpen())
	})

	t.Run("部分ユニークインデックス違反は制約名を保持", func(t *testing.T) {
		mockQueries := new(MockRentalWriteQueries)
		mockQueries.On("CreateRental", mock.Anything, mock.Anything, mock.Anything).
			Return(pg.Rentals{}, &pgconn.PgError{Code: "23505", ConstraintName: pg.ConstraintOpenRentalCar})

		_, err := NewRentalRepository(mockQueries, mockQueries).Create(context.Background(), opened)

		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		assert.Equal(t, pg.ConstraintOpenRentalCar, infra.ConstraintOf(err))
	})
}

func TestRentalRepository_Close(t *testing.T) {
	t.Run("未クローズのレンタルは書き込まない", func(t *testing.T) {
		mockQueries := new(MockRentalWriteQueries)

		_, err := NewRentalRepository(mockQueries, mockQueries).Close(context.Background(), builder.NewRentalBuilder().BuildDomain())

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		mockQueries.AssertNotCalled(t, "CloseRental", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("返却日と料金を保存", func(t *testing.T) {
		closed := builder.NewRentalBuilder().Returned(150*time.Minute, "25.00")
		mockQueries := new(MockRentalWriteQueries)
		mockQueries.On("CloseRental", mock.Anything, mock.Anything, mock.MatchedBy(func(p pg.CloseRentalParams) bool {
			return p.ID == 1 && p.ReturnDate.Time.Equal(*closed.ReturnDate) && p.TotalFee.Valid
		})).Return(closed.BuildInfra(), nil)

		got, err := NewRentalRepository(mockQueries, mockQueries).Close(context.Background(), closed.BuildDomain())

		require.NoError(t, err)
		require.NotNil(t, got.TotalFee())
		assert.True(t, got.TotalFee().Equal(decimal.RequireFromString("25")))
		assert.False(t, got.IsOpen())
	})

	t.Run("同時に返却済みならNotFound", func(t *testing.T) {
		closed := builder.NewRentalBuilder().Returned(time.Hour, "10.00")
		mockQueries := new(MockRentalWriteQueries)
		mockQueries.On("CloseRental", mock.Anything, mock.Anything, mock.Anything).Return(pg.Rentals{}, pgx.ErrNoRows)

		_, err := NewRentalRepository(mockQueries, mockQueries).Close(context.Background(), closed.BuildDomain())

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

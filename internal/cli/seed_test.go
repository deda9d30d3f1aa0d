//go:build unit

package cli_test

import (
	"context"
	"testing"

	"car-rental-api/internal/cli"
	reqdto "car-rental-api/internal/handler/dto/request"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/usecase/commands"
	"car-rental-api/internal/usecase/queries"
	commandsmock "car-rental-api/tests/mock/commands"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const seedYAML = `
users:
  - email: alice@example.com
    password: password123
    name: Alice
    surname: Renter
merchants:
  - email: fleet@example.com
    password: password123
    name: Frank
    surname: Fleet
    company_name: Fleet Rentals
    cars:
      - make: Toyota
        model: Corolla
        year: 2021
        price_per_hour: "12.50"
      - make: Honda
        model: Civic
        year: 2020
        price_per_hour: 9.99
`

func TestParseSeedFile(t *testing.T) {
	t.Run("正常系: YAMLを読み込む", func(t *testing.T) {
		f, err := cli.ParseSeedFile([]byte(seedYAML))
		require.NoError(t, err)

		require.Len(t, f.Users, 1)
		assert.Equal(t, "alice@example.com", f.Users[0].Email)
		require.Len(t, f.Merchants, 1)
		assert.Equal(t, "Fleet Rentals", f.Merchants[0].CompanyName)
		assert.Equal(t, "fleet@example.com", f.Merchants[0].Email)
		require.Len(t, f.Merchants[0].Cars, 2)
		assert.Equal(t, "12.50", f.Merchants[0].Cars[0].PricePerHour)
		assert.Equal(t, "9.99", f.Merchants[0].Cars[1].PricePerHour)
	})

	t.Run("異常系: 価格が数値でない", func(t *testing.T) {
		_, err := cli.ParseSeedFile([]byte(`
merchants:
  - email: fleet@example.com
    cars:
      - make: Toyota
        model: Corolla
        year: 2021
        price_per_hour: cheap
`))
		assert.ErrorContains(t, err, "invalid price_per_hour")
	})

	t.Run("異常系: YAMLが壊れている", func(t *testing.T) {
		_, err := cli.ParseSeedFile([]byte("users: [unterminated"))
		assert.Error(t, err)
	})
}

func TestSeeder_Seed(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: ユーザー、加盟店、車両を登録する", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := commandsmock.NewMockAuthCommands(ctrl)
		cars := commandsmock.NewMockCarCommands(ctrl)

		f, err := cli.ParseSeedFile([]byte(seedYAML))
		require.NoError(t, err)

		auth.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req reqdto.RegisterRequest) (*queries.UserView, error) {
				assert.Equal(t, "user", req.Role)
				return &queries.UserView{ID: 1, Email: req.Email}, nil
			})
		auth.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req reqdto.RegisterRequest) (*queries.UserView, error) {
				assert.Equal(t, "merchant", req.Role)
				assert.Equal(t, "Fleet Rentals", req.CompanyName)
				return &queries.UserView{ID: 2, Email: req.Email}, nil
			})
		cars.EXPECT().Create(gomock.Any(), int64(2), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, req reqdto.CreateCarRequest) (*queries.CarView, error) {
				require.NotNil(t, req.PricePerHour)
				assert.True(t, req.PricePerHour.Equal(decimal.RequireFromString("12.50")))
				return &queries.CarView{ID: 1}, nil
			})
		cars.EXPECT().Create(gomock.Any(), int64(2), gomock.Any()).Return(&queries.CarView{ID: 2}, nil)

		res, err := cli.NewSeeder(auth, cars).Seed(ctx, f)
		require.NoError(t, err)
		assert.Equal(t, cli.SeedResult{Users: 1, Merchants: 1, Cars: 2}, res)
	})

	t.Run("正常系: 登録済みの加盟店は車両ごとスキップする", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := commandsmock.NewMockAuthCommands(ctrl)
		cars := commandsmock.NewMockCarCommands(ctrl)

		f, err := cli.ParseSeedFile([]byte(seedYAML))
		require.NoError(t, err)

		auth.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrUserAlreadyExists).Times(2)

		res, err := cli.NewSeeder(auth, cars).Seed(ctx, f)
		require.NoError(t, err)
		assert.Equal(t, cli.SeedResult{Skipped: 2}, res)
	})

	t.Run("異常系: ドメインエラーで中断する", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := commandsmock.NewMockAuthCommands(ctrl)
		cars := commandsmock.NewMockCarCommands(ctrl)

		f := &cli.SeedFile{Users: []cli.SeedUser{{Email: "weak@example.com", Password: "short"}}}
		weak := errs.Validation("password", "Password must be at least 8 characters")
		auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, weak)

		_, err := cli.NewSeeder(auth, cars).Seed(ctx, f)
		require.Error(t, err)
		assert.True(t, errs.IsKind(err, errs.KindValidation))
		assert.ErrorContains(t, err, "weak@example.com")
	})
}

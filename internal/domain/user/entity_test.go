//go:build unit

package user_test

import (
	"testing"

	"car-rental-api/internal/domain/user"
	"car-rental-api/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(user.User{}, user.Merchant{}, user.Email{}),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {

		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("test@example.com")
		expected := user.ReconstructUser(0, email, builder.NewUserBuilder().PasswordHash, "Taro", "Yamada", user.RoleUser, nil, actual.CreatedAt())

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.False(t, actual.IsMerchant())
		assert.Nil(t, actual.Merchant())
	})

	t.Run("加盟店はプロフィールを持つ", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().AsMerchant(5, "  Acme Rentals ").BuildDomain()
		require.NoError(t, err)

		assert.True(t, actual.IsMerchant())
		require.NotNil(t, actual.Merchant())
		assert.Equal(t, "Acme Rentals", actual.Merchant().CompanyName())
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "有効なメールアドレスOK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "大文字と前後の空白は正規化される",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("  Valid@Example.COM ") },
			},
			{
				name:   "空のメールアドレスNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "無効な形式NG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "@なしNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("ロール検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "user ロールOK",
				mutate: func(b *builder.UserBuilder) { b.Role = "user" },
			},
			{
				name:   "大文字の Merchant ロールOK",
				mutate: func(b *builder.UserBuilder) { b.Role = "Merchant"; b.CompanyName = "Acme" },
			},
			{
				name:   "admin ロールNG",
				mutate: func(b *builder.UserBuilder) { b.Role = "admin" },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "空のロールNG",
				mutate: func(b *builder.UserBuilder) { b.Role = "" },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("氏名と会社名の検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "名前が空白のみNG",
				mutate: func(b *builder.UserBuilder) { b.Name = "   " },
				errIs:  user.ErrNameRequired,
			},
			{
				name:   "姓が空NG",
				mutate: func(b *builder.UserBuilder) { b.Surname = "" },
				errIs:  user.ErrSurnameRequired,
			},
			{
				name:   "会社名なしの加盟店NG",
				mutate: func(b *builder.UserBuilder) { b.AsMerchant(1, " ") },
				errIs:  user.ErrCompanyNameRequired,
			},
			{
				name:   "一般ユーザーの会社名は無視される",
				mutate: func(b *builder.UserBuilder) { b.CompanyName = "Ignored" },
			},
		})
	})
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("1234567")
	require.ErrorIs(t, err, user.ErrPasswordTooWeak)

	pw, err := user.NewPassword("12345678")
	require.NoError(t, err)
	assert.Equal(t, "12345678", pw.Value())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"car-rental-api/internal/domain/user"
	"car-rental-api/internal/pkg/config"
	"car-rental-api/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_AccessToken(t *testing.T) {
	svc := jwt.NewService("secret", time.Minute, time.Hour)

	token, err := svc.GenerateAccessToken(42, user.RoleMerchant)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "merchant", claims.Role)
	assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
	assert.Equal(t, "42", claims.Subject)
}

func TestService_RefreshToken(t *testing.T) {
	svc := jwt.NewService("secret", time.Minute, time.Hour)

	token, err := svc.GenerateRefreshToken(7, user.RoleUser)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, jwt.TokenTypeRefresh, claims.TokenType)
}

func TestService_ValidateToken_Errors(t *testing.T) {
	svc := jwt.NewService("secret", -time.Minute, time.Hour)

	expired, err := svc.GenerateAccessToken(1, user.RoleUser)
	require.NoError(t, err)

	_, err = svc.ValidateToken(expired)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)

	other := jwt.NewService("another-secret", time.Minute, time.Hour)
	foreign, err := other.GenerateAccessToken(1, user.RoleUser)
	require.NoError(t, err)

	_, err = svc.ValidateToken(foreign)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	_, err = svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestNewServiceFromConfig(t *testing.T) {
	t.Run("正常系: 設定値の期間でサービスを生成する", func(t *testing.T) {
		svc, err := jwt.NewServiceFromConfig(config.NewTestConfig().JWT)
		require.NoError(t, err)

		assert.Equal(t, 15*time.Minute, svc.AccessTokenDuration())
		assert.Equal(t, 168*time.Hour, svc.RefreshTokenDuration())
	})

	t.Run("異常系: 不正な期間はエラー", func(t *testing.T) {
		cfg := config.NewTestConfig().JWT
		cfg.RefreshTokenDuration = "a week"

		_, err := jwt.NewServiceFromConfig(cfg)
		assert.ErrorContains(t, err, "JWT_REFRESH_TOKEN_DURATION")
	})
}

//go:build e2e

package auth_test

import (
	"net/http"
	"testing"
	"time"

	"car-rental-api/internal/domain/user"
	"car-rental-api/internal/handler/dto/request"
	"car-rental-api/internal/handler/dto/response"
	"car-rental-api/internal/pkg/cookie"
	"car-rental-api/tests/common/authtest"
	"car-rental-api/tests/common/dbtest"
	"car-rental-api/tests/common/httptest"
	"car-rental-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	refreshURL  = "/api/auth/refresh"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) TestRegister() {
	tests := []struct {
		name           string
		body           request.RegisterRequest
		expectedStatus int
		expectedRole   string
		errorField     string
		description    string
	}{
		{
			name: "一般ユーザーの登録",
			body: request.RegisterRequest{
				Email: "new-user@example.com", Password: "password123", Name: "New", Surname: "User",
			},
			expectedStatus: http.StatusCreated,
			expectedRole:   "user",
			description:    "ロール省略時はuserとして登録されること",
		},
		{
			name: "加盟店の登録",
			body: request.RegisterRequest{
				Email: "new-merchant@example.com", Password: "password123", Name: "New", Surname: "Merchant",
				Role: "Merchant", CompanyName: "New Rentals",
			},
			expectedStatus: http.StatusCreated,
			expectedRole:   "merchant",
			description:    "ロールは大文字小文字を区別せず加盟店プロフィールも作成されること",
		},
		{
			name: "会社名なしの加盟店",
			body: request.RegisterRequest{
				Email: "no-company@example.com", Password: "password123", Name: "No", Surname: "Company",
				Role: "merchant",
			},
			expectedStatus: http.StatusBadRequest,
			errorField:     "company_name",
			description:    "加盟店には会社名が必須であること",
		},
		{
			name: "短すぎるパスワード",
			body: request.RegisterRequest{
				Email: "weak@example.com", Password: "short", Name: "Weak", Surname: "Password",
			},
			expectedStatus: http.StatusBadRequest,
			errorField:     "password",
			description:    "8文字未満のパスワードは拒否されること",
		},
		{
			name: "不正なメールアドレス",
			body: request.RegisterRequest{
				Email: "not-an-email", Password: "password123", Name: "Bad", Surname: "Email",
			},
			expectedStatus: http.StatusBadRequest,
			errorField:     "email",
			description:    "メールアドレス形式が検証されること",
		},
		{
			name: "不正なロール",
			body: request.RegisterRequest{
				Email: "admin@example.com", Password: "password123", Name: "Bad", Surname: "Role",
				Role: "admin",
			},
			expectedStatus: http.StatusBadRequest,
			errorField:     "role",
			description:    "user/merchant以外のロールは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, tt.body, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus != http.StatusCreated {
				httptest.AssertErrorField(t, w, tt.errorField)
				return
			}

			var res response.RegisterResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
			require.Equal(t, "User registered successfully", res.Message)
			require.Equal(t, tt.body.Email, res.User.Email)
			require.Equal(t, tt.expectedRole, res.User.Role)
			require.NotContains(t, w.Body.String(), "password", "レスポンスにパスワード情報が含まれている")

			if tt.expectedRole == "merchant" {
				var companyName string
				err := s.DB.QueryRow(t.Context(),
					"SELECT company_name FROM merchants WHERE user_id = $1", res.User.ID).Scan(&companyName)
				require.NoError(t, err)
				require.Equal(t, tt.body.CompanyName, companyName)
			}
		})
	}

	s.Run("重複したメールアドレス", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, "taken@example.com", string(user.RoleUser))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, request.RegisterRequest{
			Email: "taken@example.com", Password: "password123", Name: "Dup", Surname: "User",
		}, "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "User already exists")
	})

	s.Run("必須項目の欠落", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL,
			map[string]string{"email": "missing@example.com"}, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Email, password, name and surname are required")
	})
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "正常なログイン",
			email:          "login@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusOK,
			description:    "有効な認証情報でログインできること",
		},
		{
			name:           "存在しないユーザー",
			email:          "nonexistent@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusUnauthorized,
			description:    "存在しないユーザーでログインできないこと",
		},
		{
			name:           "間違ったパスワード",
			email:          "login@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			description:    "間違ったパスワードでログインできないこと",
		},
		{
			name:           "空のメールアドレス",
			email:          "",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusBadRequest,
			description:    "空のメールアドレスは拒否されること",
		},
		{
			name:           "空のパスワード",
			email:          "login@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
			description:    "空のパスワードは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			dbtest.CreateTestUser(t, s.DB, "login@example.com", string(user.RoleUser))

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				var loginRes response.LoginResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &loginRes))
				require.Equal(t, "Login successful", loginRes.Message)
				require.Equal(t, tt.email, loginRes.User.Email)

				access := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
				refresh := httptest.ExtractCookie(w, cookie.RefreshTokenCookieName)
				require.NotNil(t, access, "アクセストークンのCookieがない")
				require.NotNil(t, refresh, "リフレッシュトークンのCookieがない")
				require.True(t, access.HttpOnly, "アクセストークンのCookieがHttpOnlyでない")
			} else {
				require.Nil(t, httptest.ExtractCookie(w, cookie.AccessTokenCookieName))
			}
		})
	}
}

func (s *authSuite) TestRefresh() {
	s.Run("正常なリフレッシュ", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, "refresh@example.com", string(user.RoleUser))

		login := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "refresh@example.com", Password: dbtest.TestPassword}, "")
		require.Equal(t, http.StatusOK, login.Code)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil,
			[]*http.Cookie{httptest.ExtractCookie(login, cookie.RefreshTokenCookieName)}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		access := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
		require.NotNil(t, access)
		require.NotEmpty(t, access.Value, "新しいアクセストークンが空")

		me := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, access.Value)
		require.Equal(t, http.StatusOK, me.Code, "更新後のアクセストークンが無効")
	})

	s.Run("無効なリフレッシュトークン", func() {
		t := s.T()

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil,
			[]*http.Cookie{{Name: cookie.RefreshTokenCookieName, Value: "invalid-refresh-token"}}, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid refresh token")
	})

	s.Run("Cookieなし", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("正常なログアウト", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, "logout@example.com", string(user.RoleUser))

		login := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "logout@example.com", Password: dbtest.TestPassword}, "")
		require.Equal(t, http.StatusOK, login.Code)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, logoutURL, nil, httptest.ExtractCookies(login), "")
		require.Equal(t, http.StatusOK, w.Code)

		cleared := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
		require.NotNil(t, cleared)
		require.Empty(t, cleared.Value, "アクセストークンのCookieが消えていない")
	})

	s.Run("トークンなし", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Authentication required")
	})
}

func (s *authSuite) TestMe() {
	s.Run("一般ユーザーの情報取得", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "me-user@example.com", string(user.RoleUser))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var res response.UserResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, "me-user@example.com", res.Email)
		require.Equal(t, "user", res.Role)
		require.Nil(t, res.CompanyName)
		require.NotContains(t, w.Body.String(), "password", "レスポンスにパスワード情報が含まれている")
	})

	s.Run("加盟店の情報取得", func() {
		t := s.T()
		_, token := authtest.CreateMerchantAndLogin(t, s.DB, s.Router, "me-merchant@example.com", "Me Rentals")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var res response.UserResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, "merchant", res.Role)
		require.NotNil(t, res.CompanyName)
		require.Equal(t, "Me Rentals", *res.CompanyName)
	})

	s.Run("無効なトークン", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "invalid-token")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *authSuite) TestTokenExpiry() {
	s.Run("期限切れトークンの拒否", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "expiry@example.com", string(user.RoleUser))

		expiredToken := authtest.NewJWTHelper(s.Config.JWT).CreateExpiredToken(t, userID, user.RoleUser)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expiredToken)
		require.Equal(t, http.StatusUnauthorized, w.Code, "期限切れトークンは拒否されるべき")
	})

	s.Run("リフレッシュトークンではAPIにアクセスできない", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "refresh-as-access@example.com", string(user.RoleUser))

		refreshToken := authtest.NewJWTHelper(s.Config.JWT).CreateRefreshToken(t, userID, user.RoleUser)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, refreshToken)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestConcurrentLogin() {
	s.Run("同時ログイン", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, "concurrent@example.com", string(user.RoleUser))

		token1 := authtest.LoginUser(t, s.Router, "concurrent@example.com", dbtest.TestPassword)
		time.Sleep(1100 * time.Millisecond) // iat is second-granular
		token2 := authtest.LoginUser(t, s.Router, "concurrent@example.com", dbtest.TestPassword)

		require.NotEqual(t, token1, token2, "同時ログインで同じトークンが返された")

		w1 := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token1)
		w2 := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token2)
		require.Equal(t, http.StatusOK, w1.Code, "最初のトークンが無効")
		require.Equal(t, http.StatusOK, w2.Code, "二番目のトークンが無効")
	})
}

func (s *authSuite) TestCoreRoutes() {
	s.Run("ウェルカムメッセージ", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var res response.MessageResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, "Welcome to the Car Rental API!", res.Message)
	})

	s.Run("ヘルスチェック", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/health", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
	})
}

//go:build unit

package httperr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"car-rental-api/internal/handler/httperr"
	"car-rental-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type body struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail map[string]any `json:"detail"`
}

func serve(t *testing.T, err error) (int, body) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	httperr.FromError(c, err)

	var b body
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	return w.Code, b
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
		field   string
	}{
		{"バリデーション", errs.Validation("per_page", "per_page must be a positive integer"), http.StatusBadRequest, "per_page must be a positive integer", "per_page"},
		{"NotFound", errs.Define(errs.KindNotFound, "Car not found"), http.StatusNotFound, "Car not found", ""},
		{"Conflict", errs.Define(errs.KindConflict, "User already has an active rental"), http.StatusConflict, "User already has an active rental", ""},
		{"未認証", errs.Define(errs.KindUnauthenticated, "Authentication required"), http.StatusUnauthorized, "Authentication required", ""},
		{"権限不足", errs.Newk(errs.KindForbidden, "Access forbidden: Requires 'merchant' role"), http.StatusForbidden, "Access forbidden: Requires 'merchant' role", ""},
		{"永続化エラーは詳細を隠す", errs.Persistence(errors.New("connection reset"), "failed to rent car"), http.StatusInternalServerError, "Internal server error", ""},
		{"種別なし", errors.New("boom"), http.StatusInternalServerError, "Internal server error", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, b := serve(t, tt.err)

			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.message, b.Error.Message)
			if tt.field != "" {
				assert.Equal(t, tt.field, b.Detail["field"])
			} else {
				assert.Nil(t, b.Detail)
			}
		})
	}
}

func TestAbortWithError_NilPanics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Panics(t, func() {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "bad", nil)
	})
}

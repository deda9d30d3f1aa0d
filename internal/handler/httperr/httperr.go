package httperr

import (
	"net/http"

	"car-rental-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

type FieldDetail struct {
	Field string `json:"field"`
}

const internalMessage = "Internal server error"

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// FromError aborts with the status of the error's kind. Errors without a kind
// and persistence failures never leak their message.
func FromError(c *gin.Context, err error) {
	e, ok := errs.As(err)
	if !ok {
		AbortWithError(c, http.StatusInternalServerError, err, internalMessage, nil)
		return
	}

	status := StatusOf(e.Kind)
	if status == http.StatusInternalServerError {
		AbortWithError(c, status, err, internalMessage, nil)
		return
	}

	var detail any
	if e.Kind == errs.KindValidation && e.Field != "" {
		detail = FieldDetail{Field: e.Field}
	}
	AbortWithError(c, status, err, e.Message(), detail)
}

func StatusOf(kind errs.Kind) int {
	switch kind {
	case errs.KindValidation:
		return http.StatusBadRequest
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindConflict:
		return http.StatusConflict
	case errs.KindUnauthenticated:
		return http.StatusUnauthorized
	case errs.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

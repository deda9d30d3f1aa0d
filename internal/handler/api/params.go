package api

import (
	"net/http"
	"strconv"

	"car-rental-api/internal/handler/httperr"
	"car-rental-api/internal/handler/middleware"
	"car-rental-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// RequireAuth always runs first, so a missing principal is a routing mistake.
var errMissingPrincipal = errs.New("principal missing from context")

// queryParams flattens the query string to the first value of each key.
func queryParams(c *gin.Context) map[string]string {
	raw := c.Request.URL.Query()
	params := make(map[string]string, len(raw))
	for k, v := range raw {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	return params
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		httperr.FromError(c, errs.Validation(name, name+" must be a positive integer"))
		return 0, false
	}
	return id, true
}

func currentUserID(c *gin.Context) (int64, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingPrincipal, "Authentication required", nil)
	}
	return userID, ok
}

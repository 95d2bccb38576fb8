package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/polkiloo/gpsolutions/internal/pkg/auth"
	"github.com/polkiloo/gpsolutions/internal/server/http/dto"
)

// AdminKeyHeader carries the admin key on admin endpoints.
const AdminKeyHeader = "X-Admin-Key"

// AdminVerifier checks a presented admin key.
type AdminVerifier interface {
	Verify(key string) error
}

// AdminRequired guards admin endpoints.
func AdminRequired(verifier AdminVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := verifier.Verify(c.GetHeader(AdminKeyHeader))
		switch {
		case err == nil:
			c.Next()
		case errors.Is(err, pkgAuth.ErrAdminDisabled):
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "Admin access disabled"})
		default:
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid admin key"})
		}
	}
}

package middleware

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
)

// Platform roles. Officials run the barangay side, collectors update
// schedules in the field, residents use the public app.
const (
	RoleOfficial  = "official"
	RoleCollector = "collector"
	RoleResident  = "resident"
)

// RequireRole returns middleware that allows only the listed roles.
// Officials always pass: they administer everything collectors and
// residents can touch.
func RequireRole(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := GetRole(c.Request.Context())
		if role == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code": "FORBIDDEN", "message": "no role in context",
			})
			return
		}

		if role == RoleOfficial || slices.Contains(allowed, role) {
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"code": "FORBIDDEN", "message": "insufficient role",
		})
	}
}

package policy

import (
	"net/http"

	"restaurant-api/middleware"

	"github.com/gin-gonic/gin"
)

// Require returns gin middleware enforcing a role-gated action. It consults
// the same rule table as Check, so routes and handlers share one policy.
// Actions with ownership context cannot be gated here; those handlers call
// Check directly once the resource is loaded.
func Require(action Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := Check(middleware.Principal(c), action, nil); err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		c.Next()
	}
}

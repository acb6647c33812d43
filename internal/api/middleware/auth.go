package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/auth"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/pkg/response"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/pkg/token"
)

// ContextUsernameKey holds the admin username once AdminAuth passes.
const ContextUsernameKey = "admin_username"

// AdminAuth requires a valid admin Bearer token.
func AdminAuth(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			response.Unauthorized(c, "missing bearer token")
			return
		}
		claims, err := tokens.Parse(raw)
		if err != nil || claims.Role != auth.RoleAdmin {
			response.Unauthorized(c, "invalid or expired token")
			return
		}
		c.Set(ContextUsernameKey, claims.Username)
		c.Next()
	}
}

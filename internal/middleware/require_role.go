package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopease_front_end/internal/models"
)

// RequireRole borne un groupe de routes à un rôle. À poser après AuthRequired.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != string(role) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Accès réservé au rôle " + string(role)})
			c.Abort()
			return
		}
		c.Next()
	}
}

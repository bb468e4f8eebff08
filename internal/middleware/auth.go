package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"shopease_front_end/internal/session"
)

// AuthRequired relit la session cookie et pose token/email/role dans le
// contexte gin. Le token est vérifié côté passerelle uniquement pour son
// expiration : la signature appartient au backend, qui revalide tout.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth, ok := session.Current(c.Request)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié", "redirect": "/login"})
			c.Abort()
			return
		}

		if tokenExpired(auth.Token) {
			log.Printf("❌ Token expiré pour %s, session vidée", auth.Email)
			session.Clear(c.Writer, c.Request)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expirée", "redirect": "/login"})
			c.Abort()
			return
		}

		c.Set("token", auth.Token)
		c.Set("email", auth.Email)
		c.Set("role", string(auth.Role))
		c.Next()
	}
}

// tokenExpired lit la claim exp sans vérifier la signature (on n'a pas le
// secret du backend, et on n'en a pas besoin : un token falsifié sera rejeté
// là-bas). Un token illisible passe, le backend tranchera.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopease_front_end/internal/models"
	"shopease_front_end/internal/session"
)

func protectedRouter(role models.Role, reached *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	os.Setenv("SESSION_SECRET", "secret-de-test")
	session.Init()
	r := gin.New()
	r.GET("/protected", AuthRequired(), RequireRole(role), func(c *gin.Context) {
		*reached = true
		c.JSON(http.StatusOK, gin.H{"email": c.GetString("email")})
	})
	return r
}

// signToken signe un JWT avec un secret quelconque : la passerelle ne vérifie
// que la claim exp, jamais la signature.
func signToken(t *testing.T, exp time.Time) string {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "a@test.fr",
		"exp": exp.Unix(),
	})
	signed, err := tok.SignedString([]byte("secret-du-backend"))
	require.NoError(t, err)
	return signed
}

func sessionCookie(t *testing.T, token string, role models.Role) *http.Cookie {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, session.Save(w, r, session.Auth{Token: token, Email: "a@test.fr", Role: role}))
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies[0]
}

func TestAuthRequiredRejectsExpiredTokenWithoutBackend(t *testing.T) {
	reached := false
	r := protectedRouter(models.RoleBuyer, &reached)

	// Aucun faux backend : le rejet doit être entièrement local.
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(sessionCookie(t, signToken(t, time.Now().Add(-time.Hour)), models.RoleBuyer))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached, "le handler protégé ne doit jamais être atteint")
	assert.Contains(t, w.Body.String(), "/login")

	// La session doit être vidée dans la même réponse.
	cleared := false
	for _, c := range w.Result().Cookies() {
		if c.Name == "shopease_session" && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "le cookie de session doit être invalidé")
}

func TestAuthRequiredPassesValidToken(t *testing.T) {
	reached := false
	r := protectedRouter(models.RoleBuyer, &reached)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(sessionCookie(t, signToken(t, time.Now().Add(time.Hour)), models.RoleBuyer))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, reached)
	assert.Contains(t, w.Body.String(), "a@test.fr")
}

func TestAuthRequiredLetsUnreadableTokenThrough(t *testing.T) {
	// Un token illisible n'est pas rejeté ici : le backend tranchera avec un
	// 401 qui videra la session.
	reached := false
	r := protectedRouter(models.RoleBuyer, &reached)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(sessionCookie(t, "pas-un-jwt", models.RoleBuyer))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, reached)
}

func TestAuthRequiredRejectsAnonymous(t *testing.T) {
	reached := false
	r := protectedRouter(models.RoleBuyer, &reached)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached)
}

func TestRequireRoleBlocksOtherRoles(t *testing.T) {
	reached := false
	r := protectedRouter(models.RoleSeller, &reached)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(sessionCookie(t, signToken(t, time.Now().Add(time.Hour)), models.RoleBuyer))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, reached)
}

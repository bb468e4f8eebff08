package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopease_front_end/internal/middleware"
	"shopease_front_end/internal/models"
	"shopease_front_end/internal/session"
	"shopease_front_end/internal/shopease"
)

// Login échange les identifiants contre un token backend et remplit la
// session cookie (token, email, rôle — rien d'autre n'est conservé).
func Login(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil || creds.Email == "" || creds.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email et mot de passe requis"})
		return
	}

	res, err := shopease.API.Login(c.Request.Context(), creds)
	if err != nil {
		var apiErr *shopease.APIError
		if errors.Is(err, shopease.ErrSessionExpired) || (errors.As(err, &apiErr) && apiErr.StatusCode < 500) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou mot de passe invalide"})
			return
		}
		FailRequest(c, err, "Connexion impossible")
		return
	}

	role, ok := models.ParseRole(res.Role)
	if !ok {
		log.Printf("❌ Rôle inconnu renvoyé par le backend: %q", res.Role)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Connexion impossible"})
		return
	}

	auth := session.Auth{Token: res.Token, Email: creds.Email, Role: role}
	if err := session.Save(c.Writer, c.Request, auth); err != nil {
		log.Printf("❌ Erreur écriture session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Connexion impossible"})
		return
	}

	middleware.ResetLoginAttempts(creds.Email)
	log.Printf("✅ Connexion de %s (%s)", creds.Email, role)

	c.JSON(http.StatusOK, gin.H{
		"message":  "Connexion réussie",
		"role":     role,
		"redirect": role.HomePath(),
	})
}

// Register crée un compte acheteur ou vendeur. Le rôle admin ne s'attribue
// que depuis le tableau de bord admin.
func Register(c *gin.Context) {
	var input models.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email et mot de passe requis"})
		return
	}

	role, ok := models.ParseRole(input.Role)
	if !ok || role == models.RoleAdmin {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rôle invalide"})
		return
	}

	user, err := shopease.API.Register(c.Request.Context(), input)
	if err != nil {
		FailRequest(c, err, "Inscription impossible")
		return
	}

	log.Printf("✅ Compte créé: %s (%s)", user.Email, role)
	c.JSON(http.StatusCreated, gin.H{"message": "Compte créé, vous pouvez vous connecter", "user": user})
}

// Logout vide la session locale. Le token backend expirera de lui-même.
func Logout(c *gin.Context) {
	session.Clear(c.Writer, c.Request)
	c.JSON(http.StatusOK, gin.H{"message": "Déconnecté"})
}

// Nav décrit le menu et la page d'accueil du rôle courant. Public : un
// visiteur non connecté reçoit le menu vitrine.
func Nav(c *gin.Context) {
	auth, ok := session.Current(c.Request)
	if !ok {
		c.JSON(http.StatusOK, gin.H{
			"authenticated": false,
			"entries":       models.Role("").NavEntries(),
			"home":          "/",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"email":         auth.Email,
		"role":          auth.Role,
		"entries":       auth.Role.NavEntries(),
		"home":          auth.Role.HomePath(),
	})
}

package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shopease_front_end/internal/session"
	"shopease_front_end/internal/shopease"
)

// FailRequest traduit une erreur d'appel backend en réponse utilisateur :
// 401 → session vidée + redirection login, refus backend → son code avec un
// message court, panne réseau → 502. Jamais de détail technique côté client.
// Les champs extra enrichissent le corps d'erreur (sauf sur le 401, où seule
// la redirection compte).
func FailRequest(c *gin.Context, err error, fallback string, extra ...gin.H) {
	if errors.Is(err, shopease.ErrSessionExpired) {
		session.Clear(c.Writer, c.Request)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expirée", "redirect": "/login"})
		return
	}

	body := gin.H{"error": fallback}
	for _, fields := range extra {
		for k, v := range fields {
			body[k] = v
		}
	}

	var apiErr *shopease.APIError
	if errors.As(err, &apiErr) {
		log.Printf("⚠️ Refus backend (%d): %s", apiErr.StatusCode, apiErr.Message)
		c.JSON(apiErr.StatusCode, body)
		return
	}

	log.Printf("❌ Erreur d'appel backend: %v", err)
	c.JSON(http.StatusBadGateway, body)
}

// ParseID lit un paramètre d'URL numérique. false = réponse 400 déjà écrite.
func ParseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant invalide"})
		return 0, false
	}
	return id, true
}

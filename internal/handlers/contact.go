package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopease_front_end/internal/models"
	"shopease_front_end/internal/shopease"
)

// Contact relaie le formulaire de support. La validation bloque avant tout
// appel réseau, l'envoi d'email éventuel reste côté backend.
func Contact(c *gin.Context) {
	var msg models.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil || msg.Name == "" || msg.Email == "" || msg.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nom, email et message requis"})
		return
	}

	if err := shopease.API.SendContact(c.Request.Context(), msg); err != nil {
		FailRequest(c, err, "Impossible d'envoyer le message")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message envoyé, nous vous répondrons vite"})
}

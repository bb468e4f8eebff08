package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopease_front_end/internal/handlers"
	"shopease_front_end/internal/models"
	"shopease_front_end/internal/shopease"
)

// ListUsers sert le tableau de gestion des comptes, filtre texte délégué
// au backend.
func ListUsers(c *gin.Context) {
	users, err := shopease.API.AdminUsers(c.Request.Context(), c.GetString("token"), c.Query("q"))
	if err != nil {
		handlers.FailRequest(c, err, "Impossible de charger les utilisateurs")
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}

// SetUserRole change le rôle d'un compte. Le rôle est contrôlé avant
// l'appel réseau.
func SetUserRole(c *gin.Context) {
	id, ok := handlers.ParseID(c, "id")
	if !ok {
		return
	}

	role, ok := models.ParseRole(c.Query("role"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rôle inconnu"})
		return
	}

	ctx := c.Request.Context()
	token := c.GetString("token")

	user, err := shopease.API.AdminSetUserRole(ctx, token, id, role)
	if err != nil {
		handlers.FailRequest(c, err, "Impossible de changer le rôle")
		return
	}

	fresh, err := shopease.API.AdminUsers(ctx, token, "")
	if err != nil {
		handlers.FailRequest(c, err, "Rôle changé mais relecture impossible")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rôle mis à jour", "user": user, "users": fresh})
}

// DeleteUser supprime un compte et renvoie la liste relue.
func DeleteUser(c *gin.Context) {
	id, ok := handlers.ParseID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	token := c.GetString("token")

	if err := shopease.API.AdminDeleteUser(ctx, token, id); err != nil {
		handlers.FailRequest(c, err, "Impossible de supprimer l'utilisateur")
		return
	}

	fresh, err := shopease.API.AdminUsers(ctx, token, "")
	if err != nil {
		handlers.FailRequest(c, err, "Utilisateur supprimé mais relecture impossible")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Utilisateur supprimé", "users": fresh})
}

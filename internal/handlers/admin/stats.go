package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopease_front_end/internal/handlers"
	"shopease_front_end/internal/shopease"
)

// Stats alimente les quatre cartes du tableau de bord.
func Stats(c *gin.Context) {
	stats, err := shopease.API.AdminStats(c.Request.Context(), c.GetString("token"))
	if err != nil {
		handlers.FailRequest(c, err, "Impossible de charger les statistiques")
		return
	}
	c.JSON(http.StatusOK, stats)
}

package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopease_front_end/internal/handlers"
	"shopease_front_end/internal/models"
	"shopease_front_end/internal/orderstatus"
	"shopease_front_end/internal/shopease"
)

// adminOrderView expose, en plus de la commande, les statuts que la table
// de transitions autorise depuis le statut courant. L'administration suit
// la même table que les vendeurs, elle ne saute pas d'étapes.
type adminOrderView struct {
	models.Order
	Badge         string               `json:"badge"`
	AllowedStatus []orderstatus.Status `json:"allowedStatus"`
}

func newAdminOrderView(o models.Order) adminOrderView {
	return adminOrderView{
		Order:         o,
		Badge:         orderstatus.Badge(o.Status),
		AllowedStatus: orderstatus.Next(o.Status),
	}
}

func adminOrderViews(orders []models.Order) []adminOrderView {
	views := make([]adminOrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, newAdminOrderView(o))
	}
	return views
}

// ListOrders : toutes les commandes de la plateforme, filtre statut délégué
// au backend.
func ListOrders(c *gin.Context) {
	var status orderstatus.Status
	if raw := c.Query("status"); raw != "" && raw != "ALL" {
		status = orderstatus.Status(raw)
		if !orderstatus.Valid(status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Statut inconnu"})
			return
		}
	}

	orders, err := shopease.API.AdminOrders(c.Request.Context(), c.GetString("token"), status)
	if err != nil {
		handlers.FailRequest(c, err, "Impossible de charger les commandes")
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": adminOrderViews(orders), "count": len(orders)})
}

// GetOrder : la fiche détaillée d'une commande, avec les actions permises.
func GetOrder(c *gin.Context) {
	id, ok := handlers.ParseID(c, "id")
	if !ok {
		return
	}

	order, err := shopease.API.AdminOrder(c.Request.Context(), c.GetString("token"), id)
	if err != nil {
		handlers.FailRequest(c, err, "Commande introuvable")
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": newAdminOrderView(order)})
}

// SetStatus force un statut depuis la console d'administration. La table de
// transitions s'applique aussi ici : un saut illégal est bloqué avant tout
// appel réseau.
func SetStatus(c *gin.Context) {
	id, ok := handlers.ParseID(c, "id")
	if !ok {
		return
	}

	target := orderstatus.Status(c.Query("status"))
	if !orderstatus.Valid(target) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Statut inconnu"})
		return
	}

	ctx := c.Request.Context()
	token := c.GetString("token")

	current, err := shopease.API.AdminOrder(ctx, token, id)
	if err != nil {
		handlers.FailRequest(c, err, "Commande introuvable")
		return
	}

	if !orderstatus.CanTransition(current.Status, target) {
		c.JSON(http.StatusConflict, gin.H{
			"error": "Transition de statut interdite",
			"order": newAdminOrderView(current),
		})
		return
	}

	if _, err := shopease.API.AdminSetOrderStatus(ctx, token, id, target); err != nil {
		if errors.Is(err, shopease.ErrSessionExpired) {
			handlers.FailRequest(c, err, "Impossible de changer le statut")
			return
		}
		// Refus backend : on relit l'état authoritaire avant de répondre.
		fresh, ferr := shopease.API.AdminOrder(ctx, token, id)
		if ferr != nil {
			handlers.FailRequest(c, ferr, "Impossible de changer le statut")
			return
		}
		c.JSON(http.StatusConflict, gin.H{
			"error": "Impossible de changer le statut",
			"order": newAdminOrderView(fresh),
		})
		return
	}

	fresh, err := shopease.API.AdminOrder(ctx, token, id)
	if err != nil {
		handlers.FailRequest(c, err, "Statut changé mais relecture impossible")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Statut mis à jour", "order": newAdminOrderView(fresh)})
}

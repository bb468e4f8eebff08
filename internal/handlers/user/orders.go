package user

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"shopease_front_end/internal/handlers"
	"shopease_front_end/internal/models"
	"shopease_front_end/internal/orderstatus"
	"shopease_front_end/internal/shopease"
)

// buyerOrderView décore une commande de tout ce que la page "Mes commandes"
// affichait : badge, barre de progression, total et droit d'annulation —
// calculés par le module de statut partagé, pas par la vue.
type buyerOrderView struct {
	models.Order
	Badge       string               `json:"badge"`
	Steps       []orderstatus.Status `json:"steps"`
	StepIndex   int                  `json:"stepIndex"`
	Cancellable bool                 `json:"cancellable"`
	TotalPrice  string               `json:"totalPrice"`
}

func newBuyerOrderView(o models.Order) buyerOrderView {
	return buyerOrderView{
		Order:       o,
		Badge:       orderstatus.Badge(o.Status),
		Steps:       orderstatus.Steps(),
		StepIndex:   orderstatus.StepIndex(o.Status),
		Cancellable: orderstatus.CanCancel(o.Status),
		TotalPrice:  o.Total().StringFixed(2),
	}
}

func buyerOrderViews(orders []models.Order) []buyerOrderView {
	views := make([]buyerOrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, newBuyerOrderView(o))
	}
	return views
}

// matchOrder : filtre texte local de la liste (nom de produit).
func matchOrder(o models.Order, text string) bool {
	if text == "" {
		return true
	}
	name := ""
	if o.Product != nil {
		name = o.Product.Name
	}
	return strings.Contains(strings.ToLower(name), text)
}

// ListOrders sert "Mes commandes" avec filtres statut et texte appliqués
// localement sur la lecture fraîche.
func ListOrders(c *gin.Context) {
	orders, err := shopease.API.BuyerOrders(c.Request.Context(), c.GetString("token"))
	if err != nil {
		handlers.FailRequest(c, err, "Impossible de charger les commandes")
		return
	}

	statusFilter := orderstatus.Status(c.DefaultQuery("status", "ALL"))
	text := strings.ToLower(strings.TrimSpace(c.Query("q")))

	views := make([]buyerOrderView, 0, len(orders))
	for _, o := range orders {
		if statusFilter != "ALL" && o.Status != statusFilter {
			continue
		}
		if !matchOrder(o, text) {
			continue
		}
		views = append(views, newBuyerOrderView(o))
	}

	c.JSON(http.StatusOK, gin.H{"orders": views, "total": len(orders)})
}

// CancelOrder annule une commande de l'acheteur. L'illégalité est bloquée
// avant tout appel réseau ; si le backend refuse quand même (commande
// avancée entre-temps), on renvoie son état authoritaire relu.
func CancelOrder(c *gin.Context) {
	id, ok := handlers.ParseID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	token := c.GetString("token")

	orders, err := shopease.API.BuyerOrders(ctx, token)
	if err != nil {
		handlers.FailRequest(c, err, "Impossible de charger les commandes")
		return
	}

	var current *models.Order
	for i := range orders {
		if orders[i].ID == id {
			current = &orders[i]
			break
		}
	}
	if current == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	if !orderstatus.CanCancel(current.Status) {
		c.JSON(http.StatusConflict, gin.H{
			"error": "Cette commande ne peut plus être annulée",
			"order": newBuyerOrderView(*current),
		})
		return
	}

	if _, err := shopease.API.CancelOrder(ctx, token, id); err != nil {
		if errors.Is(err, shopease.ErrSessionExpired) {
			handlers.FailRequest(c, err, "Impossible d'annuler la commande")
			return
		}
		// Refus backend : on se resynchronise plutôt que de croire l'état local.
		fresh, ferr := shopease.API.BuyerOrders(ctx, token)
		if ferr != nil {
			handlers.FailRequest(c, ferr, "Impossible d'annuler la commande")
			return
		}
		c.JSON(http.StatusConflict, gin.H{
			"error":  "Impossible d'annuler la commande",
			"orders": buyerOrderViews(fresh),
		})
		return
	}

	fresh, err := shopease.API.BuyerOrders(ctx, token)
	if err != nil {
		handlers.FailRequest(c, err, "Commande annulée mais relecture impossible")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Commande annulée",
		"orders":  buyerOrderViews(fresh),
	})
}

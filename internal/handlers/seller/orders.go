package seller

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"shopease_front_end/internal/handlers"
	"shopease_front_end/internal/models"
	"shopease_front_end/internal/orderstatus"
	"shopease_front_end/internal/shopease"
)

// sellerOrderView ajoute à chaque commande les actions que la table de
// transitions autorise : le navigateur n'a plus sa propre copie de la table.
type sellerOrderView struct {
	models.Order
	Badge       string               `json:"badge"`
	NextActions []orderstatus.Status `json:"nextActions"`
	NextStep    orderstatus.Status   `json:"nextStep,omitempty"`
}

func newSellerOrderView(o models.Order) sellerOrderView {
	view := sellerOrderView{
		Order:       o,
		Badge:       orderstatus.Badge(o.Status),
		NextActions: orderstatus.Next(o.Status),
	}
	if next, ok := orderstatus.Advance(o.Status); ok {
		view.NextStep = next
	}
	return view
}

func sellerOrderViews(orders []models.Order) []sellerOrderView {
	views := make([]sellerOrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, newSellerOrderView(o))
	}
	return views
}

func fetchSellerViews(ctx context.Context, token string, statuses []orderstatus.Status) ([]sellerOrderView, error) {
	orders, err := shopease.API.SellerOrders(ctx, token, statuses)
	if err != nil {
		return nil, err
	}
	return sellerOrderViews(orders), nil
}

// ListOrders sert "Commandes reçues". Le filtre statut part au backend
// (comme les onglets d'origine), le filtre texte reste local.
func ListOrders(c *gin.Context) {
	var statuses []orderstatus.Status
	if raw := c.Query("status"); raw != "" && raw != "ALL" {
		s := orderstatus.Status(raw)
		if !orderstatus.Valid(s) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Statut inconnu"})
			return
		}
		statuses = append(statuses, s)
	}

	views, err := fetchSellerViews(c.Request.Context(), c.GetString("token"), statuses)
	if err != nil {
		handlers.FailRequest(c, err, "Impossible de charger les commandes")
		return
	}

	if text := strings.ToLower(strings.TrimSpace(c.Query("q"))); text != "" {
		filtered := make([]sellerOrderView, 0, len(views))
		for _, v := range views {
			name := ""
			if v.Product != nil {
				name = v.Product.Name
			}
			if strings.Contains(strings.ToLower(name), text) ||
				strings.Contains(strings.ToLower(v.BuyerEmail), text) {
				filtered = append(filtered, v)
			}
		}
		views = filtered
	}

	c.JSON(http.StatusOK, gin.H{"orders": views, "count": len(views)})
}

// findOrder relit les commandes du vendeur pour connaître le statut courant
// avant de tenter une transition.
func findOrder(ctx context.Context, token string, id int64) (*models.Order, error) {
	orders, err := shopease.API.SellerOrders(ctx, token, nil)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, nil
}

// applyTransition fait le contrôle de légalité puis l'appel backend, et
// répond toujours avec une relecture fraîche de la liste.
func applyTransition(c *gin.Context, id int64, target orderstatus.Status) {
	ctx := c.Request.Context()
	token := c.GetString("token")

	current, err := findOrder(ctx, token, id)
	if err != nil {
		handlers.FailRequest(c, err, "Impossible de charger la commande")
		return
	}
	if current == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	if !orderstatus.CanTransition(current.Status, target) {
		c.JSON(http.StatusConflict, gin.H{
			"error": "Transition de statut interdite",
			"order": newSellerOrderView(*current),
		})
		return
	}

	if _, err := shopease.API.UpdateOrderStatus(ctx, token, id, target); err != nil {
		if errors.Is(err, shopease.ErrSessionExpired) {
			handlers.FailRequest(c, err, "Impossible de changer le statut")
			return
		}
		// La commande a pu bouger entre-temps : on renvoie l'état relu.
		fresh, ferr := fetchSellerViews(ctx, token, nil)
		if ferr != nil {
			handlers.FailRequest(c, ferr, "Impossible de changer le statut")
			return
		}
		c.JSON(http.StatusConflict, gin.H{
			"error":  "Impossible de changer le statut",
			"orders": fresh,
		})
		return
	}

	fresh, err := fetchSellerViews(ctx, token, nil)
	if err != nil {
		handlers.FailRequest(c, err, "Statut changé mais relecture impossible")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Statut mis à jour", "orders": fresh})
}

// UpdateStatus applique la cible choisie dans le menu déroulant.
func UpdateStatus(c *gin.Context) {
	id, ok := handlers.ParseID(c, "id")
	if !ok {
		return
	}

	target := orderstatus.Status(c.Query("status"))
	if !orderstatus.Valid(target) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Statut inconnu"})
		return
	}

	applyTransition(c, id, target)
}

// AdvanceOrder est le bouton "étape suivante" : la cible vient du chemin
// nominal, pas du navigateur.
func AdvanceOrder(c *gin.Context) {
	id, ok := handlers.ParseID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	token := c.GetString("token")

	current, err := findOrder(ctx, token, id)
	if err != nil {
		handlers.FailRequest(c, err, "Impossible de charger la commande")
		return
	}
	if current == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	next, ok := orderstatus.Advance(current.Status)
	if !ok {
		c.JSON(http.StatusConflict, gin.H{
			"error": "Aucune étape suivante pour cette commande",
			"order": newSellerOrderView(*current),
		})
		return
	}

	applyTransition(c, id, next)
}

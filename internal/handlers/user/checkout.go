package user

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopease_front_end/internal/cache"
	"shopease_front_end/internal/handlers"
	"shopease_front_end/internal/models"
	"shopease_front_end/internal/shopease"
)

// Checkout passe une commande par ligne sélectionnée, comme la page
// d'origine. La validation des quantités bloque avant le premier appel.
func Checkout(c *gin.Context) {
	var input struct {
		Items []struct {
			ProductID int64 `json:"productId"`
			Quantity  int   `json:"quantity"`
		} `json:"items"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || len(input.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Aucun article à commander"})
		return
	}
	for _, item := range input.Items {
		if item.ProductID <= 0 || item.Quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité invalide"})
			return
		}
	}

	ctx := c.Request.Context()
	token := c.GetString("token")
	email := c.GetString("email")

	placed := 0
	for _, item := range input.Items {
		_, err := shopease.API.PlaceOrder(ctx, token, models.OrderInput{
			BuyerEmail: email,
			Quantity:   item.Quantity,
			Product:    models.ProductRef{ID: item.ProductID},
		})
		if err != nil {
			log.Printf("❌ Commande refusée (produit %d, %d/%d passées): %v", item.ProductID, placed, len(input.Items), err)
			// Les lignes déjà passées restent passées : le front doit pouvoir
			// afficher un succès partiel, pas un échec global.
			handlers.FailRequest(c, err, "Impossible de passer la commande",
				gin.H{"placed": placed, "total": len(input.Items)})
			return
		}
		placed++
	}

	// Les articles commandés sortent du panier côté backend, on prévient
	// les onglets ouverts.
	cache.NotifyCart(ctx, email)

	orders, err := shopease.API.BuyerOrders(ctx, token)
	if err != nil {
		handlers.FailRequest(c, err, "Commande passée mais relecture impossible")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Commande passée avec succès",
		"placed":  placed,
		"orders":  buyerOrderViews(orders),
	})
}

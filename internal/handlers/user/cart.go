package user

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopease_front_end/internal/cache"
	"shopease_front_end/internal/handlers"
	"shopease_front_end/internal/models"
	"shopease_front_end/internal/shopease"
)

// cartView fusionne les lignes brutes du backend et calcule les totaux en
// décimal. C'est la seule forme renvoyée au navigateur.
func cartView(items []models.CartItem) gin.H {
	merged := models.MergeCart(items)
	return gin.H{
		"items":    merged,
		"count":    len(merged),
		"subtotal": models.CartSubtotal(merged).StringFixed(2),
	}
}

func fetchCartView(ctx context.Context, token, email string) (gin.H, error) {
	items, err := shopease.API.Cart(ctx, token, email)
	if err != nil {
		return nil, err
	}
	return cartView(items), nil
}

// GetCart sert la page panier.
func GetCart(c *gin.Context) {
	view, err := fetchCartView(c.Request.Context(), c.GetString("token"), c.GetString("email"))
	if err != nil {
		handlers.FailRequest(c, err, "Impossible de charger le panier")
		return
	}
	c.JSON(http.StatusOK, view)
}

// AddToCart ajoute un produit puis relit le panier entier : la réponse est
// toujours l'état authoritaire du backend, jamais un état local optimiste.
func AddToCart(c *gin.Context) {
	var input struct {
		ProductID int64 `json:"productId"`
		Quantity  int   `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.ProductID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if input.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité invalide"})
		return
	}

	ctx := c.Request.Context()
	token := c.GetString("token")
	email := c.GetString("email")

	_, err := shopease.API.AddToCart(ctx, token, models.CartInput{
		BuyerEmail: email,
		Quantity:   input.Quantity,
		Product:    models.ProductRef{ID: input.ProductID},
	})
	if err != nil {
		handlers.FailRequest(c, err, "Impossible d'ajouter au panier")
		return
	}

	view, err := fetchCartView(ctx, token, email)
	if err != nil {
		handlers.FailRequest(c, err, "Impossible de recharger le panier")
		return
	}

	cache.NotifyCart(ctx, email)
	view["message"] = "Article ajouté au panier"
	c.JSON(http.StatusOK, view)
}

// RemoveFromCart retire un produit puis relit le panier.
func RemoveFromCart(c *gin.Context) {
	productID, ok := handlers.ParseID(c, "productId")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	token := c.GetString("token")
	email := c.GetString("email")

	if err := shopease.API.RemoveFromCart(ctx, token, email, productID); err != nil {
		handlers.FailRequest(c, err, "Impossible de retirer l'article")
		return
	}

	view, err := fetchCartView(ctx, token, email)
	if err != nil {
		handlers.FailRequest(c, err, "Impossible de recharger le panier")
		return
	}

	cache.NotifyCart(ctx, email)
	view["message"] = "Article retiré du panier"
	c.JSON(http.StatusOK, view)
}

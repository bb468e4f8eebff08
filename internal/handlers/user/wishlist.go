package user

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopease_front_end/internal/handlers"
	"shopease_front_end/internal/models"
	"shopease_front_end/internal/shopease"
)

func fetchWishlistView(ctx context.Context, token, email string) (gin.H, error) {
	items, err := shopease.API.Wishlist(ctx, token, email)
	if err != nil {
		return nil, err
	}
	merged := models.MergeWishlist(items)
	return gin.H{"items": merged, "count": len(merged)}, nil
}

// GetWishlist sert la liste d'envies, dédupliquée pour l'affichage.
func GetWishlist(c *gin.Context) {
	view, err := fetchWishlistView(c.Request.Context(), c.GetString("token"), c.GetString("email"))
	if err != nil {
		handlers.FailRequest(c, err, "Impossible de charger la liste d'envies")
		return
	}
	c.JSON(http.StatusOK, view)
}

// AddToWishlist ajoute puis relit la liste complète.
func AddToWishlist(c *gin.Context) {
	var input struct {
		ProductID int64 `json:"productId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.ProductID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	ctx := c.Request.Context()
	token := c.GetString("token")
	email := c.GetString("email")

	_, err := shopease.API.AddToWishlist(ctx, token, models.WishlistInput{
		BuyerEmail: email,
		Product:    models.ProductRef{ID: input.ProductID},
	})
	if err != nil {
		handlers.FailRequest(c, err, "Impossible d'ajouter à la liste d'envies")
		return
	}

	view, err := fetchWishlistView(ctx, token, email)
	if err != nil {
		handlers.FailRequest(c, err, "Impossible de recharger la liste d'envies")
		return
	}
	view["message"] = "Article ajouté à la liste d'envies"
	c.JSON(http.StatusOK, view)
}

// RemoveFromWishlist retire puis relit.
func RemoveFromWishlist(c *gin.Context) {
	productID, ok := handlers.ParseID(c, "productId")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	token := c.GetString("token")
	email := c.GetString("email")

	if err := shopease.API.RemoveFromWishlist(ctx, token, email, productID); err != nil {
		handlers.FailRequest(c, err, "Impossible de retirer l'article")
		return
	}

	view, err := fetchWishlistView(ctx, token, email)
	if err != nil {
		handlers.FailRequest(c, err, "Impossible de recharger la liste d'envies")
		return
	}
	view["message"] = "Article retiré de la liste d'envies"
	c.JSON(http.StatusOK, view)
}

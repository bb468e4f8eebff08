package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shopease_front_end/internal/cache"
	"shopease_front_end/internal/handlers"
	"shopease_front_end/internal/models"
	"shopease_front_end/internal/shopease"
)

// ListProducts : tous les produits de la plateforme, actifs ou non.
func ListProducts(c *gin.Context) {
	products, err := shopease.API.AdminProducts(c.Request.Context(), c.GetString("token"), c.Query("q"))
	if err != nil {
		handlers.FailRequest(c, err, "Impossible de charger les produits")
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
}

// UpdateProduct modifie n'importe quel produit, peu importe le vendeur.
func UpdateProduct(c *gin.Context) {
	id, ok := handlers.ParseID(c, "id")
	if !ok {
		return
	}

	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if input.Price < 0 || input.Stock < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prix et stock doivent être positifs"})
		return
	}

	ctx := c.Request.Context()
	token := c.GetString("token")

	product, err := shopease.API.AdminUpdateProduct(ctx, token, id, input)
	if err != nil {
		handlers.FailRequest(c, err, "Impossible de modifier le produit")
		return
	}
	cache.InvalidateProducts(ctx)

	fresh, err := shopease.API.AdminProducts(ctx, token, "")
	if err != nil {
		handlers.FailRequest(c, err, "Produit modifié mais relecture impossible")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Produit modifié", "product": product, "products": fresh})
}

// ToggleProductActive active ou masque un produit du catalogue public.
func ToggleProductActive(c *gin.Context) {
	id, ok := handlers.ParseID(c, "id")
	if !ok {
		return
	}

	active, err := strconv.ParseBool(c.Query("active"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paramètre active invalide"})
		return
	}

	ctx := c.Request.Context()
	token := c.GetString("token")

	product, aerr := shopease.API.AdminToggleProductActive(ctx, token, id, active)
	if aerr != nil {
		handlers.FailRequest(c, aerr, "Impossible de changer la visibilité")
		return
	}
	cache.InvalidateProducts(ctx)

	fresh, ferr := shopease.API.AdminProducts(ctx, token, "")
	if ferr != nil {
		handlers.FailRequest(c, ferr, "Visibilité changée mais relecture impossible")
		return
	}

	message := "Produit masqué"
	if active {
		message = "Produit visible"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "product": product, "products": fresh})
}

// DeleteProduct retire définitivement un produit de la plateforme.
func DeleteProduct(c *gin.Context) {
	id, ok := handlers.ParseID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	token := c.GetString("token")

	if err := shopease.API.AdminDeleteProduct(ctx, token, id); err != nil {
		handlers.FailRequest(c, err, "Impossible de supprimer le produit")
		return
	}
	cache.InvalidateProducts(ctx)

	fresh, err := shopease.API.AdminProducts(ctx, token, "")
	if err != nil {
		handlers.FailRequest(c, err, "Produit supprimé mais relecture impossible")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Produit supprimé", "products": fresh})
}

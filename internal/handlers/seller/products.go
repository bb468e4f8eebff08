package seller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopease_front_end/internal/cache"
	"shopease_front_end/internal/catalog"
	"shopease_front_end/internal/handlers"
	"shopease_front_end/internal/models"
	"shopease_front_end/internal/shopease"
)

func fetchMyProducts(ctx context.Context, token string) ([]models.Product, error) {
	return shopease.API.SellerProducts(ctx, token)
}

// ListMyProducts sert "Mes produits", avec le même filtre/tri local que le
// catalogue public.
func ListMyProducts(c *gin.Context) {
	products, err := fetchMyProducts(c.Request.Context(), c.GetString("token"))
	if err != nil {
		handlers.FailRequest(c, err, "Impossible de charger vos produits")
		return
	}

	query := catalog.Query{
		Text:     c.Query("q"),
		Category: c.DefaultQuery("category", catalog.AllCategories),
		Sort:     c.DefaultQuery("sort", catalog.SortRelevance),
	}
	filtered := catalog.Apply(products, query)

	c.JSON(http.StatusOK, gin.H{
		"products":   filtered,
		"categories": catalog.Categories(products),
		"count":      len(filtered),
	})
}

func validateProductInput(c *gin.Context, input models.ProductInput) bool {
	if input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le nom du produit est requis"})
		return false
	}
	if input.Price < 0 || input.Stock < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prix et stock doivent être positifs"})
		return false
	}
	return true
}

// CreateProduct ajoute un produit puis renvoie la liste relue. Le cache
// catalogue est invalidé pour que les acheteurs voient le nouveau produit.
func CreateProduct(c *gin.Context) {
	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if !validateProductInput(c, input) {
		return
	}

	ctx := c.Request.Context()
	token := c.GetString("token")

	product, err := shopease.API.CreateProduct(ctx, token, input)
	if err != nil {
		handlers.FailRequest(c, err, "Impossible de créer le produit")
		return
	}
	cache.InvalidateProducts(ctx)

	fresh, err := fetchMyProducts(ctx, token)
	if err != nil {
		handlers.FailRequest(c, err, "Produit créé mais relecture impossible")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Produit créé",
		"product":  product,
		"products": fresh,
	})
}

// UpdateProduct modifie un produit du vendeur.
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
	if !validateProductInput(c, input) {
		return
	}

	ctx := c.Request.Context()
	token := c.GetString("token")

	product, err := shopease.API.UpdateProduct(ctx, token, id, input)
	if err != nil {
		handlers.FailRequest(c, err, "Impossible de modifier le produit")
		return
	}
	cache.InvalidateProducts(ctx)

	fresh, err := fetchMyProducts(ctx, token)
	if err != nil {
		handlers.FailRequest(c, err, "Produit modifié mais relecture impossible")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Produit modifié",
		"product":  product,
		"products": fresh,
	})
}

// DeleteProduct supprime un produit du vendeur.
func DeleteProduct(c *gin.Context) {
	id, ok := handlers.ParseID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	token := c.GetString("token")

	if err := shopease.API.DeleteProduct(ctx, token, id); err != nil {
		handlers.FailRequest(c, err, "Impossible de supprimer le produit")
		return
	}
	cache.InvalidateProducts(ctx)

	fresh, err := fetchMyProducts(ctx, token)
	if err != nil {
		handlers.FailRequest(c, err, "Produit supprimé mais relecture impossible")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Produit supprimé", "products": fresh})
}

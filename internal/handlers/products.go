package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopease_front_end/internal/cache"
	"shopease_front_end/internal/catalog"
	"shopease_front_end/internal/shopease"
)

// ListProducts sert la page catalogue publique : liste complète depuis le
// cache (ou le backend), puis filtre/tri local — aucun aller-retour réseau
// par frappe de recherche.
func ListProducts(c *gin.Context) {
	ctx := c.Request.Context()

	products, ok := cache.GetProducts(ctx)
	if !ok {
		var err error
		products, err = shopease.API.Products(ctx)
		if err != nil {
			FailRequest(c, err, "Impossible de charger les produits")
			return
		}
		cache.SetProducts(ctx, products)
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

// GetProduct sert la fiche produit.
func GetProduct(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}

	product, err := shopease.API.Product(c.Request.Context(), id)
	if err != nil {
		FailRequest(c, err, "Produit introuvable")
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product, "inStock": product.InStock()})
}

package shopease

import (
	"context"
	"fmt"
	"net/http"

	"shopease_front_end/internal/models"
)

// Products renvoie le catalogue public complet. Le filtre/tri fin se fait
// ensuite localement (internal/catalog), sans re-consulter le backend.
func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	err := c.do(ctx, "", http.MethodGet, "/products", nil, nil, &out)
	return out, err
}

func (c *Client) Product(ctx context.Context, id int64) (models.Product, error) {
	var out models.Product
	err := c.do(ctx, "", http.MethodGet, fmt.Sprintf("/products/%d", id), nil, nil, &out)
	return out, err
}

// SellerProducts renvoie les produits du vendeur identifié par le token.
func (c *Client) SellerProducts(ctx context.Context, token string) ([]models.Product, error) {
	var out []models.Product
	err := c.do(ctx, token, http.MethodGet, "/products/seller/me", nil, nil, &out)
	return out, err
}

func (c *Client) CreateProduct(ctx context.Context, token string, input models.ProductInput) (models.Product, error) {
	var out models.Product
	err := c.do(ctx, token, http.MethodPost, "/products", nil, input, &out)
	return out, err
}

func (c *Client) UpdateProduct(ctx context.Context, token string, id int64, input models.ProductInput) (models.Product, error) {
	var out models.Product
	err := c.do(ctx, token, http.MethodPut, fmt.Sprintf("/products/%d", id), nil, input, &out)
	return out, err
}

func (c *Client) DeleteProduct(ctx context.Context, token string, id int64) error {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil, nil)
}

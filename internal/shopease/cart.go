package shopease

import (
	"context"
	"fmt"
	"net/http"

	"shopease_front_end/internal/models"
)

// Cart renvoie les lignes brutes du panier, doublons compris. La fusion
// d'affichage (models.MergeCart) est l'affaire de l'appelant.
func (c *Client) Cart(ctx context.Context, token, email string) ([]models.CartItem, error) {
	var out []models.CartItem
	err := c.do(ctx, token, http.MethodGet, "/cart/"+email, nil, nil, &out)
	return out, err
}

func (c *Client) AddToCart(ctx context.Context, token string, input models.CartInput) (models.CartItem, error) {
	var out models.CartItem
	err := c.do(ctx, token, http.MethodPost, "/cart", nil, input, &out)
	return out, err
}

func (c *Client) RemoveFromCart(ctx context.Context, token, email string, productID int64) error {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/cart/%s/%d", email, productID), nil, nil, nil)
}

package shopease

import (
	"context"
	"fmt"
	"net/http"

	"shopease_front_end/internal/models"
)

func (c *Client) Wishlist(ctx context.Context, token, email string) ([]models.WishlistItem, error) {
	var out []models.WishlistItem
	err := c.do(ctx, token, http.MethodGet, "/wishlist/"+email, nil, nil, &out)
	return out, err
}

func (c *Client) AddToWishlist(ctx context.Context, token string, input models.WishlistInput) (models.WishlistItem, error) {
	var out models.WishlistItem
	err := c.do(ctx, token, http.MethodPost, "/wishlist", nil, input, &out)
	return out, err
}

func (c *Client) RemoveFromWishlist(ctx context.Context, token, email string, productID int64) error {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/wishlist/%s/%d", email, productID), nil, nil, nil)
}

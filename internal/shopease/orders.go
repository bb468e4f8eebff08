package shopease

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"shopease_front_end/internal/models"
	"shopease_front_end/internal/orderstatus"
)

func (c *Client) PlaceOrder(ctx context.Context, token string, input models.OrderInput) (models.Order, error) {
	var out models.Order
	err := c.do(ctx, token, http.MethodPost, "/orders", nil, input, &out)
	return out, err
}

// BuyerOrders : les commandes de l'acheteur identifié par le token.
func (c *Client) BuyerOrders(ctx context.Context, token string) ([]models.Order, error) {
	var out []models.Order
	err := c.do(ctx, token, http.MethodGet, "/orders/buyer/me", nil, nil, &out)
	return out, err
}

// SellerOrders : les commandes reçues par le vendeur, filtrables par statut
// (paramètre répétable, comme l'onglet de la vue d'origine).
func (c *Client) SellerOrders(ctx context.Context, token string, statuses []orderstatus.Status) ([]models.Order, error) {
	query := url.Values{}
	for _, s := range statuses {
		query.Add("status", string(s))
	}
	var out []models.Order
	err := c.do(ctx, token, http.MethodGet, "/orders/seller/me", query, nil, &out)
	return out, err
}

// UpdateOrderStatus fait avancer une commande côté vendeur. Le statut passe
// en paramètre de requête, pas dans le corps.
func (c *Client) UpdateOrderStatus(ctx context.Context, token string, id int64, status orderstatus.Status) (models.Order, error) {
	query := url.Values{"status": {string(status)}}
	var out models.Order
	err := c.do(ctx, token, http.MethodPut, fmt.Sprintf("/orders/%d/status", id), query, nil, &out)
	return out, err
}

func (c *Client) CancelOrder(ctx context.Context, token string, id int64) (models.Order, error) {
	var out models.Order
	err := c.do(ctx, token, http.MethodPut, fmt.Sprintf("/orders/%d/cancel", id), nil, nil, &out)
	return out, err
}

package shopease

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"shopease_front_end/internal/models"
	"shopease_front_end/internal/orderstatus"
)

//
// --- UTILISATEURS ---
//

func (c *Client) AdminUsers(ctx context.Context, token, q string) ([]models.User, error) {
	query := url.Values{}
	if q != "" {
		query.Set("q", q)
	}
	var out []models.User
	err := c.do(ctx, token, http.MethodGet, "/admin/users", query, nil, &out)
	return out, err
}

func (c *Client) AdminSetUserRole(ctx context.Context, token string, id int64, role models.Role) (models.User, error) {
	query := url.Values{"role": {string(role)}}
	var out models.User
	err := c.do(ctx, token, http.MethodPut, fmt.Sprintf("/admin/users/%d/role", id), query, nil, &out)
	return out, err
}

func (c *Client) AdminDeleteUser(ctx context.Context, token string, id int64) error {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/admin/users/%d", id), nil, nil, nil)
}

//
// --- PRODUITS ---
//

func (c *Client) AdminProducts(ctx context.Context, token, q string) ([]models.Product, error) {
	query := url.Values{}
	if q != "" {
		query.Set("q", q)
	}
	var out []models.Product
	err := c.do(ctx, token, http.MethodGet, "/admin/products", query, nil, &out)
	return out, err
}

func (c *Client) AdminUpdateProduct(ctx context.Context, token string, id int64, input models.ProductInput) (models.Product, error) {
	var out models.Product
	err := c.do(ctx, token, http.MethodPut, fmt.Sprintf("/admin/products/%d", id), nil, input, &out)
	return out, err
}

func (c *Client) AdminToggleProductActive(ctx context.Context, token string, id int64, active bool) (models.Product, error) {
	query := url.Values{"active": {strconv.FormatBool(active)}}
	var out models.Product
	err := c.do(ctx, token, http.MethodPut, fmt.Sprintf("/admin/products/%d/active", id), query, nil, &out)
	return out, err
}

func (c *Client) AdminDeleteProduct(ctx context.Context, token string, id int64) error {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/admin/products/%d", id), nil, nil, nil)
}

//
// --- COMMANDES & STATS ---
//

func (c *Client) AdminOrders(ctx context.Context, token string, status orderstatus.Status) ([]models.Order, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", string(status))
	}
	var out []models.Order
	err := c.do(ctx, token, http.MethodGet, "/admin/orders", query, nil, &out)
	return out, err
}

func (c *Client) AdminOrder(ctx context.Context, token string, id int64) (models.Order, error) {
	var out models.Order
	err := c.do(ctx, token, http.MethodGet, fmt.Sprintf("/admin/orders/%d", id), nil, nil, &out)
	return out, err
}

func (c *Client) AdminSetOrderStatus(ctx context.Context, token string, id int64, status orderstatus.Status) (models.Order, error) {
	query := url.Values{"status": {string(status)}}
	var out models.Order
	err := c.do(ctx, token, http.MethodPut, fmt.Sprintf("/admin/orders/%d/status", id), query, nil, &out)
	return out, err
}

func (c *Client) AdminStats(ctx context.Context, token string) (models.Stats, error) {
	var out models.Stats
	err := c.do(ctx, token, http.MethodGet, "/admin/stats", nil, nil, &out)
	return out, err
}

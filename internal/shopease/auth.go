package shopease

import (
	"context"
	"net/http"

	"shopease_front_end/internal/models"
)

// Login échange email/mot de passe contre un token et un rôle.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (models.LoginResult, error) {
	var out models.LoginResult
	err := c.do(ctx, "", http.MethodPost, "/auth/login", nil, creds, &out)
	return out, err
}

// Register crée le compte. Le backend refuse les emails déjà pris.
func (c *Client) Register(ctx context.Context, input models.RegisterInput) (models.User, error) {
	var out models.User
	err := c.do(ctx, "", http.MethodPost, "/auth/register", nil, input, &out)
	return out, err
}

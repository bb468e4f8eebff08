package shopease

import (
	"context"
	"net/http"

	"shopease_front_end/internal/models"
)

// SendContact transmet un message du formulaire de contact. L'envoi d'email
// éventuel est du ressort du backend.
func (c *Client) SendContact(ctx context.Context, msg models.ContactMessage) error {
	return c.do(ctx, "", http.MethodPost, "/contact", nil, msg, nil)
}

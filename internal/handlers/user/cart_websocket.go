package user

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"shopease_front_end/internal/cache"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Autoriser toutes les origines (à ajuster en production)
		return true
	},
}

// CartWebSocket pousse le panier fusionné à chaque mutation, signalée via
// Redis par les handlers du panier. Un autre onglet voit donc le panier
// bouger sans recharger la page.
func CartWebSocket(c *gin.Context) {
	token := c.GetString("token")
	email := c.GetString("email")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Erreur upgrade WebSocket: %v", err)
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()

	pubsub := cache.SubscribeCart(ctx, email)
	if pubsub == nil {
		conn.WriteJSON(gin.H{"type": "unavailable", "message": "Synchronisation panier indisponible"})
		return
	}
	defer pubsub.Close()

	conn.WriteJSON(gin.H{"type": "connected", "message": "Synchronisation panier activée"})

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			// Le navigateur a quitté la page, rien à pousser nulle part.
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if msg.Payload != "updated" {
				continue
			}

			view, err := fetchCartView(ctx, token, email)
			if err != nil {
				log.Printf("⚠️ Synchro panier: relecture impossible: %v", err)
				continue
			}
			view["type"] = "cart_updated"
			if err := conn.WriteJSON(view); err != nil {
				return
			}
		}
	}
}

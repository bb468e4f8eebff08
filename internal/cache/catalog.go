package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"shopease_front_end/internal/models"
)

const (
	productsKey = "catalog:products"
	productsTTL = 5 * time.Minute
)

// GetProducts relit le catalogue public depuis Redis. false = cache froid ou
// Redis absent, l'appelant repasse par le backend.
func GetProducts(ctx context.Context) ([]models.Product, bool) {
	if RedisClient == nil {
		return nil, false
	}
	data, err := RedisClient.Get(ctx, productsKey).Result()
	if err != nil || data == "" {
		return nil, false
	}
	var products []models.Product
	if json.Unmarshal([]byte(data), &products) != nil {
		return nil, false
	}
	return products, true
}

// SetProducts met le catalogue en cache pour quelques minutes.
func SetProducts(ctx context.Context, products []models.Product) {
	if RedisClient == nil {
		return
	}
	data, err := json.Marshal(products)
	if err != nil {
		return
	}
	RedisClient.Set(ctx, productsKey, data, productsTTL)
}

// InvalidateProducts vide le cache après toute mutation produit
// (vendeur ou admin).
func InvalidateProducts(ctx context.Context) {
	if RedisClient == nil {
		return
	}
	RedisClient.Del(ctx, productsKey)
}

//
// --- SYNCHRO PANIER ---
//

// NotifyCart publie un signal de changement de panier pour l'acheteur,
// consommé par le websocket de synchro.
func NotifyCart(ctx context.Context, email string) {
	if RedisClient == nil {
		return
	}
	RedisClient.Publish(ctx, "cart:"+email, "updated")
}

// SubscribeCart s'abonne aux changements de panier d'un acheteur.
// nil si Redis n'est pas disponible.
func SubscribeCart(ctx context.Context, email string) *redis.PubSub {
	if RedisClient == nil {
		return nil
	}
	return RedisClient.Subscribe(ctx, "cart:"+email)
}

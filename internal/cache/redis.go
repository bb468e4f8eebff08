package cache

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	ctx         = context.Background()
)

// InitRedis initialise la connexion Redis. Redis est facultatif pour la
// passerelle : sans lui, pas de cache catalogue ni de synchro panier, mais
// toutes les pages fonctionnent en appelant directement le backend.
func InitRedis() {
	redisHost := os.Getenv("REDIS_HOST")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	if redisHost == "" {
		log.Println("⚠️ REDIS_HOST non configuré — cache catalogue désactivé")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:         redisHost,
		Password:     redisPassword,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Println("⚠️ Impossible de se connecter à Redis :", err)
		return
	}

	RedisClient = client
	log.Println("✅ Redis connecté avec succès")
}

// CloseRedis ferme la connexion Redis
func CloseRedis() error {
	if RedisClient != nil {
		return RedisClient.Close()
	}
	return nil
}

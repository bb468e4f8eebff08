package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"shopease_front_end/internal/cache"
)

const (
	loginMaxAttempts = 5
	loginCooldown    = 15 * time.Minute
)

// LoginRateLimit limite les tentatives de connexion par email avant même de
// solliciter le backend. Sans Redis, la limite est désactivée.
func LoginRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if cache.RedisClient == nil {
			c.Next()
			return
		}

		// Lire le body sans le consommer
		bodyBytes, _ := io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		var input struct {
			Email string `json:"email"`
		}
		if err := json.Unmarshal(bodyBytes, &input); err != nil || input.Email == "" {
			c.Next()
			return
		}

		ctx := context.Background()
		cooldownKey := "login_cooldown:" + input.Email
		if cache.RedisClient.Exists(ctx, cooldownKey).Val() > 0 {
			ttl := cache.RedisClient.TTL(ctx, cooldownKey).Val()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Trop de tentatives échouées. Réessayez dans %d minutes", int(ttl.Minutes())+1),
				"retry_after": int(ttl.Seconds()),
			})
			c.Abort()
			return
		}

		attemptsKey := "login_attempts:" + input.Email
		attempts, _ := cache.RedisClient.Incr(ctx, attemptsKey).Result()
		if attempts == 1 {
			cache.RedisClient.Expire(ctx, attemptsKey, loginCooldown)
		}
		if attempts > loginMaxAttempts {
			cache.RedisClient.Set(ctx, cooldownKey, "1", loginCooldown)
			cache.RedisClient.Del(ctx, attemptsKey)
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Trop de tentatives échouées. Réessayez plus tard",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// ResetLoginAttempts remet le compteur à zéro après une connexion réussie.
func ResetLoginAttempts(email string) {
	if cache.RedisClient == nil || email == "" {
		return
	}
	cache.RedisClient.Del(context.Background(), "login_attempts:"+email)
}

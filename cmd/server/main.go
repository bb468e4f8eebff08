package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"shopease_front_end/internal/cache"
	"shopease_front_end/internal/config"
	"shopease_front_end/internal/routes"
	"shopease_front_end/internal/session"
	"shopease_front_end/internal/shopease"
)

func main() {
	config.Load()

	session.Init()
	shopease.Init()

	// Redis est optionnel : sans lui, pas de cache catalogue ni de
	// synchronisation du panier entre onglets, mais tout le reste fonctionne.
	cache.InitRedis()
	defer cache.CloseRedis()

	r := gin.Default()
	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	log.Println("🚀 Passerelle ShopEase lancée sur le port", port)
	r.Run(":" + port)
}

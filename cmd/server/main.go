package main

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v83"

	"laundry_express_back_end/internal/config"
	"laundry_express_back_end/internal/database"
	"laundry_express_back_end/internal/routes"
	"laundry_express_back_end/internal/services"
)

func main() {
	config.Load()

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		log.Println("⚠️ STRIPE_SECRET_KEY manquant : paiements carte désactivés, COD uniquement")
	} else {
		log.Println("✅ Stripe initialisé")
	}

	database.ConnectDatabases()
	services.ConnectMinio()

	r := gin.Default()
	r.Use(cors.New(corsConfig()))

	routes.RegisterRoutes(r)

	port := config.Getenv("PORT", "8080")
	log.Println("🚀 Serveur Laundry Express lancé sur le port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Serveur arrêté:", err)
	}
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()

	origins := os.Getenv("CORS_ORIGINS")
	if origins == "" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = strings.Split(origins, ",")
		cfg.AllowCredentials = true
	}

	cfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "Stripe-Signature"}
	cfg.MaxAge = 12 * time.Hour

	return cfg
}

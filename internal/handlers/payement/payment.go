package payement

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/paymentintent"
	"github.com/stripe/stripe-go/v83/webhook"
	"go.mongodb.org/mongo-driver/bson"

	"laundry_express_back_end/internal/database"
)

// ✅ Crée un PaymentIntent Stripe (montants en GBP)
func CreatePaymentIntent(c *gin.Context) {
	var req struct {
		Amount  float64 `json:"amount" binding:"required"`
		OrderID string  `json:"order_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID := c.GetString("user_id")
	email := c.GetString("email")

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(req.Amount * 100)), // pence
		Currency: stripe.String("gbp"),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Metadata: map[string]string{
			"order_id": req.OrderID,
			"user_id":  userID,
			"email":    email,
		},
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		log.Println("❌ Erreur Stripe:", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payment setup failed"})
		return
	}

	log.Printf("💳 PaymentIntent créé : %s (£%.2f) pour %s", intent.ID, req.Amount, email)

	c.JSON(http.StatusOK, gin.H{
		"client_secret": intent.ClientSecret,
	})
}

// ✅ Webhook Stripe
func StripeWebhook(c *gin.Context) {
	const MaxBodyBytes = int64(65536)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)

	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read body"})
		return
	}

	secret := os.Getenv("STRIPE_WEBHOOK_SECRET")
	var event stripe.Event

	if secret == "" {
		log.Println("⚠️ Pas de STRIPE_WEBHOOK_SECRET : mode test")
		if err := json.Unmarshal(payload, &event); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
			return
		}
	} else {
		event, err = webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), secret)
		if err != nil {
			log.Println("❌ Signature Stripe invalide:", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
			return
		}
	}

	log.Printf("📥 Événement Stripe reçu : %s", event.Type)
	handleStripeEvent(event)

	c.Status(http.StatusOK)
}

// Traitement de l'événement : seul payment_intent.succeeded nous intéresse :
// il bascule le payment_status de la commande liée.
func handleStripeEvent(event stripe.Event) {
	if event.Type != "payment_intent.succeeded" {
		log.Printf("ℹ️ Événement ignoré : %s", event.Type)
		return
	}

	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		log.Println("❌ Erreur décodage PaymentIntent:", err)
		return
	}

	orderID := intent.Metadata["order_id"]
	if orderID == "" {
		log.Println("⚠️ PaymentIntent sans order_id, rien à mettre à jour")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := database.MongoOrdersDB.Collection("orders").UpdateOne(ctx,
		bson.M{"_id": orderID},
		bson.M{"$set": bson.M{"payment_status": "paid"}},
	)
	if err != nil {
		log.Printf("❌ Erreur mise à jour payment_status pour %s: %v", orderID, err)
		return
	}
	if result.MatchedCount == 0 {
		log.Printf("⚠️ Commande %s introuvable pour le paiement %s", orderID, intent.ID)
		return
	}

	log.Printf("✅ Paiement confirmé pour la commande %s", orderID)
}

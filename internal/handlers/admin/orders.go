package admin

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"laundry_express_back_end/internal/database"
	"laundry_express_back_end/internal/models"
	"laundry_express_back_end/internal/utils"
)

func ordersCollection() *mongo.Collection {
	return database.MongoOrdersDB.Collection("orders")
}

// GetAllOrders : toutes les commandes de la plateforme, plus récentes d'abord.
func GetAllOrders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := ordersCollection().Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Println("❌ Erreur MongoDB Find orders:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus fait avancer une commande dans son cycle de vie. Le statut
// doit appartenir à l'ensemble connu, toute autre valeur est rejetée en 400.
// Le client est notifié par email en best-effort.
func UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("id")

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidOrderStatuses[input.Status] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ordersCollection().UpdateOne(ctx,
		bson.M{"_id": orderID},
		bson.M{"$set": bson.M{"status": input.Status}},
	)
	if err != nil {
		log.Println("❌ Erreur mise à jour statut:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Status update failed"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	log.Printf("✅ Commande %s → statut %s", orderID, input.Status)

	// Notification best-effort, la mise à jour est déjà persistée.
	var updated models.Order
	if err := ordersCollection().FindOne(ctx, bson.M{"_id": orderID}).Decode(&updated); err == nil {
		go func(o models.Order, status string) {
			_ = utils.SendOrderStatusEmail(o, status, o.UserEmail)
		}(updated, input.Status)
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

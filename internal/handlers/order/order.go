package order

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"laundry_express_back_end/internal/config"
	"laundry_express_back_end/internal/database"
	"laundry_express_back_end/internal/handlers/user"
	"laundry_express_back_end/internal/models"
	"laundry_express_back_end/internal/utils"
)

func ordersCollection() *mongo.Collection {
	return database.MongoOrdersDB.Collection("orders")
}

// CreateOrder matérialise le panier en commande : validation, numérotation,
// snapshot intégral des lignes et du planning, écriture atomique unique, puis
// notifications best-effort.
func CreateOrder(c *gin.Context) {
	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validateOrder(input, config.VerifyPrices()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	current, err := user.Current(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	orderNumber, err := database.NextOrderNumber(ctx)
	if err != nil {
		log.Println("❌ Erreur allocation numéro de commande:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Order creation failed"})
		return
	}

	newOrder := models.Order{
		ID:                  uuid.NewString(),
		OrderNumber:         orderNumber,
		UserID:              current.ID,
		UserName:            current.Name,
		UserEmail:           current.Email,
		Items:               input.Items,
		PickupDate:          input.PickupDate,
		PickupTime:          input.PickupTime,
		PickupInstruction:   input.PickupInstruction,
		DeliveryDate:        input.DeliveryDate,
		DeliveryTime:        input.DeliveryTime,
		DeliveryInstruction: input.DeliveryInstruction,
		Address:             input.Address,
		PinCode:             input.PinCode,
		PaymentMethod:       input.PaymentMethod,
		PaymentStatus:       paymentStatusFor(input.PaymentMethod),
		TotalAmount:         input.TotalAmount,
		Status:              models.OrderStatusPending,
		CreatedAt:           time.Now().UTC(),
	}

	if _, err := ordersCollection().InsertOne(ctx, newOrder); err != nil {
		log.Println("❌ Erreur insertion commande:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Order creation failed"})
		return
	}

	log.Printf("✅ Commande #%d créée pour %s (£%.2f)", orderNumber, current.Email, newOrder.TotalAmount)

	// Notifications best-effort : la commande est créée quoi qu'il arrive.
	go func(o models.Order, email string) {
		_ = utils.SendOrderConfirmationEmail(o, email)
		_ = utils.SendAdminOrderNotification(o)
	}(newOrder, current.Email)

	c.JSON(http.StatusOK, gin.H{
		"order_id":     newOrder.ID,
		"order_number": orderNumber,
		"status":       "success",
	})
}

// GetOrders liste les commandes : les siennes pour un client, toutes pour un
// rôle admin. Tri par date de création décroissante.
func GetOrders(c *gin.Context) {
	userID := c.GetString("user_id")
	role := c.GetString("role")

	query := bson.M{}
	if !models.IsAdminRole(role) {
		query["user_id"] = userID
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := ordersCollection().Find(ctx, query, opts)
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

// GetOrderByID : 404 si la commande n'existe pas, 403 si un client tente de
// lire la commande d'un autre. Les deux cas restent distincts.
func GetOrderByID(c *gin.Context) {
	userID := c.GetString("user_id")
	role := c.GetString("role")
	orderID := c.Param("id")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var found models.Order
	err := ordersCollection().FindOne(ctx, bson.M{"_id": orderID}).Decode(&found)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if !models.IsAdminRole(role) && found.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	c.JSON(http.StatusOK, found)
}

package admin

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"laundry_express_back_end/internal/database"
	"laundry_express_back_end/internal/models"
)

func businessesCollection() *mongo.Collection {
	return database.MongoCatalogDB.Collection("businesses")
}

// GetBusinesses liste tous les businesses (tout rôle admin).
func GetBusinesses(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := businessesCollection().Find(ctx, bson.M{})
	if err != nil {
		log.Println("❌ Erreur MongoDB Find businesses:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load businesses"})
		return
	}
	defer cursor.Close(ctx)

	businesses := []models.Business{}
	if err := cursor.All(ctx, &businesses); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load businesses"})
		return
	}

	c.JSON(http.StatusOK, businesses)
}

// CreateBusiness : réservé platform_admin / super_admin (gardé par la route).
// Les pin codes sont stockés tels quels, sans normalisation.
func CreateBusiness(c *gin.Context) {
	var input struct {
		Name       string   `json:"name" binding:"required"`
		OwnerEmail string   `json:"owner_email" binding:"required,email"`
		PinCodes   []string `json:"pin_codes" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	business := models.Business{
		ID:         uuid.NewString(),
		Name:       input.Name,
		OwnerEmail: input.OwnerEmail,
		PinCodes:   input.PinCodes,
		CreatedAt:  time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := businessesCollection().InsertOne(ctx, business); err != nil {
		log.Println("❌ Erreur création business:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Business creation failed"})
		return
	}

	log.Printf("✅ Business créé : %s (%d pin codes)", business.Name, len(business.PinCodes))

	c.JSON(http.StatusCreated, gin.H{
		"business_id": business.ID,
		"status":      "success",
	})
}

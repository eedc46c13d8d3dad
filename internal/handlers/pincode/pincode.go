package pincode

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"laundry_express_back_end/internal/database"
	"laundry_express_back_end/internal/models"
)

// Check : disponibilité du service pour un pin code. Correspondance stricte
// (sensible à la casse, aucune normalisation) contre les pin_codes de chaque
// business. Un résultat vide est une réponse normale, pas une erreur.
func Check(c *gin.Context) {
	var input struct {
		PinCode string `json:"pin_code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.MongoCatalogDB.Collection("businesses").
		Find(ctx, bson.M{"pin_codes": input.PinCode})
	if err != nil {
		log.Println("❌ Erreur MongoDB Find businesses:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Availability check failed"})
		return
	}
	defer cursor.Close(ctx)

	businesses := []models.Business{}
	if err := cursor.All(ctx, &businesses); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Availability check failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"available":  len(businesses) > 0,
		"businesses": businesses,
	})
}

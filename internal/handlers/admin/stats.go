package admin

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// GetAdminStats : compteurs globaux du tableau de bord. Le chiffre d'affaires
// est la somme des total_amount, tous statuts confondus (commandes annulées
// incluses).
func GetAdminStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	totalOrders, err := ordersCollection().CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Println("❌ Erreur stats (orders):", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}

	var totalRevenue float64
	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$total_amount"},
		}},
	}
	cursor, err := ordersCollection().Aggregate(ctx, pipeline)
	if err != nil {
		log.Println("❌ Erreur stats (revenue):", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}
	defer cursor.Close(ctx)

	var agg []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &agg); err == nil && len(agg) > 0 {
		totalRevenue = agg[0].Total
	}

	totalBusinesses, err := businessesCollection().CountDocuments(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}

	totalProducts, err := productsCollection().CountDocuments(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_orders":     totalOrders,
		"total_revenue":    totalRevenue,
		"total_businesses": totalBusinesses,
		"total_products":   totalProducts,
	})
}

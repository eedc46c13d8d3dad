package catalog

import (
	"context"
	"log"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"laundry_express_back_end/internal/cache"
	"laundry_express_back_end/internal/database"
	"laundry_express_back_end/internal/models"
	"laundry_express_back_end/internal/services"
)

func productsCollection() *mongo.Collection {
	return database.MongoCatalogDB.Collection("products")
}

// buildProductFilter construit le filtre à partir des seuls paramètres présents.
func buildProductFilter(businessID, category, subcategory string) bson.M {
	filter := bson.M{}
	if businessID != "" {
		filter["business_id"] = businessID
	}
	if category != "" {
		filter["category"] = category
	}
	if subcategory != "" {
		filter["subcategory"] = subcategory
	}
	return filter
}

// productSortOrder : tri déterministe du catalogue, sort_order croissant,
// égalités départagées par le nom.
func productSortOrder() bson.D {
	return bson.D{{Key: "sort_order", Value: 1}, {Key: "name", Value: 1}}
}

// GetProducts liste le catalogue, filtrable par business / catégorie /
// sous-catégorie.
func GetProducts(c *gin.Context) {
	filter := buildProductFilter(
		c.Query("business_id"),
		c.Query("category"),
		c.Query("subcategory"),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(productSortOrder())
	cursor, err := productsCollection().Find(ctx, filter, opts)
	if err != nil {
		log.Println("❌ Erreur MongoDB Find products:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetServiceTypes : valeurs distinctes de service_type, cachées dans Redis.
func GetServiceTypes(c *gin.Context) {
	var cached []gin.H
	if cache.GetJSON(cache.ServiceTypesKey, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	values, err := productsCollection().Distinct(ctx, "service_type", bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load service types"})
		return
	}

	result := make([]gin.H, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			result = append(result, gin.H{"name": s})
		}
	}

	cache.SetJSON(cache.ServiceTypesKey, result, cache.CatalogCacheTTL)
	c.JSON(http.StatusOK, result)
}

// GetCategories : valeurs distinctes de category, triées, cachées dans Redis.
func GetCategories(c *gin.Context) {
	var cached []gin.H
	if cache.GetJSON(cache.CategoriesKey, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	values, err := productsCollection().Distinct(ctx, "category", bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load categories"})
		return
	}

	names := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			names = append(names, s)
		}
	}
	sort.Strings(names)

	result := make([]gin.H, 0, len(names))
	for _, name := range names {
		result = append(result, gin.H{"name": name})
	}

	cache.SetJSON(cache.CategoriesKey, result, cache.CatalogCacheTTL)
	c.JSON(http.StatusOK, result)
}

// SearchProducts : recherche plein texte via Elasticsearch, avec repli Mongo
// si l'index est vide ou indisponible.
func SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'q' parameter"})
		return
	}

	// 1️⃣ Tentative Elasticsearch
	results, err := services.SearchProducts(query)
	if err == nil && len(results) > 0 {
		c.JSON(http.StatusOK, results)
		return
	}

	// 2️⃣ Repli MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{
		"$or": []bson.M{
			{"name": bson.M{"$regex": query, "$options": "i"}},
			{"category": bson.M{"$regex": query, "$options": "i"}},
			{"subcategory": bson.M{"$regex": query, "$options": "i"}},
		},
	}

	opts := options.Find().SetSort(productSortOrder())
	cursor, err := productsCollection().Find(ctx, filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	c.JSON(http.StatusOK, products)
}

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
	"go.mongodb.org/mongo-driver/mongo/options"

	"laundry_express_back_end/internal/cache"
	"laundry_express_back_end/internal/database"
	"laundry_express_back_end/internal/models"
	"laundry_express_back_end/internal/services"
)

func productsCollection() *mongo.Collection {
	return database.MongoCatalogDB.Collection("products")
}

type productInput struct {
	BusinessID  string  `json:"business_id" binding:"required"`
	ServiceType string  `json:"service_type" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Subcategory string  `json:"subcategory"`
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	IconURL     string  `json:"icon_url"`
	SortOrder   *int    `json:"sort_order"`
}

// defaultSortOrder : position par défaut en fin de partition : max + 1, ou 0
// si la partition (category, subcategory) est vide. Lecture puis écriture,
// sans exclusion mutuelle (compromis assumé, les égalités retombent sur le
// tri par nom).
func defaultSortOrder(maxExisting int, partitionEmpty bool) int {
	if partitionEmpty {
		return 0
	}
	return maxExisting + 1
}

func resolveSortOrder(ctx context.Context, input productInput) (int, error) {
	if input.SortOrder != nil {
		return *input.SortOrder, nil
	}

	partition := bson.M{"category": input.Category, "subcategory": input.Subcategory}
	opts := options.FindOne().SetSort(bson.D{{Key: "sort_order", Value: -1}})

	var top models.Product
	err := productsCollection().FindOne(ctx, partition, opts).Decode(&top)
	if err == mongo.ErrNoDocuments {
		return defaultSortOrder(0, true), nil
	}
	if err != nil {
		return 0, err
	}
	return defaultSortOrder(top.SortOrder, false), nil
}

// GetAdminProducts : catalogue complet, sans filtre.
func GetAdminProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := productsCollection().Find(ctx, bson.M{})
	if err != nil {
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

// CreateProduct crée un article du catalogue. Le business_name est snapshoté
// au moment de l'appel et ne suivra pas un renommage du business.
func CreateProduct(c *gin.Context) {
	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var business models.Business
	err := businessesCollection().FindOne(ctx, bson.M{"_id": input.BusinessID}).Decode(&business)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}

	sortOrder, err := resolveSortOrder(ctx, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Product creation failed"})
		return
	}

	product := models.Product{
		ID:           uuid.NewString(),
		BusinessID:   input.BusinessID,
		BusinessName: business.Name,
		ServiceType:  input.ServiceType,
		Category:     input.Category,
		Subcategory:  input.Subcategory,
		Name:         input.Name,
		Price:        input.Price,
		IconURL:      input.IconURL,
		SortOrder:    sortOrder,
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := productsCollection().InsertOne(ctx, product); err != nil {
		log.Println("❌ Erreur création produit:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Product creation failed"})
		return
	}

	// 🔄 Indexe dans Elasticsearch + invalide les caches catalogue
	go services.IndexProduct(product)
	cache.InvalidateCatalogCache()

	c.JSON(http.StatusCreated, gin.H{
		"product_id": product.ID,
		"status":     "success",
	})
}

// UpdateProduct remplace les champs du produit. Le business_name est
// re-snapshoté depuis le business courant ; sort_order n'est touché que s'il
// est fourni.
func UpdateProduct(c *gin.Context) {
	productID := c.Param("id")

	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var business models.Business
	err := businessesCollection().FindOne(ctx, bson.M{"_id": input.BusinessID}).Decode(&business)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}

	update := bson.M{
		"business_id":   input.BusinessID,
		"business_name": business.Name,
		"service_type":  input.ServiceType,
		"category":      input.Category,
		"subcategory":   input.Subcategory,
		"name":          input.Name,
		"price":         input.Price,
		"icon_url":      input.IconURL,
	}
	if input.SortOrder != nil {
		update["sort_order"] = *input.SortOrder
	}

	result, err := productsCollection().UpdateOne(ctx, bson.M{"_id": productID}, bson.M{"$set": update})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Product update failed"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	// Ré-indexation avec le document à jour
	var updated models.Product
	if err := productsCollection().FindOne(ctx, bson.M{"_id": productID}).Decode(&updated); err == nil {
		go services.IndexProduct(updated)
	}
	cache.InvalidateCatalogCache()

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// DeleteProduct supprime un article du catalogue.
func DeleteProduct(c *gin.Context) {
	productID := c.Param("id")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := productsCollection().DeleteOne(ctx, bson.M{"_id": productID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Product deletion failed"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	go services.RemoveProduct(productID)
	cache.InvalidateCatalogCache()

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// ReorderProducts applique chaque paire (id, sort_order) indépendamment.
// Le batch n'est PAS transactionnel : un échec partiel laisse certains
// produits réordonnés et d'autres non. Les entrées en échec sont loggées et
// ignorées, la réponse indique combien de mises à jour ont abouti.
func ReorderProducts(c *gin.Context) {
	var input struct {
		Updates []struct {
			ID        string `json:"id"`
			SortOrder *int   `json:"sort_order"`
		} `json:"updates" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	updated := 0
	for _, u := range input.Updates {
		if u.ID == "" || u.SortOrder == nil {
			continue
		}
		result, err := productsCollection().UpdateOne(ctx,
			bson.M{"_id": u.ID},
			bson.M{"$set": bson.M{"sort_order": *u.SortOrder}},
		)
		if err != nil {
			log.Printf("⚠️ Réordonnancement échoué pour %s: %v", u.ID, err)
			continue
		}
		if result.MatchedCount > 0 {
			updated++
		}
	}

	cache.InvalidateCatalogCache()

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"updated": updated,
	})
}

// UploadProductIcon : upload multipart d'une icône vers MinIO, retourne l'URL
// publique à mettre dans icon_url.
func UploadProductIcon(c *gin.Context) {
	file, err := c.FormFile("icon")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'icon' file"})
		return
	}

	url, err := services.UploadIcon(file)
	if err != nil {
		log.Println("❌ Erreur upload MinIO:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Icon upload failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"icon_url": url})
}

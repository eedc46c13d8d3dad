package cache

import (
	"context"
	"encoding/json"
	"time"

	"laundry_express_back_end/internal/database"
)

const (
	CatalogCacheTTL = 10 * time.Minute

	ServiceTypesKey = "catalog:service_types"
	CategoriesKey   = "catalog:categories"
)

// GetJSON récupère une valeur JSON du cache. Retourne false si absente ou
// illisible.
func GetJSON(key string, dest interface{}) bool {
	ctx := context.Background()
	data, err := database.Redis.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(data), dest) == nil
}

// SetJSON met une valeur en cache, best-effort.
func SetJSON(key string, value interface{}, ttl time.Duration) {
	ctx := context.Background()
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	database.Redis.Set(ctx, key, data, ttl)
}

// InvalidateCatalogCache invalide les caches du catalogue après une mutation
// produit (création, modification, suppression, réordonnancement).
func InvalidateCatalogCache() {
	ctx := context.Background()
	database.Redis.Del(ctx, ServiceTypesKey, CategoriesKey)
}

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildProductFilter(t *testing.T) {
	assert.Equal(t, bson.M{}, buildProductFilter("", "", ""))

	assert.Equal(t,
		bson.M{"business_id": "b1"},
		buildProductFilter("b1", "", ""))

	assert.Equal(t,
		bson.M{"category": "Ironing"},
		buildProductFilter("", "Ironing", ""))

	assert.Equal(t,
		bson.M{
			"business_id": "b1",
			"category":    "Laundry",
			"subcategory": "Bedding",
		},
		buildProductFilter("b1", "Laundry", "Bedding"))
}

func TestProductSortOrder(t *testing.T) {
	sort := productSortOrder()

	assert.Equal(t, bson.D{
		{Key: "sort_order", Value: 1},
		{Key: "name", Value: 1},
	}, sort)
}

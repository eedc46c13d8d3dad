package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"laundry_express_back_end/internal/models"
)

func orderFixture() models.Order {
	return models.Order{
		ID:          "order-1",
		OrderNumber: 100042,
		UserName:    "Alice Martin",
		UserEmail:   "alice@example.co.uk",
		Items: []models.CartItem{
			{ProductName: "Shirt", Category: "Ironing", Price: 2.50, Quantity: 10},
			{ProductName: "Duvet", Category: "Laundry", Subcategory: "Bedding", Price: 15.00, Quantity: 1},
		},
		PickupDate:    "2026-09-02",
		PickupTime:    "09:00-11:00",
		DeliveryDate:  "2026-09-04",
		DeliveryTime:  "17:00-19:00",
		Address:       "12 Baker Street, London",
		PinCode:       "NW1 6XE",
		PaymentMethod: models.PaymentMethodStripe,
		TotalAmount:   40.00,
	}
}

func TestGenerateOrderConfirmationHTML(t *testing.T) {
	html := GenerateOrderConfirmationHTML(orderFixture())

	assert.Contains(t, html, "#100042")
	assert.Contains(t, html, "£40.00")
	assert.Contains(t, html, "Shirt")
	assert.Contains(t, html, "Laundry › Bedding")
	assert.Contains(t, html, "2026-09-02")
	assert.Contains(t, html, "17:00-19:00")
	assert.Contains(t, html, "support@laundry-express.co.uk")
}

func TestGenerateAdminOrderHTML(t *testing.T) {
	html := GenerateAdminOrderHTML(orderFixture())

	assert.Contains(t, html, "New Order #100042")
	assert.Contains(t, html, "Alice Martin")
	assert.Contains(t, html, "alice@example.co.uk")
	assert.Contains(t, html, "12 Baker Street, London")
	assert.Contains(t, html, "NW1 6XE")
}

func TestGenerateStatusUpdateHTML(t *testing.T) {
	html := GenerateStatusUpdateHTML(orderFixture(), models.OrderStatusProcessing)

	assert.Contains(t, html, "#100042")
	assert.Contains(t, html, models.OrderStatusProcessing)
	assert.Contains(t, html, "being cleaned")
}

func TestStatusEmailSubject(t *testing.T) {
	assert.Contains(t, StatusEmailSubject(models.OrderStatusConfirmed), "confirmed")
	assert.Contains(t, StatusEmailSubject(models.OrderStatusProcessing), "processed")
	assert.Contains(t, StatusEmailSubject(models.OrderStatusCompleted), "complete")
	assert.Contains(t, StatusEmailSubject(models.OrderStatusCancelled), "cancelled")

	// Statut inconnu : sujet générique, jamais de chaîne vide
	assert.Contains(t, StatusEmailSubject("pending"), "updated")
}

func TestItemsTableHTMLLineTotals(t *testing.T) {
	html := itemsTableHTML(orderFixture().Items)

	// 10 chemises à £2.50 → ligne à £25.00
	assert.Contains(t, html, "£25.00")
	assert.Contains(t, html, "× 10")
	assert.Contains(t, html, "£15.00")
}

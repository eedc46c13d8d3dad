package order

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"laundry_express_back_end/internal/models"
)

func cartFixture() []models.CartItem {
	return []models.CartItem{
		{ProductID: "p1", ProductName: "Shirt", Category: "Ironing", Price: 2.50, Quantity: 10},
		{ProductID: "p2", ProductName: "Duvet", Category: "Laundry", Subcategory: "Bedding", Price: 15.00, Quantity: 1},
	}
}

func TestCalcTotal(t *testing.T) {
	assert.InDelta(t, 40.00, calcTotal(cartFixture()), 0.001)
	assert.Equal(t, 0.0, calcTotal(nil))
}

func TestValidateOrderBelowMinimum(t *testing.T) {
	input := CreateOrderInput{
		Items:       cartFixture(),
		TotalAmount: 29.99,
	}
	err := validateOrder(input, false)
	assert.ErrorIs(t, err, ErrBelowMinimum)
}

func TestValidateOrderMinimumBoundary(t *testing.T) {
	input := CreateOrderInput{
		Items:       []models.CartItem{{ProductID: "p1", Price: 30.00, Quantity: 1}},
		TotalAmount: 30.00,
	}
	assert.NoError(t, validateOrder(input, false))
}

func TestValidateOrderEmptyCart(t *testing.T) {
	input := CreateOrderInput{
		Items:       []models.CartItem{},
		TotalAmount: 50.00,
	}
	err := validateOrder(input, false)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

// Le seuil minimum est contrôlé avant le panier vide : un panier vide avec un
// total déclaré sous le minimum doit remonter l'erreur de minimum.
func TestValidateOrderMinimumCheckedFirst(t *testing.T) {
	input := CreateOrderInput{
		Items:       nil,
		TotalAmount: 10.00,
	}
	err := validateOrder(input, false)
	assert.ErrorIs(t, err, ErrBelowMinimum)
}

func TestValidateOrderPriceVerification(t *testing.T) {
	input := CreateOrderInput{
		Items:       cartFixture(), // vaut 40.00
		TotalAmount: 45.00,
	}

	// Sans vérification : le total soumis est accepté tel quel.
	assert.NoError(t, validateOrder(input, false))

	// Avec vérification : l'écart est rejeté.
	err := validateOrder(input, true)
	assert.ErrorIs(t, err, ErrTotalMismatch)
}

func TestValidateOrderPriceVerificationTolerance(t *testing.T) {
	input := CreateOrderInput{
		Items:       cartFixture(),
		TotalAmount: 40.005, // écart d'arrondi < 1 penny
	}
	assert.NoError(t, validateOrder(input, true))
}

func TestPaymentStatusFor(t *testing.T) {
	assert.Equal(t, "pending", paymentStatusFor(models.PaymentMethodStripe))
	assert.Equal(t, "cod", paymentStatusFor(models.PaymentMethodCOD))
	assert.Equal(t, "cod", paymentStatusFor("anything_else"))
}

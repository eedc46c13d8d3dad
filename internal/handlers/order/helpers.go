package order

import (
	"errors"
	"math"

	"laundry_express_back_end/internal/models"
)

// Valeur minimum de commande : règle métier fixe, en livres sterling.
const MinimumOrderValue = 30.00

// CreateOrderInput : payload de création de commande. Les lignes sont des
// snapshots déclarés par le client.
type CreateOrderInput struct {
	Items               []models.CartItem `json:"items"`
	PickupDate          string            `json:"pickup_date"`
	PickupTime          string            `json:"pickup_time"`
	PickupInstruction   string            `json:"pickup_instruction"`
	DeliveryDate        string            `json:"delivery_date"`
	DeliveryTime        string            `json:"delivery_time"`
	DeliveryInstruction string            `json:"delivery_instruction"`
	Address             string            `json:"address"`
	PinCode             string            `json:"pin_code"`
	PaymentMethod       string            `json:"payment_method"`
	TotalAmount         float64           `json:"total_amount"`
}

var (
	ErrBelowMinimum  = errors.New("Minimum order value is £30")
	ErrEmptyCart     = errors.New("Cart is empty")
	ErrTotalMismatch = errors.New("Submitted total does not match cart items")
)

// calcTotal calcule le montant total d'un panier
func calcTotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// validateOrder : validations dans l'ordre, échec rapide, avant toute
// persistance. La re-vérification du total est optionnelle (VERIFY_PRICES) :
// par défaut le montant soumis est stocké tel quel.
func validateOrder(input CreateOrderInput, verifyPrices bool) error {
	if input.TotalAmount < MinimumOrderValue {
		return ErrBelowMinimum
	}
	if len(input.Items) == 0 {
		return ErrEmptyCart
	}
	if verifyPrices {
		if math.Abs(calcTotal(input.Items)-input.TotalAmount) >= 0.01 {
			return ErrTotalMismatch
		}
	}
	return nil
}

// paymentStatusFor : statut de paiement initial selon le moyen de paiement.
func paymentStatusFor(method string) string {
	if method == models.PaymentMethodStripe {
		return "pending"
	}
	return models.PaymentMethodCOD
}

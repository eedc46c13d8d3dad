package models

import "time"

// CartItem : ligne de panier soumise par le client. C'est un snapshot déclaré
// côté client, stocké tel quel dans la commande.
type CartItem struct {
	ProductID    string  `bson:"product_id" json:"product_id"`
	ProductName  string  `bson:"product_name" json:"product_name"`
	Category     string  `bson:"category" json:"category"`
	Subcategory  string  `bson:"subcategory,omitempty" json:"subcategory,omitempty"`
	BusinessID   string  `bson:"business_id" json:"business_id"`
	BusinessName string  `bson:"business_name" json:"business_name"`
	Price        float64 `bson:"price" json:"price"`
	Quantity     int     `bson:"quantity" json:"quantity"`
}

// Order : une fois créée, seuls status et payment_status sont mutables.
// Les items, les prix et le planning sont des snapshots immuables.
type Order struct {
	ID                  string     `bson:"_id" json:"id"`
	OrderNumber         int64      `bson:"order_number" json:"order_number"`
	UserID              string     `bson:"user_id" json:"user_id"`
	UserName            string     `bson:"user_name" json:"user_name"`
	UserEmail           string     `bson:"user_email" json:"user_email"`
	Items               []CartItem `bson:"items" json:"items"`
	PickupDate          string     `bson:"pickup_date" json:"pickup_date"`
	PickupTime          string     `bson:"pickup_time" json:"pickup_time"`
	PickupInstruction   string     `bson:"pickup_instruction" json:"pickup_instruction"`
	DeliveryDate        string     `bson:"delivery_date" json:"delivery_date"`
	DeliveryTime        string     `bson:"delivery_time" json:"delivery_time"`
	DeliveryInstruction string     `bson:"delivery_instruction" json:"delivery_instruction"`
	Address             string     `bson:"address" json:"address"`
	PinCode             string     `bson:"pin_code" json:"pin_code"`
	PaymentMethod       string     `bson:"payment_method" json:"payment_method"`
	PaymentStatus       string     `bson:"payment_status" json:"payment_status"`
	TotalAmount         float64    `bson:"total_amount" json:"total_amount"`
	Status              string     `bson:"status" json:"status"`
	CreatedAt           time.Time  `bson:"created_at" json:"created_at"`
}

// Statuts de commande. pending est le seul statut initial ; completed et
// cancelled sont terminaux par convention (aucun graphe de transition imposé).
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

const (
	PaymentMethodStripe = "stripe"
	PaymentMethodCOD    = "cod"
)

var ValidOrderStatuses = map[string]bool{
	OrderStatusPending:    true,
	OrderStatusConfirmed:  true,
	OrderStatusProcessing: true,
	OrderStatusCompleted:  true,
	OrderStatusCancelled:  true,
}

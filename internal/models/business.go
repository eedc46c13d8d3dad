package models

import "time"

// Business : un pressing partenaire. Les pin codes peuvent se chevaucher
// entre plusieurs businesses : un même code postal peut être servi par plusieurs.
type Business struct {
	ID         string    `bson:"_id" json:"id"`
	Name       string    `bson:"name" json:"name"`
	OwnerEmail string    `bson:"owner_email" json:"owner_email"`
	PinCodes   []string  `bson:"pin_codes" json:"pin_codes"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

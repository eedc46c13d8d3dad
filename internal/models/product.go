package models

import "time"

// Product : un article du catalogue (service_type → category → subcategory → article).
// business_name est une copie figée du nom du Business au moment de la création /
// mise à jour, et ne suit PAS les renommages ultérieurs du Business.
type Product struct {
	ID           string    `bson:"_id" json:"id"`
	BusinessID   string    `bson:"business_id" json:"business_id"`
	BusinessName string    `bson:"business_name" json:"business_name"`
	ServiceType  string    `bson:"service_type" json:"service_type"`
	Category     string    `bson:"category" json:"category"`
	// subcategory est toujours stocké, même vide : la requête de partition
	// (category, subcategory) repose sur une égalité stricte avec "".
	Subcategory  string    `bson:"subcategory" json:"subcategory,omitempty"`
	Name         string    `bson:"name" json:"name"`
	Price        float64   `bson:"price" json:"price"`
	IconURL      string    `bson:"icon_url" json:"icon_url,omitempty"`
	SortOrder    int       `bson:"sort_order" json:"sort_order"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

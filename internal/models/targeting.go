package models

import "time"

// Targeting pairs a customer with an offer selected for them
type Targeting struct {
	CustomerID string    `db:"customer_id" json:"customer_id"`
	OfferID    string    `db:"offer_id" json:"offer_id"`
	AssignedAt time.Time `db:"assigned_at" json:"assigned_at"`
}

package models

import "time"

// MobileType represents the OS of a customer's registered device
type MobileType string

const (
	MobileTypeIOS     MobileType = "iOS"
	MobileTypeAndroid MobileType = "Android"
)

// Customer represents a customer in the roster database
type Customer struct {
	ID           string     `db:"customer_id" json:"customer_id"`
	Name         string     `db:"customer_name" json:"customer_name"`
	MobileNumber string     `db:"mobile_number" json:"mobile_number"`
	Email        string     `db:"email" json:"email"`
	MobileType   MobileType `db:"mobile_type" json:"mobile_type"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

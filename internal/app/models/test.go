package models

import "time"

// Test is a diagnostic catalog item. Billing treats it as read-only
// reference data; line items copy Price at billing time.
type Test struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Price       float64   `bson:"price" json:"price"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	CreatedBy   string    `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

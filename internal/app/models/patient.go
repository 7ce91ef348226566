package models

import "time"

type Patient struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Age           int       `bson:"age" json:"age"`
	Gender        string    `bson:"gender" json:"gender"`
	ContactNumber string    `bson:"contactNumber" json:"contactNumber"`
	Email         string    `bson:"email,omitempty" json:"email,omitempty"`
	Address       string    `bson:"address,omitempty" json:"address,omitempty"`
	RegisteredBy  string    `bson:"registeredBy,omitempty" json:"registeredBy,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

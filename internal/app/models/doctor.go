package models

import "time"

type Doctor struct {
	ID             string    `bson:"_id,omitempty" json:"id"`
	Name           string    `bson:"name" json:"name"`
	Specialization string    `bson:"specialization" json:"specialization"`
	ContactNumber  string    `bson:"contactNumber" json:"contactNumber"`
	Email          string    `bson:"email,omitempty" json:"email,omitempty"`
	Address        string    `bson:"address,omitempty" json:"address,omitempty"`
	CreatedBy      string    `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	TotalEarnings  float64   `bson:"totalEarnings" json:"totalEarnings"`
}

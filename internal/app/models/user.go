package models

import "time"

// UserType is a closed role set: every authorization decision in the
// API is list-membership over these two values.
type UserType int

const (
	UserTypeAdmin   UserType = 1
	UserTypeManager UserType = 2
)

func (t UserType) Valid() bool {
	return t == UserTypeAdmin || t == UserTypeManager
}

type User struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"-"`
	UserType  UserType  `bson:"userType" json:"userType"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

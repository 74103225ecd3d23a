package models

import "time"

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type User struct {
	ID        string    `bson:"_id,omitempty" json:"user_id"`
	Name      string    `bson:"name" json:"name,omitempty"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"-"`
	Role      string    `bson:"role" json:"role,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt,omitempty"`
}

package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending   = "Pending"
	StatusShipped   = "Shipped"
	StatusDelivered = "Delivered"
)

// ValidStatus vérifie qu'un statut appartient à l'énumération.
// Aucun graphe de transition : Delivered → Pending reste permis.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusShipped || s == StatusDelivered
}

type OrderItem struct {
	Product  primitive.ObjectID `bson:"product" json:"product"`
	Quantity int                `bson:"quantity" json:"quantity"`

	// Champs résolus à la lecture, jamais persistés
	ProductName  string  `bson:"-" json:"productName,omitempty"`
	ProductPrice float64 `bson:"-" json:"productPrice,omitempty"`
}

type Order struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"user_id" json:"user"`
	Items      []OrderItem        `bson:"order_items" json:"orderItems"`
	Status     string             `bson:"status" json:"status"`
	TotalPrice float64            `bson:"total_price" json:"totalPrice"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updatedAt"`

	// Champs résolus à la lecture (vue admin), jamais persistés
	UserName  string `bson:"-" json:"userName,omitempty"`
	UserEmail string `bson:"-" json:"userEmail,omitempty"`
}

// Validate est appelé par le store au moment de la persistance.
// Une quantité invalide est donc détectée à l'écriture, pas à l'intake.
func (o *Order) Validate() error {
	if o.UserID == "" {
		return errors.New("la commande doit référencer un utilisateur")
	}
	if len(o.Items) == 0 {
		return errors.New("la commande doit contenir au moins un article")
	}
	for _, item := range o.Items {
		if item.Quantity < 1 {
			return errors.New("la quantité ne peut pas être inférieure à 1")
		}
	}
	if !ValidStatus(o.Status) {
		return errors.New("statut de commande invalide")
	}
	if o.TotalPrice < 0 {
		return errors.New("le prix total ne peut pas être négatif")
	}
	return nil
}

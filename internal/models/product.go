package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Seuil d'alerte par défaut quand le client n'en fournit pas
const DefaultLowStockThreshold = 10

type Product struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name              string             `bson:"name" json:"name"`
	Description       string             `bson:"description" json:"description"`
	Price             float64            `bson:"price" json:"price"`
	Stock             int                `bson:"stock" json:"stock"`
	LowStockThreshold int                `bson:"low_stock_threshold" json:"lowStockThreshold"`
	ImageURL          string             `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	CreatedAt         time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Validate est appelé par le store avant chaque écriture,
// comme une validation de schéma côté document
func (p *Product) Validate() error {
	if p.Name == "" {
		return errors.New("le nom du produit est obligatoire")
	}
	if p.Description == "" {
		return errors.New("la description du produit est obligatoire")
	}
	if p.Price < 0 {
		return errors.New("le prix ne peut pas être négatif")
	}
	if p.Stock < 0 {
		return errors.New("le stock ne peut pas être négatif")
	}
	if p.LowStockThreshold < 0 {
		return errors.New("le seuil de stock ne peut pas être négatif")
	}
	return nil
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func validOrder() Order {
	return Order{
		UserID:     "user-1",
		Items:      []OrderItem{{Product: primitive.NewObjectID(), Quantity: 2}},
		Status:     StatusPending,
		TotalPrice: 40,
	}
}

func TestOrderValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Order)
		wantErr bool
	}{
		{"valide", func(o *Order) {}, false},
		{"sans utilisateur", func(o *Order) { o.UserID = "" }, true},
		{"sans articles", func(o *Order) { o.Items = nil }, true},
		{"quantité nulle", func(o *Order) { o.Items[0].Quantity = 0 }, true},
		{"quantité négative", func(o *Order) { o.Items[0].Quantity = -2 }, true},
		{"statut inconnu", func(o *Order) { o.Status = "Cancelled" }, true},
		{"prix total négatif", func(o *Order) { o.TotalPrice = -1 }, true},
		{"prix total nul", func(o *Order) { o.TotalPrice = 0 }, false},
		{"statut Shipped", func(o *Order) { o.Status = StatusShipped }, false},
		{"statut Delivered", func(o *Order) { o.Status = StatusDelivered }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := validOrder()
			tt.mutate(&o)
			err := o.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusPending))
	assert.True(t, ValidStatus(StatusShipped))
	assert.True(t, ValidStatus(StatusDelivered))

	assert.False(t, ValidStatus(""))
	assert.False(t, ValidStatus("pending")) // sensible à la casse
	assert.False(t, ValidStatus("Cancelled"))
}

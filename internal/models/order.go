package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ShippingInfo is the checkout form as submitted by the storefront.
type ShippingInfo struct {
	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email" json:"email"`
	Phone   string `bson:"phone" json:"phone"`
	Address string `bson:"address" json:"address"`
	City    string `bson:"city" json:"city"`
}

type OrderItem struct {
	ProductID string  `bson:"productId" json:"productId"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
	Quantity  int     `bson:"quantity" json:"quantity"`
}

// Order status is a free-form string; the storefront currently sends
// "Pending" and admins flip it to "Delivered".
type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ShippingInfo ShippingInfo       `bson:"shippingInfo" json:"shippingInfo"`
	Items        []OrderItem        `bson:"items" json:"items"`
	Total        float64            `bson:"total" json:"total"`
	ShippingFee  float64            `bson:"shippingFee" json:"shippingFee"`
	Status       string             `bson:"status" json:"status"`
	Date         string             `bson:"date" json:"date"`
}

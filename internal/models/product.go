package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Product struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name             string             `bson:"name" json:"name"`
	Brand            string             `bson:"brand" json:"brand"`
	RegularPrice     float64            `bson:"regular_price" json:"regular_price"`
	OfferPrice       float64            `bson:"offer_price" json:"offer_price"`
	Rating           float64            `bson:"rating" json:"rating"`
	Category         string             `bson:"category" json:"category"`
	IsFeatured       bool               `bson:"is_featured" json:"is_featured"`
	StockStatus      string             `bson:"stock_status" json:"stock_status"`
	ShortDescription string             `bson:"short_description" json:"short_description"`
	LongDescription  string             `bson:"long_description" json:"long_description"`
	Images           []string           `bson:"images" json:"images"`
	Features         []string           `bson:"features" json:"features"`
}

// ProductUpdate carries the optional fields of a partial product update.
// Nil means "not provided" so that zero values can still be written.
type ProductUpdate struct {
	Name             *string   `json:"name"`
	Brand            *string   `json:"brand"`
	RegularPrice     *float64  `json:"regular_price"`
	OfferPrice       *float64  `json:"offer_price"`
	Rating           *float64  `json:"rating"`
	Category         *string   `json:"category"`
	IsFeatured       *bool     `json:"is_featured"`
	StockStatus      *string   `json:"stock_status"`
	ShortDescription *string   `json:"short_description"`
	LongDescription  *string   `json:"long_description"`
	Images           *[]string `json:"images"`
	Features         *[]string `json:"features"`
}

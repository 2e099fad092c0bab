package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Service is a catalog entry. Slots always holds the full slot catalog as stored;
// availability views are derived per request and never written back.
type Service struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitzero"`
	Name  string             `bson:"name" json:"name"`
	Slots []string           `bson:"slots,omitempty" json:"slots"`
	Price *float64           `bson:"price,omitempty" json:"price,omitempty"`
}

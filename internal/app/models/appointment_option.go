package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// AppointmentOption is an immutable treatment template. Remaining slots are
// computed at query time by subtracting booked slots; the stored document is
// never mutated.
type AppointmentOption struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name  string             `bson:"name" json:"name"`
	Slots []string           `bson:"slots" json:"slots"`
	Price float64            `bson:"price" json:"price"`
}

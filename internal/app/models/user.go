package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is keyed by email by convention only; the store enforces no
// uniqueness constraint on registration.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}

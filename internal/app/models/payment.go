package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Payment is an append-only ledger entry. BookingID references the booking
// that gets marked paid; the booking stays the canonical paid-state holder.
type Payment struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	BookingID       string             `bson:"bookingId" json:"bookingId"`
	Email           string             `bson:"email,omitempty" json:"email,omitempty"`
	Price           float64            `bson:"price,omitempty" json:"price,omitempty"`
	TransactionID   string             `bson:"transactionId" json:"transactionId"`
	PaymentMethodID string             `bson:"paymentMethodId,omitempty" json:"paymentMethodId,omitempty"`
}

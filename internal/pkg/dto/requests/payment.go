package requests

// CreatePaymentIntent carries the treatment price in major currency units.
// No positivity check is applied to price.
type CreatePaymentIntent struct {
	Price float64 `json:"price"`
}

type RecordPayment struct {
	BookingID       string  `json:"bookingId" validate:"required"`
	Email           string  `json:"email"`
	Price           float64 `json:"price"`
	TransactionID   string  `json:"transactionId" validate:"required"`
	PaymentMethodID string  `json:"paymentMethodId"`
}

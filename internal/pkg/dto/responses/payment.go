package responses

// PaymentIntent returns the provider handle the client completes the charge with.
type PaymentIntent struct {
	ClientSecret string `json:"clientSecret"`
}

package contracts

import "context"

// PaymentGatewayService creates charge intents on the external provider.
// Amount is in minor currency units.
type PaymentGatewayService interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (clientSecret string, err error)
}

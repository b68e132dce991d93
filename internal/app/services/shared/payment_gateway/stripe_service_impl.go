package payment_gateway

import (
	"context"
	"doctorsportal-service/internal/app/config"
	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/exceptions"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

type stripeService struct{}

func NewStripeService(internalConfig *config.InternalConfig) contracts.PaymentGatewayService {
	stripe.Key = internalConfig.Stripe.SecretKey
	return &stripeService{}
}

func (s *stripeService) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{
			constvars.PaymentMethodCard,
		}),
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", exceptions.ErrPaymentGatewayCreateIntent(err)
	}
	return intent.ClientSecret, nil
}

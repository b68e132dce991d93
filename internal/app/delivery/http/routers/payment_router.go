package routers

import (
	"doctorsportal-service/internal/app/delivery/http/middlewares"
	"doctorsportal-service/internal/app/services/payments"

	"github.com/go-chi/chi/v5"
)

func attachPaymentRoutes(router chi.Router, _ *middlewares.Middlewares, paymentController *payments.PaymentController) {
	router.Post("/create-payment-intent", paymentController.CreatePaymentIntent)
	router.Post("/payment", paymentController.RecordPayment)
}

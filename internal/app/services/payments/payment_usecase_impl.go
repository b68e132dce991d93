package payments

import (
	"context"
	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/dto/responses"
	"math"

	"go.uber.org/zap"
)

type paymentUsecase struct {
	PaymentRepository contracts.PaymentRepository
	BookingRepository contracts.BookingRepository
	PaymentGateway    contracts.PaymentGatewayService
	Log               *zap.Logger
}

func NewPaymentUsecase(
	paymentRepository contracts.PaymentRepository,
	bookingRepository contracts.BookingRepository,
	paymentGateway contracts.PaymentGatewayService,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	return &paymentUsecase{
		PaymentRepository: paymentRepository,
		BookingRepository: bookingRepository,
		PaymentGateway:    paymentGateway,
		Log:               logger,
	}
}

// CreatePaymentIntent converts the treatment price from major units to the
// gateway's minor units before asking for a client secret.
func (uc *paymentUsecase) CreatePaymentIntent(ctx context.Context, request *requests.CreatePaymentIntent) (*responses.PaymentIntent, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.CreatePaymentIntent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Float64("price", request.Price),
	)

	// Round, don't truncate: 0.29 in binary floating point is slightly
	// below 29 cents.
	amount := int64(math.Round(request.Price * 100))
	clientSecret, err := uc.PaymentGateway.CreatePaymentIntent(ctx, amount, constvars.PaymentCurrencyUSD)
	if err != nil {
		return nil, err
	}

	return &responses.PaymentIntent{ClientSecret: clientSecret}, nil
}

// RecordPayment appends the ledger entry first and then flips the booking to
// paid. The two writes are not transactional; a crash in between leaves a
// recorded payment against an unpaid booking.
func (uc *paymentUsecase) RecordPayment(ctx context.Context, request *requests.RecordPayment) (*responses.DocumentInsertResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.RecordPayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("booking_id", request.BookingID),
		zap.String("transaction_id", request.TransactionID),
	)

	paymentModel := &models.Payment{
		BookingID:       request.BookingID,
		Email:           request.Email,
		Price:           request.Price,
		TransactionID:   request.TransactionID,
		PaymentMethodID: request.PaymentMethodID,
	}

	paymentID, err := uc.PaymentRepository.CreatePayment(ctx, paymentModel)
	if err != nil {
		return nil, err
	}

	err = uc.BookingRepository.MarkPaid(ctx, request.BookingID, request.TransactionID)
	if err != nil {
		return nil, err
	}

	return &responses.DocumentInsertResult{
		Acknowledged: true,
		InsertedID:   paymentID,
	}, nil
}

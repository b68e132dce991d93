package payments

import (
	"context"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/dto/requests"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) CreatePayment(ctx context.Context, payment *models.Payment) (string, error) {
	args := m.Called(ctx, payment)
	return args.String(0), args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) FindByDate(ctx context.Context, appointmentDate string) ([]models.Booking, error) {
	args := m.Called(ctx, appointmentDate)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindDuplicate(ctx context.Context, appointmentDate, treatment, email string) (*models.Booking, error) {
	args := m.Called(ctx, appointmentDate, treatment, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) CreateBooking(ctx context.Context, booking *models.Booking) (string, error) {
	args := m.Called(ctx, booking)
	return args.String(0), args.Error(1)
}

func (m *MockBookingRepository) MarkPaid(ctx context.Context, bookingID, transactionID string) error {
	args := m.Called(ctx, bookingID, transactionID)
	return args.Error(0)
}

type MockPaymentGatewayService struct {
	mock.Mock
}

func (m *MockPaymentGatewayService) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error) {
	args := m.Called(ctx, amount, currency)
	return args.String(0), args.Error(1)
}

func TestCreatePaymentIntent(t *testing.T) {
	t.Run("price is converted to minor units", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepository)
		bookingRepo := new(MockBookingRepository)
		gateway := new(MockPaymentGatewayService)
		uc := NewPaymentUsecase(paymentRepo, bookingRepo, gateway, zap.NewNop())

		gateway.On("CreatePaymentIntent", mock.Anything, int64(2050), constvars.PaymentCurrencyUSD).
			Return("pi_123_secret_456", nil)

		result, err := uc.CreatePaymentIntent(context.Background(), &requests.CreatePaymentIntent{Price: 20.50})

		assert.NoError(t, err)
		assert.Equal(t, "pi_123_secret_456", result.ClientSecret)
	})

	t.Run("minor-unit conversion rounds instead of truncating", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepository)
		bookingRepo := new(MockBookingRepository)
		gateway := new(MockPaymentGatewayService)
		uc := NewPaymentUsecase(paymentRepo, bookingRepo, gateway, zap.NewNop())

		// 0.29 * 100 is 28.999... in binary floating point; the charge
		// must still be 29 cents.
		gateway.On("CreatePaymentIntent", mock.Anything, int64(29), constvars.PaymentCurrencyUSD).
			Return("pi_789_secret_012", nil)

		result, err := uc.CreatePaymentIntent(context.Background(), &requests.CreatePaymentIntent{Price: 0.29})

		assert.NoError(t, err)
		assert.Equal(t, "pi_789_secret_012", result.ClientSecret)
		gateway.AssertCalled(t, "CreatePaymentIntent", mock.Anything, int64(29), constvars.PaymentCurrencyUSD)
	})

	t.Run("gateway failure is propagated", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepository)
		bookingRepo := new(MockBookingRepository)
		gateway := new(MockPaymentGatewayService)
		uc := NewPaymentUsecase(paymentRepo, bookingRepo, gateway, zap.NewNop())

		gateway.On("CreatePaymentIntent", mock.Anything, int64(2000), constvars.PaymentCurrencyUSD).
			Return("", errors.New("provider unavailable"))

		result, err := uc.CreatePaymentIntent(context.Background(), &requests.CreatePaymentIntent{Price: 20})

		assert.Nil(t, result)
		assert.Error(t, err)
	})
}

func TestRecordPayment(t *testing.T) {
	request := &requests.RecordPayment{
		BookingID:     "663a0f0e2f8fb814b56fa181",
		Email:         "alice@example.com",
		Price:         20,
		TransactionID: "txn_abc123",
	}

	t.Run("payment is stored and booking marked paid", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepository)
		bookingRepo := new(MockBookingRepository)
		gateway := new(MockPaymentGatewayService)
		uc := NewPaymentUsecase(paymentRepo, bookingRepo, gateway, zap.NewNop())

		paymentRepo.On("CreatePayment", mock.Anything, mock.MatchedBy(func(p *models.Payment) bool {
			return p.BookingID == request.BookingID && p.TransactionID == request.TransactionID
		})).Return("663a10aa2f8fb814b56fa199", nil)
		bookingRepo.On("MarkPaid", mock.Anything, request.BookingID, request.TransactionID).Return(nil)

		result, err := uc.RecordPayment(context.Background(), request)

		assert.NoError(t, err)
		assert.True(t, result.Acknowledged)
		assert.Equal(t, "663a10aa2f8fb814b56fa199", result.InsertedID)
		bookingRepo.AssertCalled(t, "MarkPaid", mock.Anything, request.BookingID, request.TransactionID)
	})

	t.Run("insert failure leaves the booking untouched", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepository)
		bookingRepo := new(MockBookingRepository)
		gateway := new(MockPaymentGatewayService)
		uc := NewPaymentUsecase(paymentRepo, bookingRepo, gateway, zap.NewNop())

		paymentRepo.On("CreatePayment", mock.Anything, mock.Anything).Return("", errors.New("write failed"))

		result, err := uc.RecordPayment(context.Background(), request)

		assert.Nil(t, result)
		assert.Error(t, err)
		bookingRepo.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything)
	})
}

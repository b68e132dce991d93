package routers

import (
	"context"
	"doctorsportal-service/internal/app/config"
	"doctorsportal-service/internal/app/delivery/http/middlewares"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/app/services/bookings"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/dto/responses"
	"doctorsportal-service/internal/pkg/utils"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockBookingUsecase struct {
	mock.Mock
}

func (m *MockBookingUsecase) ListByEmail(ctx context.Context, decodedEmail, email string) ([]models.Booking, error) {
	args := m.Called(ctx, decodedEmail, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingUsecase) CreateBooking(ctx context.Context, request *requests.CreateBooking) (*responses.BookingAcknowledgement, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.BookingAcknowledgement), args.Error(1)
}

func (m *MockBookingUsecase) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

const testSecret = "test-access-token-secret"

func newBookingTestRouter(mockUsecase *MockBookingUsecase) *chi.Mux {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{}
	internalConfig.JWT.Secret = testSecret
	internalConfig.JWT.ExpTimeInHour = 24

	mw := middlewares.NewMiddlewares(logger, nil, internalConfig)
	bookingController := bookings.NewBookingController(logger, mockUsecase)

	router := chi.NewRouter()
	attachBookingRoutes(router, mw, bookingController)
	return router
}

func TestBookingRoutes(t *testing.T) {
	t.Run("listing bookings without a token answers 401", func(t *testing.T) {
		router := newBookingTestRouter(new(MockBookingUsecase))

		req := httptest.NewRequest("GET", "/bookings?email=alice@example.com", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("listing bookings forwards the token identity", func(t *testing.T) {
		mockUsecase := new(MockBookingUsecase)
		mockUsecase.On("ListByEmail", mock.Anything, "alice@example.com", "alice@example.com").
			Return([]models.Booking{{Treatment: "Teeth Cleaning", Email: "alice@example.com"}}, nil)
		router := newBookingTestRouter(mockUsecase)

		token, err := utils.GenerateAccessJWT("alice@example.com", testSecret, 24)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/bookings?email=alice@example.com", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body responses.ResponseDTO
		err = json.Unmarshal(rec.Body.Bytes(), &body)
		assert.NoError(t, err)
		assert.True(t, body.Success)
	})

	t.Run("booking by id is public", func(t *testing.T) {
		mockUsecase := new(MockBookingUsecase)
		mockUsecase.On("GetByID", mock.Anything, "663a0f0e2f8fb814b56fa181").
			Return(&models.Booking{Treatment: "Teeth Cleaning"}, nil)
		router := newBookingTestRouter(mockUsecase)

		req := httptest.NewRequest("GET", "/booking/663a0f0e2f8fb814b56fa181", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("creating a booking validates the payload", func(t *testing.T) {
		router := newBookingTestRouter(new(MockBookingUsecase))

		req := httptest.NewRequest("POST", "/bookings", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

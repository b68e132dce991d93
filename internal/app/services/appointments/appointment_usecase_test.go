package appointments

import (
	"context"
	"doctorsportal-service/internal/app/config"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) FindAll(ctx context.Context) ([]models.AppointmentOption, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.AppointmentOption), args.Error(1)
}

func (m *MockAppointmentRepository) FindAllNames(ctx context.Context) ([]models.AppointmentOption, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.AppointmentOption), args.Error(1)
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

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func newTestAppointmentUsecase(
	appointmentRepo *MockAppointmentRepository,
	bookingRepo *MockBookingRepository,
	redisRepo *MockRedisRepository,
) *appointmentUsecase {
	internalConfig := &config.InternalConfig{}
	internalConfig.App.OptionTemplateCacheTTLMin = 10
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepo,
		BookingRepository:     bookingRepo,
		RedisRepository:       redisRepo,
		InternalConfig:        internalConfig,
		Log:                   zap.NewNop(),
	}
}

func TestGetOptionsForDate(t *testing.T) {
	templates := []models.AppointmentOption{
		{
			ID:    primitive.NewObjectID(),
			Name:  "Teeth Cleaning",
			Slots: []string{"08.00 AM - 08.30 AM", "08.30 AM - 09.00 AM", "09.00 AM - 09.30 AM"},
			Price: 20,
		},
		{
			ID:    primitive.NewObjectID(),
			Name:  "Cavity Protection",
			Slots: []string{"10.00 AM - 10.30 AM"},
			Price: 40,
		},
	}

	t.Run("date with zero bookings returns all slots", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		bookingRepo := new(MockBookingRepository)
		redisRepo := new(MockRedisRepository)

		redisRepo.On("Get", mock.Anything, constvars.RedisKeyAppointmentOptions).Return("", nil)
		redisRepo.On("Set", mock.Anything, constvars.RedisKeyAppointmentOptions, mock.Anything, mock.Anything).Return(nil)
		appointmentRepo.On("FindAll", mock.Anything).Return(templates, nil)
		bookingRepo.On("FindByDate", mock.Anything, "17 May 2026").Return([]models.Booking{}, nil)

		uc := newTestAppointmentUsecase(appointmentRepo, bookingRepo, redisRepo)
		result, err := uc.GetOptionsForDate(context.Background(), "17 May 2026")

		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, templates[0].Slots, result[0].Slots)
		assert.Equal(t, templates[1].Slots, result[1].Slots)
	})

	t.Run("booked slots are removed only for the matching treatment", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		bookingRepo := new(MockBookingRepository)
		redisRepo := new(MockRedisRepository)

		redisRepo.On("Get", mock.Anything, constvars.RedisKeyAppointmentOptions).Return("", nil)
		redisRepo.On("Set", mock.Anything, constvars.RedisKeyAppointmentOptions, mock.Anything, mock.Anything).Return(nil)
		appointmentRepo.On("FindAll", mock.Anything).Return(templates, nil)
		bookingRepo.On("FindByDate", mock.Anything, "17 May 2026").Return([]models.Booking{
			{Treatment: "Teeth Cleaning", Slot: "08.30 AM - 09.00 AM", AppointmentDate: "17 May 2026"},
		}, nil)

		uc := newTestAppointmentUsecase(appointmentRepo, bookingRepo, redisRepo)
		result, err := uc.GetOptionsForDate(context.Background(), "17 May 2026")

		assert.NoError(t, err)
		assert.Equal(t, []string{"08.00 AM - 08.30 AM", "09.00 AM - 09.30 AM"}, result[0].Slots)
		assert.Equal(t, []string{"10.00 AM - 10.30 AM"}, result[1].Slots)
	})

	t.Run("fully booked option stays in the result with empty slots", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		bookingRepo := new(MockBookingRepository)
		redisRepo := new(MockRedisRepository)

		redisRepo.On("Get", mock.Anything, constvars.RedisKeyAppointmentOptions).Return("", nil)
		redisRepo.On("Set", mock.Anything, constvars.RedisKeyAppointmentOptions, mock.Anything, mock.Anything).Return(nil)
		appointmentRepo.On("FindAll", mock.Anything).Return(templates, nil)
		bookingRepo.On("FindByDate", mock.Anything, "17 May 2026").Return([]models.Booking{
			{Treatment: "Cavity Protection", Slot: "10.00 AM - 10.30 AM"},
		}, nil)

		uc := newTestAppointmentUsecase(appointmentRepo, bookingRepo, redisRepo)
		result, err := uc.GetOptionsForDate(context.Background(), "17 May 2026")

		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, "Cavity Protection", result[1].Name)
		assert.Empty(t, result[1].Slots)
	})

	t.Run("cache hit skips the template collection entirely", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		bookingRepo := new(MockBookingRepository)
		redisRepo := new(MockRedisRepository)

		cached := `[{"name":"Teeth Cleaning","slots":["08.00 AM - 08.30 AM"],"price":20}]`
		redisRepo.On("Get", mock.Anything, constvars.RedisKeyAppointmentOptions).Return(cached, nil)
		bookingRepo.On("FindByDate", mock.Anything, "17 May 2026").Return([]models.Booking{}, nil)

		uc := newTestAppointmentUsecase(appointmentRepo, bookingRepo, redisRepo)
		result, err := uc.GetOptionsForDate(context.Background(), "17 May 2026")

		assert.NoError(t, err)
		assert.Len(t, result, 1)
		appointmentRepo.AssertNotCalled(t, "FindAll", mock.Anything)
	})
}

func TestSubtractSlots(t *testing.T) {
	t.Run("one occurrence removed per booked occurrence", func(t *testing.T) {
		remaining := subtractSlots(
			[]string{"A", "A", "B"},
			map[string]int{"A": 1},
		)
		assert.Equal(t, []string{"A", "B"}, remaining)
	})

	t.Run("unknown booked slots are ignored", func(t *testing.T) {
		remaining := subtractSlots(
			[]string{"A", "B"},
			map[string]int{"C": 3},
		)
		assert.Equal(t, []string{"A", "B"}, remaining)
	})
}

func TestGetSpecialties(t *testing.T) {
	appointmentRepo := new(MockAppointmentRepository)
	bookingRepo := new(MockBookingRepository)
	redisRepo := new(MockRedisRepository)

	names := []models.AppointmentOption{
		{ID: primitive.NewObjectID(), Name: "Teeth Cleaning"},
		{ID: primitive.NewObjectID(), Name: "Cavity Protection"},
	}
	appointmentRepo.On("FindAllNames", mock.Anything).Return(names, nil)

	uc := newTestAppointmentUsecase(appointmentRepo, bookingRepo, redisRepo)
	result, err := uc.GetSpecialties(context.Background())

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "Teeth Cleaning", result[0].Name)
	assert.Equal(t, names[0].ID.Hex(), result[0].ID)
}

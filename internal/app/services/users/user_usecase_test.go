package users

import (
	"context"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/dto/responses"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, userModel *models.User) (string, error) {
	args := m.Called(ctx, userModel)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) PromoteToAdminByID(ctx context.Context, userID string) (*responses.DocumentUpdateResult, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.DocumentUpdateResult), args.Error(1)
}

func TestRegister(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewUserUsecase(userRepo, zap.NewNop())

	userRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "alice@example.com" && u.Name == "Alice"
	})).Return("663a0f0e2f8fb814b56fa181", nil)

	result, err := uc.Register(context.Background(), &requests.RegisterUser{
		Name:  "Alice",
		Email: "alice@example.com",
	})

	assert.NoError(t, err)
	assert.True(t, result.Acknowledged)
	assert.Equal(t, "663a0f0e2f8fb814b56fa181", result.InsertedID)
}

func TestIsAdmin(t *testing.T) {
	t.Run("admin role reports true", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc := NewUserUsecase(userRepo, zap.NewNop())

		userRepo.On("FindByEmail", mock.Anything, "root@example.com").
			Return(&models.User{Email: "root@example.com", Role: "admin"}, nil)

		isAdmin, err := uc.IsAdmin(context.Background(), "root@example.com")

		assert.NoError(t, err)
		assert.True(t, isAdmin)
	})

	t.Run("plain user reports false", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc := NewUserUsecase(userRepo, zap.NewNop())

		userRepo.On("FindByEmail", mock.Anything, "bob@example.com").
			Return(&models.User{Email: "bob@example.com"}, nil)

		isAdmin, err := uc.IsAdmin(context.Background(), "bob@example.com")

		assert.NoError(t, err)
		assert.False(t, isAdmin)
	})

	t.Run("unknown email reports false without error", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc := NewUserUsecase(userRepo, zap.NewNop())

		userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

		isAdmin, err := uc.IsAdmin(context.Background(), "ghost@example.com")

		assert.NoError(t, err)
		assert.False(t, isAdmin)
	})
}

func TestPromoteToAdmin(t *testing.T) {
	t.Run("unknown id upserts a fresh admin document", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc := NewUserUsecase(userRepo, zap.NewNop())

		userRepo.On("PromoteToAdminByID", mock.Anything, "663a0f0e2f8fb814b56fa181").
			Return(&responses.DocumentUpdateResult{
				Acknowledged: true,
				UpsertedID:   "663a0f0e2f8fb814b56fa181",
			}, nil)

		result, err := uc.PromoteToAdmin(context.Background(), "663a0f0e2f8fb814b56fa181")

		assert.NoError(t, err)
		assert.True(t, result.Acknowledged)
		assert.Equal(t, "663a0f0e2f8fb814b56fa181", result.UpsertedID)
	})
}

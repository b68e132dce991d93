package auth

import (
	"context"
	"doctorsportal-service/internal/app/config"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/dto/responses"
	"doctorsportal-service/internal/pkg/exceptions"
	"doctorsportal-service/internal/pkg/utils"
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

func newTestInternalConfig() *config.InternalConfig {
	internalConfig := &config.InternalConfig{}
	internalConfig.JWT.Secret = "test-access-token-secret"
	internalConfig.JWT.ExpTimeInHour = 24
	return internalConfig
}

func TestIssueToken(t *testing.T) {
	t.Run("unknown email gets forbidden and no token", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc := NewAuthUsecase(userRepo, newTestInternalConfig(), zap.NewNop())

		userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

		result, err := uc.IssueToken(context.Background(), "ghost@example.com")

		assert.Nil(t, result)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("registered email gets a verifiable token", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		internalConfig := newTestInternalConfig()
		uc := NewAuthUsecase(userRepo, internalConfig, zap.NewNop())

		userRepo.On("FindByEmail", mock.Anything, "alice@example.com").
			Return(&models.User{Name: "Alice", Email: "alice@example.com"}, nil)

		result, err := uc.IssueToken(context.Background(), "alice@example.com")

		assert.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)

		email, err := utils.ParseAccessJWT(result.AccessToken, internalConfig.JWT.Secret)
		assert.NoError(t, err)
		assert.Equal(t, "alice@example.com", email)
	})
}

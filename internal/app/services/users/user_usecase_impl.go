package users

import (
	"context"
	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	Log            *zap.Logger
}

func NewUserUsecase(userRepository contracts.UserRepository, logger *zap.Logger) contracts.UserUsecase {
	return &userUsecase{
		UserRepository: userRepository,
		Log:            logger,
	}
}

// Register stores the payload as given. Re-registering an email creates a
// second document; login flows only ever read the first match.
func (uc *userUsecase) Register(ctx context.Context, request *requests.RegisterUser) (*responses.DocumentInsertResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	userModel := &models.User{
		Name:  request.Name,
		Email: request.Email,
		Role:  request.Role,
	}

	userID, err := uc.UserRepository.CreateUser(ctx, userModel)
	if err != nil {
		return nil, err
	}

	return &responses.DocumentInsertResult{
		Acknowledged: true,
		InsertedID:   userID,
	}, nil
}

// IsAdmin reports false for unknown emails rather than erroring, so the
// dashboard can probe without special-casing fresh accounts.
func (uc *userUsecase) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}
	return user.Role == constvars.UserRoleAdmin, nil
}

func (uc *userUsecase) FindAll(ctx context.Context) ([]models.User, error) {
	return uc.UserRepository.FindAll(ctx)
}

func (uc *userUsecase) PromoteToAdmin(ctx context.Context, userID string) (*responses.DocumentUpdateResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.PromoteToAdmin called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("user_id", userID),
	)

	return uc.UserRepository.PromoteToAdminByID(ctx, userID)
}

package contracts

import (
	"context"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	Register(ctx context.Context, request *requests.RegisterUser) (*responses.DocumentInsertResult, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	FindAll(ctx context.Context) ([]models.User, error)
	PromoteToAdmin(ctx context.Context, userID string) (*responses.DocumentUpdateResult, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, userModel *models.User) (userID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	PromoteToAdminByID(ctx context.Context, userID string) (*responses.DocumentUpdateResult, error)
}

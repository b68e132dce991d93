package contracts

import (
	"context"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/dto/responses"
)

type DoctorUsecase interface {
	FindAll(ctx context.Context) ([]models.Doctor, error)
	CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.DocumentInsertResult, error)
	DeleteByID(ctx context.Context, doctorID string) (*responses.DocumentDeleteResult, error)
}

type DoctorRepository interface {
	FindAll(ctx context.Context) ([]models.Doctor, error)
	CreateDoctor(ctx context.Context, doctor *models.Doctor) (doctorID string, err error)
	DeleteByID(ctx context.Context, doctorID string) (int64, error)
}

package contracts

import (
	"context"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	GetOptionsForDate(ctx context.Context, date string) ([]responses.AppointmentOption, error)
	GetSpecialties(ctx context.Context) ([]responses.Specialty, error)
}

type AppointmentRepository interface {
	FindAll(ctx context.Context) ([]models.AppointmentOption, error)
	FindAllNames(ctx context.Context) ([]models.AppointmentOption, error)
}

package contracts

import (
	"context"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/dto/responses"
)

type BookingUsecase interface {
	ListByEmail(ctx context.Context, decodedEmail, email string) ([]models.Booking, error)
	CreateBooking(ctx context.Context, request *requests.CreateBooking) (*responses.BookingAcknowledgement, error)
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
}

type BookingRepository interface {
	FindByDate(ctx context.Context, appointmentDate string) ([]models.Booking, error)
	FindByEmail(ctx context.Context, email string) ([]models.Booking, error)
	FindDuplicate(ctx context.Context, appointmentDate, treatment, email string) (*models.Booking, error)
	FindByID(ctx context.Context, bookingID string) (*models.Booking, error)
	CreateBooking(ctx context.Context, booking *models.Booking) (bookingID string, err error)
	MarkPaid(ctx context.Context, bookingID, transactionID string) error
}

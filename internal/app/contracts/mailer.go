package contracts

import (
	"context"
	"doctorsportal-service/internal/pkg/dto/requests"
)

type MailerService interface {
	SendBookingConfirmation(ctx context.Context, booking *requests.CreateBooking) error
}

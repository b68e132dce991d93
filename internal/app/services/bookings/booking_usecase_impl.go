package bookings

import (
	"context"
	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/dto/responses"
	"doctorsportal-service/internal/pkg/exceptions"
	"fmt"

	"go.uber.org/zap"
)

type bookingUsecase struct {
	BookingRepository contracts.BookingRepository
	MailerService     contracts.MailerService
	Log               *zap.Logger
}

func NewBookingUsecase(
	bookingRepository contracts.BookingRepository,
	mailerService contracts.MailerService,
	logger *zap.Logger,
) contracts.BookingUsecase {
	return &bookingUsecase{
		BookingRepository: bookingRepository,
		MailerService:     mailerService,
		Log:               logger,
	}
}

// ListByEmail rejects the request when the authenticated identity asks for
// another user's bookings.
func (uc *bookingUsecase) ListByEmail(ctx context.Context, decodedEmail, email string) ([]models.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.ListByEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	if email != decodedEmail {
		return nil, exceptions.ErrEmailMismatch(nil)
	}

	return uc.BookingRepository.FindByEmail(ctx, email)
}

// CreateBooking enforces the single business rule of the portal: one booking
// per (appointmentDate, treatment, email). A duplicate yields an
// unacknowledged result with a conflict message instead of an insert.
func (uc *bookingUsecase) CreateBooking(ctx context.Context, request *requests.CreateBooking) (*responses.BookingAcknowledgement, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.CreateBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("treatment", request.Treatment),
		zap.String("appointment_date", request.AppointmentDate),
	)

	existing, err := uc.BookingRepository.FindDuplicate(ctx, request.AppointmentDate, request.Treatment, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &responses.BookingAcknowledgement{
			Acknowledged: false,
			Message:      fmt.Sprintf(constvars.BookingConflictMessageFormat, request.AppointmentDate),
		}, nil
	}

	booking := &models.Booking{
		AppointmentDate: request.AppointmentDate,
		Treatment:       request.Treatment,
		Patient:         request.Patient,
		Slot:            request.Slot,
		Email:           request.Email,
		Phone:           request.Phone,
		Price:           request.Price,
	}

	bookingID, err := uc.BookingRepository.CreateBooking(ctx, booking)
	if err != nil {
		return nil, err
	}

	// Confirmation mail is fire-and-forget; a broker hiccup must not fail a
	// booking that is already stored.
	err = uc.MailerService.SendBookingConfirmation(ctx, request)
	if err != nil {
		uc.Log.Error("bookingUsecase.CreateBooking failed to enqueue confirmation mail",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	return &responses.BookingAcknowledgement{
		Acknowledged: true,
		InsertedID:   bookingID,
	}, nil
}

// GetByID performs no ownership check: any caller holding a valid id can read
// any booking.
func (uc *bookingUsecase) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.GetByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	booking, err := uc.BookingRepository.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, exceptions.ErrBookingNotFound(nil)
	}
	return booking, nil
}

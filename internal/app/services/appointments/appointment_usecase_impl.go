package appointments

import (
	"context"
	"doctorsportal-service/internal/app/config"
	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/dto/responses"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	BookingRepository     contracts.BookingRepository
	RedisRepository       contracts.RedisRepository
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	bookingRepository contracts.BookingRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		BookingRepository:     bookingRepository,
		RedisRepository:       redisRepository,
		InternalConfig:        internalConfig,
		Log:                   logger,
	}
}

// GetOptionsForDate returns every treatment template with its slots reduced
// to the ones not yet claimed by a booking on the requested date. A date with
// zero bookings returns the templates unmodified; a fully booked option is
// kept in the result with an empty slot list.
func (uc *appointmentUsecase) GetOptionsForDate(ctx context.Context, date string) ([]responses.AppointmentOption, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.GetOptionsForDate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("date", date),
	)

	templates, err := uc.loadTemplates(ctx)
	if err != nil {
		return nil, err
	}

	bookings, err := uc.BookingRepository.FindByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	bookedByTreatment := make(map[string]map[string]int)
	for _, booking := range bookings {
		if bookedByTreatment[booking.Treatment] == nil {
			bookedByTreatment[booking.Treatment] = make(map[string]int)
		}
		bookedByTreatment[booking.Treatment][booking.Slot]++
	}

	result := make([]responses.AppointmentOption, 0, len(templates))
	for _, template := range templates {
		remaining := subtractSlots(template.Slots, bookedByTreatment[template.Name])
		result = append(result, responses.AppointmentOption{
			ID:    template.ID.Hex(),
			Name:  template.Name,
			Slots: remaining,
			Price: template.Price,
		})
	}
	return result, nil
}

// subtractSlots removes one template occurrence per booked occurrence, so a
// duplicate booked slot is subtracted once per booking.
func subtractSlots(templateSlots []string, booked map[string]int) []string {
	remaining := make([]string, 0, len(templateSlots))
	for _, slot := range templateSlots {
		if booked[slot] > 0 {
			booked[slot]--
			continue
		}
		remaining = append(remaining, slot)
	}
	return remaining
}

// loadTemplates serves the immutable option templates through a Redis
// read-through cache keyed by RedisKeyAppointmentOptions.
func (uc *appointmentUsecase) loadTemplates(ctx context.Context) ([]models.AppointmentOption, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	cached, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyAppointmentOptions)
	if err != nil {
		uc.Log.Error("appointmentUsecase.loadTemplates error retrieving data from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if cached != "" {
		var templates []models.AppointmentOption
		if err := json.Unmarshal([]byte(cached), &templates); err == nil {
			return templates, nil
		}
		uc.Log.Warn("appointmentUsecase.loadTemplates cached payload unreadable, refetching",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
	}

	templates, err := uc.AppointmentRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(uc.InternalConfig.App.OptionTemplateCacheTTLMin) * time.Minute
	err = uc.RedisRepository.Set(ctx, constvars.RedisKeyAppointmentOptions, templates, ttl)
	if err != nil {
		uc.Log.Error("appointmentUsecase.loadTemplates error caching data in Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return templates, nil
}

func (uc *appointmentUsecase) GetSpecialties(ctx context.Context) ([]responses.Specialty, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.GetSpecialties called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	names, err := uc.AppointmentRepository.FindAllNames(ctx)
	if err != nil {
		return nil, err
	}

	specialties := make([]responses.Specialty, 0, len(names))
	for _, option := range names {
		specialties = append(specialties, responses.Specialty{
			ID:   option.ID.Hex(),
			Name: option.Name,
		})
	}
	return specialties, nil
}

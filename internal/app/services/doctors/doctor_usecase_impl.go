package doctors

import (
	"context"
	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	Log              *zap.Logger
}

func NewDoctorUsecase(doctorRepository contracts.DoctorRepository, logger *zap.Logger) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository: doctorRepository,
		Log:              logger,
	}
}

func (uc *doctorUsecase) FindAll(ctx context.Context) ([]models.Doctor, error) {
	return uc.DoctorRepository.FindAll(ctx)
}

func (uc *doctorUsecase) CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.DocumentInsertResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.CreateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("specialty", request.Specialty),
	)

	doctorModel := &models.Doctor{
		Name:      request.Name,
		Email:     request.Email,
		Specialty: request.Specialty,
		Img:       request.Img,
	}

	doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, doctorModel)
	if err != nil {
		return nil, err
	}

	return &responses.DocumentInsertResult{
		Acknowledged: true,
		InsertedID:   doctorID,
	}, nil
}

// DeleteByID acknowledges with a zero DeletedCount when the ID matches no
// document; deletion of an absent doctor is not an error.
func (uc *doctorUsecase) DeleteByID(ctx context.Context, doctorID string) (*responses.DocumentDeleteResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.DeleteByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("doctor_id", doctorID),
	)

	deletedCount, err := uc.DoctorRepository.DeleteByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	return &responses.DocumentDeleteResult{
		Acknowledged: true,
		DeletedCount: deletedCount,
	}, nil
}

package doctors

import (
	"context"

	"medibill-service/internal/app/models"
	"medibill-service/internal/pkg/constvars"
	"medibill-service/internal/pkg/dto/requests"

	"go.uber.org/zap"
)

type doctorUsecase struct {
	DoctorRepository DoctorRepository
	Log              *zap.Logger
}

func NewDoctorUsecase(doctorRepository DoctorRepository, logger *zap.Logger) DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository: doctorRepository,
		Log:              logger,
	}
}

func (uc *doctorUsecase) CreateDoctor(ctx context.Context, createdBy string, request *requests.CreateDoctor) (*models.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	doctor := &models.Doctor{
		Name:           request.Name,
		Specialization: request.Specialization,
		ContactNumber:  request.ContactNumber,
		Email:          request.Email,
		Address:        request.Address,
		CreatedBy:      createdBy,
	}

	doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, doctor)
	if err != nil {
		uc.Log.Error("doctorUsecase.CreateDoctor error creating doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	doctor.ID = doctorID

	return doctor, nil
}

func (uc *doctorUsecase) GetAllDoctors(ctx context.Context) ([]models.Doctor, error) {
	return uc.DoctorRepository.FindAll(ctx)
}

package patients

import (
	"context"

	"medibill-service/internal/app/models"
	"medibill-service/internal/pkg/constvars"
	"medibill-service/internal/pkg/dto/requests"

	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository PatientRepository
	Log               *zap.Logger
}

func NewPatientUsecase(patientRepository PatientRepository, logger *zap.Logger) PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
		Log:               logger,
	}
}

func (uc *patientUsecase) RegisterPatient(ctx context.Context, registeredBy string, request *requests.RegisterPatient) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	patient := &models.Patient{
		Name:          request.Name,
		Age:           request.Age,
		Gender:        request.Gender,
		ContactNumber: request.ContactNumber,
		Email:         request.Email,
		Address:       request.Address,
		RegisteredBy:  registeredBy,
	}

	patientID, err := uc.PatientRepository.CreatePatient(ctx, patient)
	if err != nil {
		uc.Log.Error("patientUsecase.RegisterPatient error creating patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	patient.ID = patientID

	return patient, nil
}

func (uc *patientUsecase) GetAllPatients(ctx context.Context) ([]models.Patient, error) {
	return uc.PatientRepository.FindAll(ctx)
}

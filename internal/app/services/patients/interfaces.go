package patients

import (
	"context"

	"medibill-service/internal/app/models"
	"medibill-service/internal/pkg/dto/requests"
)

type PatientUsecase interface {
	RegisterPatient(ctx context.Context, registeredBy string, request *requests.RegisterPatient) (*models.Patient, error)
	GetAllPatients(ctx context.Context) ([]models.Patient, error)
}

type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) (string, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindAll(ctx context.Context) ([]models.Patient, error)
	FindByNamePattern(ctx context.Context, pattern string) ([]models.Patient, error)
}

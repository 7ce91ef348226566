package doctors

import (
	"context"

	"medibill-service/internal/app/models"
	"medibill-service/internal/pkg/dto/requests"
)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, createdBy string, request *requests.CreateDoctor) (*models.Doctor, error)
	GetAllDoctors(ctx context.Context) ([]models.Doctor, error)
}

type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindAll(ctx context.Context) ([]models.Doctor, error)
	FindByNamePattern(ctx context.Context, pattern string) ([]models.Doctor, error)
	// IncrementEarnings adds amount to the doctor's running total with an
	// atomic $inc, so concurrent billings never lose an update.
	IncrementEarnings(ctx context.Context, doctorID string, amount float64) error
}

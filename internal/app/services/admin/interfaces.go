package admin

import (
	"context"

	"medibill-service/internal/app/models"
	"medibill-service/internal/pkg/dto/requests"
	"medibill-service/internal/pkg/dto/responses"
)

type AdminUsecase interface {
	// RegisterAdmin backs the open bootstrap route used to create the
	// first administrator account.
	RegisterAdmin(ctx context.Context, request *requests.CreateUserAccount) (*responses.CreatedUser, error)
	CreateManager(ctx context.Context, request *requests.CreateUserAccount) (*responses.CreatedUser, error)
	GetAllManagers(ctx context.Context) ([]models.User, error)
	GetDashboard(ctx context.Context) (*responses.Dashboard, error)
	GetHospitalSettings(ctx context.Context) (*models.Hospital, error)
	// UpdateHospitalSettings is the one place the three share
	// percentages are checked to sum to 100.
	UpdateHospitalSettings(ctx context.Context, request *requests.UpdateHospitalSettings) (*models.Hospital, error)
}

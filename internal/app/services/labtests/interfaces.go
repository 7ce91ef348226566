package labtests

import (
	"context"

	"medibill-service/internal/app/models"
	"medibill-service/internal/pkg/dto/requests"
)

type TestUsecase interface {
	CreateTest(ctx context.Context, createdBy string, request *requests.CreateTest) (*models.Test, error)
	GetAllTests(ctx context.Context) ([]models.Test, error)
}

type TestRepository interface {
	CreateTest(ctx context.Context, test *models.Test) (string, error)
	FindByName(ctx context.Context, name string) (*models.Test, error)
	FindByIDs(ctx context.Context, testIDs []string) ([]models.Test, error)
	FindAll(ctx context.Context) ([]models.Test, error)
}

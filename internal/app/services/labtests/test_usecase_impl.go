package labtests

import (
	"context"

	"medibill-service/internal/app/models"
	"medibill-service/internal/pkg/constvars"
	"medibill-service/internal/pkg/dto/requests"
	"medibill-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type testUsecase struct {
	TestRepository TestRepository
	Log            *zap.Logger
}

func NewTestUsecase(testRepository TestRepository, logger *zap.Logger) TestUsecase {
	return &testUsecase{
		TestRepository: testRepository,
		Log:            logger,
	}
}

func (uc *testUsecase) CreateTest(ctx context.Context, createdBy string, request *requests.CreateTest) (*models.Test, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	existingTest, err := uc.TestRepository.FindByName(ctx, request.Name)
	if err != nil {
		return nil, err
	}
	if existingTest != nil {
		return nil, exceptions.ErrTestAlreadyExist(nil)
	}

	test := &models.Test{
		Name:        request.Name,
		Price:       request.Price,
		Description: request.Description,
		CreatedBy:   createdBy,
	}

	testID, err := uc.TestRepository.CreateTest(ctx, test)
	if err != nil {
		uc.Log.Error("testUsecase.CreateTest error creating test",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	test.ID = testID

	return test, nil
}

func (uc *testUsecase) GetAllTests(ctx context.Context) ([]models.Test, error) {
	return uc.TestRepository.FindAll(ctx)
}

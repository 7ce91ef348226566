package brokers

import (
	"context"

	"medibill-service/internal/app/models"
	"medibill-service/internal/pkg/constvars"
	"medibill-service/internal/pkg/dto/requests"

	"go.uber.org/zap"
)

type brokerUsecase struct {
	BrokerRepository BrokerRepository
	Log              *zap.Logger
}

func NewBrokerUsecase(brokerRepository BrokerRepository, logger *zap.Logger) BrokerUsecase {
	return &brokerUsecase{
		BrokerRepository: brokerRepository,
		Log:              logger,
	}
}

func (uc *brokerUsecase) CreateBroker(ctx context.Context, createdBy string, request *requests.CreateBroker) (*models.Broker, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	broker := &models.Broker{
		Name:          request.Name,
		ContactNumber: request.ContactNumber,
		Email:         request.Email,
		Address:       request.Address,
		CreatedBy:     createdBy,
	}

	brokerID, err := uc.BrokerRepository.CreateBroker(ctx, broker)
	if err != nil {
		uc.Log.Error("brokerUsecase.CreateBroker error creating broker",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	broker.ID = brokerID

	return broker, nil
}

func (uc *brokerUsecase) GetAllBrokers(ctx context.Context) ([]models.Broker, error) {
	return uc.BrokerRepository.FindAll(ctx)
}

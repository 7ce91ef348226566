package brokers

import (
	"context"

	"medibill-service/internal/app/models"
	"medibill-service/internal/pkg/dto/requests"
)

type BrokerUsecase interface {
	CreateBroker(ctx context.Context, createdBy string, request *requests.CreateBroker) (*models.Broker, error)
	GetAllBrokers(ctx context.Context) ([]models.Broker, error)
}

type BrokerRepository interface {
	CreateBroker(ctx context.Context, broker *models.Broker) (string, error)
	FindByID(ctx context.Context, brokerID string) (*models.Broker, error)
	FindAll(ctx context.Context) ([]models.Broker, error)
	// IncrementCommission adds amount to the broker's commission counter
	// with an atomic $inc.
	IncrementCommission(ctx context.Context, brokerID string, amount float64) error
}

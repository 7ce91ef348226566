package brokers

import (
	"context"
	"time"

	"medibill-service/internal/app/models"
	"medibill-service/internal/pkg/constvars"
	"medibill-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type BrokerMongoRepository struct {
	Collection *mongo.Collection
}

func NewBrokerMongoRepository(db *mongo.Client, dbName string) BrokerRepository {
	return &BrokerMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBrokers),
	}
}

func (r *BrokerMongoRepository) CreateBroker(ctx context.Context, broker *models.Broker) (string, error) {
	broker.CreatedAt = time.Now()
	result, err := r.Collection.InsertOne(ctx, broker)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *BrokerMongoRepository) FindByID(ctx context.Context, brokerID string) (*models.Broker, error) {
	objectID, err := primitive.ObjectIDFromHex(brokerID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var broker models.Broker
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&broker)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &broker, nil
}

func (r *BrokerMongoRepository) FindAll(ctx context.Context) ([]models.Broker, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	brokers := make([]models.Broker, 0)
	if err := cursor.All(ctx, &brokers); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return brokers, nil
}

func (r *BrokerMongoRepository) IncrementCommission(ctx context.Context, brokerID string, amount float64) error {
	objectID, err := primitive.ObjectIDFromHex(brokerID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{"$inc": bson.M{"totalCommission": amount}},
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrBrokerNotFound(nil)
	}
	return nil
}

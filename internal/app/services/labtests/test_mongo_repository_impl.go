package labtests

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

type TestMongoRepository struct {
	Collection *mongo.Collection
}

func NewTestMongoRepository(db *mongo.Client, dbName string) TestRepository {
	return &TestMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTests),
	}
}

func (r *TestMongoRepository) CreateTest(ctx context.Context, test *models.Test) (string, error) {
	test.CreatedAt = time.Now()
	result, err := r.Collection.InsertOne(ctx, test)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrTestAlreadyExist(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *TestMongoRepository) FindByName(ctx context.Context, name string) (*models.Test, error) {
	var test models.Test
	err := r.Collection.FindOne(ctx, bson.M{"name": name}).Decode(&test)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &test, nil
}

func (r *TestMongoRepository) FindByIDs(ctx context.Context, testIDs []string) ([]models.Test, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(testIDs))
	for _, testID := range testIDs {
		objectID, err := primitive.ObjectIDFromHex(testID)
		if err != nil {
			return nil, exceptions.ErrMongoDBNotObjectID(err)
		}
		objectIDs = append(objectIDs, objectID)
	}

	cursor, err := r.Collection.Find(ctx, bson.M{"_id": bson.M{"$in": objectIDs}})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	tests := make([]models.Test, 0, len(testIDs))
	if err := cursor.All(ctx, &tests); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return tests, nil
}

func (r *TestMongoRepository) FindAll(ctx context.Context) ([]models.Test, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	tests := make([]models.Test, 0)
	if err := cursor.All(ctx, &tests); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return tests, nil
}

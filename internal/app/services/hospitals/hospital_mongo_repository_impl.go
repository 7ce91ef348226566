package hospitals

import (
	"context"

	"medibill-service/internal/app/models"
	"medibill-service/internal/pkg/constvars"
	"medibill-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type HospitalMongoRepository struct {
	Collection *mongo.Collection
}

func NewHospitalMongoRepository(db *mongo.Client, dbName string) HospitalRepository {
	return &HospitalMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionHospitals),
	}
}

func (r *HospitalMongoRepository) FindConfig(ctx context.Context) (*models.Hospital, error) {
	var hospital models.Hospital
	err := r.Collection.FindOne(ctx, bson.M{}).Decode(&hospital)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &hospital, nil
}

func (r *HospitalMongoRepository) UpsertConfig(ctx context.Context, hospital *models.Hospital) (*models.Hospital, error) {
	update := bson.M{
		"$set": bson.M{
			"name":                    hospital.Name,
			"address":                 hospital.Address,
			"contactNumber":           hospital.ContactNumber,
			"email":                   hospital.Email,
			"hospitalSharePercentage": hospital.HospitalSharePercentage,
			"doctorSharePercentage":   hospital.DoctorSharePercentage,
			"brokerSharePercentage":   hospital.BrokerSharePercentage,
		},
		"$setOnInsert": bson.M{"totalEarnings": float64(0)},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var updated models.Hospital
	err := r.Collection.FindOneAndUpdate(ctx, bson.M{}, update, opts).Decode(&updated)
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &updated, nil
}

func (r *HospitalMongoRepository) IncrementEarnings(ctx context.Context, amount float64) error {
	result, err := r.Collection.UpdateOne(ctx,
		bson.M{},
		bson.M{"$inc": bson.M{"totalEarnings": amount}},
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrHospitalConfigNotFound(nil)
	}
	return nil
}

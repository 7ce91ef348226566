package billing

import (
	"context"
	"time"

	"medibill-service/internal/app/models"
	"medibill-service/internal/pkg/constvars"
	"medibill-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BillMongoRepository struct {
	Collection *mongo.Collection
}

func NewBillMongoRepository(db *mongo.Client, dbName string) BillRepository {
	return &BillMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBills),
	}
}

func (r *BillMongoRepository) CreateBill(ctx context.Context, bill *models.Bill) (string, error) {
	result, err := r.Collection.InsertOne(ctx, bill)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrDuplicateBillNumber(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *BillMongoRepository) FindByID(ctx context.Context, billID string) (*models.Bill, error) {
	objectID, err := primitive.ObjectIDFromHex(billID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var bill models.Bill
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&bill)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &bill, nil
}

func (r *BillMongoRepository) findByFilter(ctx context.Context, filter bson.M) ([]models.Bill, error) {
	opts := options.Find().SetSort(bson.M{"billDate": -1})
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	bills := make([]models.Bill, 0)
	if err := cursor.All(ctx, &bills); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bills, nil
}

func (r *BillMongoRepository) FindAll(ctx context.Context) ([]models.Bill, error) {
	return r.findByFilter(ctx, bson.M{})
}

func (r *BillMongoRepository) FindRecent(ctx context.Context, limit int64) ([]models.Bill, error) {
	opts := options.Find().SetSort(bson.M{"billDate": -1}).SetLimit(limit)
	cursor, err := r.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	bills := make([]models.Bill, 0)
	if err := cursor.All(ctx, &bills); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bills, nil
}

func (r *BillMongoRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]models.Bill, error) {
	return r.findByFilter(ctx, bson.M{"doctor": doctorID})
}

func (r *BillMongoRepository) FindByDoctorIDs(ctx context.Context, doctorIDs []string) ([]models.Bill, error) {
	if len(doctorIDs) == 0 {
		return []models.Bill{}, nil
	}
	return r.findByFilter(ctx, bson.M{"doctor": bson.M{"$in": doctorIDs}})
}

func (r *BillMongoRepository) FindByBrokerID(ctx context.Context, brokerID string) ([]models.Bill, error) {
	return r.findByFilter(ctx, bson.M{"broker": brokerID})
}

func (r *BillMongoRepository) FindByPatientIDs(ctx context.Context, patientIDs []string) ([]models.Bill, error) {
	if len(patientIDs) == 0 {
		return []models.Bill{}, nil
	}
	return r.findByFilter(ctx, bson.M{"patient": bson.M{"$in": patientIDs}})
}

func (r *BillMongoRepository) FindByBillNumberPattern(ctx context.Context, pattern string) ([]models.Bill, error) {
	return r.findByFilter(ctx, bson.M{"billNumber": bson.M{"$regex": pattern, "$options": "i"}})
}

func (r *BillMongoRepository) UpdateBill(ctx context.Context, bill *models.Bill) error {
	objectID, err := primitive.ObjectIDFromHex(bill.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{
		"$set": bson.M{
			"patient":       bill.PatientID,
			"doctor":        bill.DoctorID,
			"broker":        bill.BrokerID,
			"tests":         bill.Tests,
			"subtotal":      bill.Subtotal,
			"hospitalShare": bill.HospitalShare,
			"doctorShare":   bill.DoctorShare,
			"brokerShare":   bill.BrokerShare,
			"totalAmount":   bill.TotalAmount,
		},
	}

	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrBillNotFound(nil)
	}
	return nil
}

func (r *BillMongoRepository) CountBills(ctx context.Context) (int64, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return count, nil
}

func (r *BillMongoRepository) CountBillsByDateRange(ctx context.Context, from, to time.Time) (int64, error) {
	filter := bson.M{"billDate": bson.M{"$gte": from, "$lt": to}}
	count, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return count, nil
}

func (r *BillMongoRepository) sumTotalAmount(ctx context.Context, match bson.M) (float64, error) {
	pipeline := []bson.M{
		{"$match": match},
		{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": "$totalAmount"}}},
	}

	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

func (r *BillMongoRepository) SumTotalAmount(ctx context.Context) (float64, error) {
	return r.sumTotalAmount(ctx, bson.M{})
}

func (r *BillMongoRepository) SumTotalAmountByDateRange(ctx context.Context, from, to time.Time) (float64, error) {
	return r.sumTotalAmount(ctx, bson.M{"billDate": bson.M{"$gte": from, "$lt": to}})
}

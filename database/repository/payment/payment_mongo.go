package paymentRepo

import (
	"context"
	"fmt"
	"time"

	"quicklegal/database"
	"quicklegal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// PaymentRepository persists payment records.
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.PaymentRecord) error
	GetByID(ctx context.Context, id string) (*models.PaymentRecord, error)
	GetByBookingID(ctx context.Context, bookingID string) (*models.PaymentRecord, error)
}

// MongoPaymentRepo implements PaymentRepository using MongoDB.
type MongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo constructs a new instance of MongoPaymentRepo.
func NewMongoPaymentRepo() PaymentRepository {
	return &MongoPaymentRepo{
		coll: database.DB().Collection("payments"),
	}
}

func (repo *MongoPaymentRepo) Create(ctx context.Context, payment *models.PaymentRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, payment); err != nil {
		return fmt.Errorf("error inserting payment record: %w", err)
	}
	return nil
}

func (repo *MongoPaymentRepo) GetByID(ctx context.Context, id string) (*models.PaymentRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var payment models.PaymentRecord
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&payment); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching payment with id %s: %w", id, err)
	}
	return &payment, nil
}

func (repo *MongoPaymentRepo) GetByBookingID(ctx context.Context, bookingID string) (*models.PaymentRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var payment models.PaymentRecord
	if err := repo.coll.FindOne(ctx, bson.M{"booking_id": bookingID}).Decode(&payment); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching payment for booking %s: %w", bookingID, err)
	}
	return &payment, nil
}

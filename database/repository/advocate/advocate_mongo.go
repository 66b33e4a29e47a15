package advocateRepo

import (
	"context"
	"fmt"
	"time"

	"quicklegal/database"
	"quicklegal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAdvocateRepo implements AdvocateRepository using MongoDB.
type MongoAdvocateRepo struct {
	coll *mongo.Collection
}

// NewMongoAdvocateRepo constructs a new instance of MongoAdvocateRepo.
func NewMongoAdvocateRepo() AdvocateRepository {
	return &MongoAdvocateRepo{
		coll: database.DB().Collection("advocates"),
	}
}

func (repo *MongoAdvocateRepo) Create(ctx context.Context, advocate *models.Advocate) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, advocate); err != nil {
		return fmt.Errorf("error inserting advocate: %w", err)
	}
	return nil
}

func (repo *MongoAdvocateRepo) GetByID(ctx context.Context, id string) (*models.Advocate, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var advocate models.Advocate
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&advocate); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching advocate with id %s: %w", id, err)
	}
	return &advocate, nil
}

func (repo *MongoAdvocateRepo) Update(ctx context.Context, id string, updates map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updated_at": time.Now()}
	for k, v := range updates {
		set[k] = v
	}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("error updating advocate %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("advocate %s not found", id)
	}
	return nil
}

func (repo *MongoAdvocateRepo) Search(ctx context.Context, filter SearchFilter) ([]models.Advocate, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{"is_active": true}
	if filter.Expertise != "" {
		query["expertise"] = filter.Expertise
	}
	if filter.Language != "" {
		query["languages"] = filter.Language
	}
	fee := bson.M{}
	if filter.MinFee > 0 {
		fee["$gte"] = filter.MinFee
	}
	if filter.MaxFee > 0 {
		fee["$lte"] = filter.MaxFee
	}
	if len(fee) > 0 {
		query["consultation_fee"] = fee
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	total, err := repo.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting advocates: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := repo.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("error searching advocates: %w", err)
	}
	defer cursor.Close(ctx)

	var advocates []models.Advocate
	if err := cursor.All(ctx, &advocates); err != nil {
		return nil, 0, fmt.Errorf("error decoding advocates: %w", err)
	}
	return advocates, total, nil
}

package serviceRepo

import (
	"context"
	"fmt"
	"time"

	"dochouse/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll     *mongo.Collection
	homeColl *mongo.Collection
}

// NewMongoServiceRepo creates a new instance of ServiceRepository using MongoDB.
func NewMongoServiceRepo(db *mongo.Database) ServiceRepository {
	return &MongoServiceRepo{
		coll:     db.Collection("services"),
		homeColl: db.Collection("ourService"),
	}
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetAll retrieves the full service catalog.
func (r *MongoServiceRepo) GetAll() ([]models.Service, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	for cursor.Next(ctx) {
		var s models.Service
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode service: %w", err)
		}
		services = append(services, s)
	}
	return services, nil
}

// GetAllHome retrieves the home-page service cards.
func (r *MongoServiceRepo) GetAllHome() ([]models.HomeService, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.homeColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve home services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.HomeService
	for cursor.Next(ctx) {
		var s models.HomeService
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode home service: %w", err)
		}
		services = append(services, s)
	}
	return services, nil
}

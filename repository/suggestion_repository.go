package repository

import (
	"context"

	"github.com/jdjewellers/storefront-backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SuggestionRepository defines data access for the suggestions collection.
type SuggestionRepository interface {
	List(ctx context.Context) ([]models.Suggestion, error)
	Create(ctx context.Context, suggestion *models.Suggestion) error
	Delete(ctx context.Context, id string) error
}

type MongoSuggestionRepository struct {
	collection *mongo.Collection
}

func NewMongoSuggestionRepository(db *mongo.Database) *MongoSuggestionRepository {
	return &MongoSuggestionRepository{collection: db.Collection("suggestions")}
}

func (r *MongoSuggestionRepository) List(ctx context.Context) ([]models.Suggestion, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	suggestions := []models.Suggestion{}
	if err := cursor.All(ctx, &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}

func (r *MongoSuggestionRepository) Create(ctx context.Context, suggestion *models.Suggestion) error {
	_, err := r.collection.InsertOne(ctx, suggestion)
	return err
}

func (r *MongoSuggestionRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

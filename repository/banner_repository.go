package repository

import (
	"context"

	"github.com/jdjewellers/storefront-backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BannerRepository defines data access for the banners collection.
type BannerRepository interface {
	List(ctx context.Context, activeOnly bool) ([]models.Banner, error)
	Create(ctx context.Context, banner *models.Banner) error
	Update(ctx context.Context, id string, updates bson.M) error
	Delete(ctx context.Context, id string) error
}

type MongoBannerRepository struct {
	collection *mongo.Collection
}

func NewMongoBannerRepository(db *mongo.Database) *MongoBannerRepository {
	return &MongoBannerRepository{collection: db.Collection("banners")}
}

// List returns banners in display order, ascending renders first.
func (r *MongoBannerRepository) List(ctx context.Context, activeOnly bool) ([]models.Banner, error) {
	filter := bson.M{}
	if activeOnly {
		filter["is_active"] = true
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "display_order", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	banners := []models.Banner{}
	if err := cursor.All(ctx, &banners); err != nil {
		return nil, err
	}
	return banners, nil
}

func (r *MongoBannerRepository) Create(ctx context.Context, banner *models.Banner) error {
	_, err := r.collection.InsertOne(ctx, banner)
	return err
}

func (r *MongoBannerRepository) Update(ctx context.Context, id string, updates bson.M) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoBannerRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

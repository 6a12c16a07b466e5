package services

import (
	"context"
	"errors"

	apperrors "github.com/jdjewellers/storefront-backend/common/errors"
	"github.com/jdjewellers/storefront-backend/models"
	"github.com/jdjewellers/storefront-backend/repository"
	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogService serves read-only storefront queries. There is no
// caching layer; every call re-queries the backing store.
type CatalogService struct {
	products repository.ProductRepository
	banners  repository.BannerRepository
}

func NewCatalogService(products repository.ProductRepository, banners repository.BannerRepository) *CatalogService {
	return &CatalogService{products: products, banners: banners}
}

// List returns products newest-first, optionally filtered by category.
// An unknown category is a bad request, not an empty result.
func (s *CatalogService) List(ctx context.Context, category string) ([]models.Product, error) {
	if category != "" && !models.ValidCategory(category) {
		return nil, apperrors.ErrBadRequest
	}
	return s.products.List(ctx, category)
}

func (s *CatalogService) GetByID(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

// ActiveBanners returns banners flagged active, in display order.
func (s *CatalogService) ActiveBanners(ctx context.Context) ([]models.Banner, error) {
	return s.banners.List(ctx, true)
}

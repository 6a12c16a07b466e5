package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/jdjewellers/storefront-backend/common/errors"
	"github.com/jdjewellers/storefront-backend/services"
	"go.uber.org/zap"
)

type ProductController struct {
	catalog *services.CatalogService
}

func NewProductController(catalog *services.CatalogService) *ProductController {
	return &ProductController{catalog: catalog}
}

// List returns products newest-first, optionally filtered by category.
func (pc *ProductController) List(c *gin.Context) {
	category := c.Query("category")

	products, err := pc.catalog.List(c.Request.Context(), category)
	if err != nil {
		if errors.Is(err, apperrors.ErrBadRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
			return
		}
		zap.L().Error("failed to list products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (pc *ProductController) GetByID(c *gin.Context) {
	product, err := pc.catalog.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		zap.L().Error("failed to fetch product", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// Banners returns active banners in display order.
func (pc *ProductController) Banners(c *gin.Context) {
	banners, err := pc.catalog.ActiveBanners(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list banners", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch banners"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"banners": banners})
}

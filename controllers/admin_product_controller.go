package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jdjewellers/storefront-backend/models"
	"github.com/jdjewellers/storefront-backend/repository"
	"github.com/jdjewellers/storefront-backend/services"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type AdminProductController struct {
	products repository.ProductRepository
	uploads  *services.UploadService
}

func NewAdminProductController(products repository.ProductRepository, uploads *services.UploadService) *AdminProductController {
	return &AdminProductController{products: products, uploads: uploads}
}

type productRequest struct {
	Name        string  `json:"name" binding:"required,max=200"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category" binding:"required"`
	Stock       int     `json:"stock"`
	Size        string  `json:"size"`
	ImageURL    string  `json:"image_url"`
}

func (r productRequest) validate() string {
	if r.Price < 0 {
		return "price must not be negative"
	}
	if r.Stock < 0 {
		return "stock must not be negative"
	}
	if !models.ValidCategory(r.Category) {
		return "unknown category"
	}
	return ""
}

func (ac *AdminProductController) Create(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	now := time.Now().UTC()
	product := &models.Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Stock:       req.Stock,
		Size:        req.Size,
		ImageURL:    req.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := ac.products.Create(c.Request.Context(), product); err != nil {
		zap.L().Error("failed to create product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (ac *AdminProductController) Update(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	updates := bson.M{
		"name":        req.Name,
		"description": req.Description,
		"price":       req.Price,
		"category":    req.Category,
		"stock":       req.Stock,
		"size":        req.Size,
		"image_url":   req.ImageURL,
	}

	if err := ac.products.Update(c.Request.Context(), c.Param("id"), updates); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		zap.L().Error("failed to update product", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product updated"})
}

func (ac *AdminProductController) Delete(c *gin.Context) {
	if err := ac.products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		zap.L().Error("failed to delete product", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

// UploadImage accepts a multipart image, validates MIME type and size,
// stores it and returns the public URL for the product's image field.
func (ac *AdminProductController) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing image file"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if err := services.ValidateImage(contentType, fileHeader.Size); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read image"})
		return
	}
	defer file.Close()

	url, err := ac.uploads.Upload(c.Request.Context(), file, contentType, fileHeader.Size)
	if err != nil {
		zap.L().Error("failed to upload image", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

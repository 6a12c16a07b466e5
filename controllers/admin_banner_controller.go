package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jdjewellers/storefront-backend/models"
	"github.com/jdjewellers/storefront-backend/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type AdminBannerController struct {
	banners repository.BannerRepository
}

func NewAdminBannerController(banners repository.BannerRepository) *AdminBannerController {
	return &AdminBannerController{banners: banners}
}

type bannerRequest struct {
	Title        string `json:"title" binding:"required,max=200"`
	Subtitle     string `json:"subtitle"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

func (r bannerRequest) active() bool {
	// New banners default to active, matching the admin dashboard.
	if r.IsActive == nil {
		return true
	}
	return *r.IsActive
}

// List returns all banners including inactive ones (admin view).
func (ac *AdminBannerController) List(c *gin.Context) {
	banners, err := ac.banners.List(c.Request.Context(), false)
	if err != nil {
		zap.L().Error("failed to list banners", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch banners"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"banners": banners})
}

func (ac *AdminBannerController) Create(c *gin.Context) {
	var req bannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	banner := &models.Banner{
		ID:           uuid.NewString(),
		Title:        req.Title,
		Subtitle:     req.Subtitle,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.active(),
		CreatedAt:    time.Now().UTC(),
	}

	if err := ac.banners.Create(c.Request.Context(), banner); err != nil {
		zap.L().Error("failed to create banner", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save banner"})
		return
	}

	c.JSON(http.StatusCreated, banner)
}

func (ac *AdminBannerController) Update(c *gin.Context) {
	var req bannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	updates := bson.M{
		"title":         req.Title,
		"subtitle":      req.Subtitle,
		"display_order": req.DisplayOrder,
		"is_active":     req.active(),
	}

	if err := ac.banners.Update(c.Request.Context(), c.Param("id"), updates); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "banner not found"})
			return
		}
		zap.L().Error("failed to update banner", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save banner"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "banner updated"})
}

func (ac *AdminBannerController) Delete(c *gin.Context) {
	if err := ac.banners.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "banner not found"})
			return
		}
		zap.L().Error("failed to delete banner", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete banner"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "banner deleted"})
}

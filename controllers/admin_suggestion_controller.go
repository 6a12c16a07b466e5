package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jdjewellers/storefront-backend/repository"
	"go.uber.org/zap"
)

type AdminSuggestionController struct {
	suggestions repository.SuggestionRepository
}

func NewAdminSuggestionController(suggestions repository.SuggestionRepository) *AdminSuggestionController {
	return &AdminSuggestionController{suggestions: suggestions}
}

func (ac *AdminSuggestionController) List(c *gin.Context) {
	suggestions, err := ac.suggestions.List(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list suggestions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch suggestions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

func (ac *AdminSuggestionController) Delete(c *gin.Context) {
	if err := ac.suggestions.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "suggestion not found"})
			return
		}
		zap.L().Error("failed to delete suggestion", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete suggestion"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "suggestion deleted"})
}

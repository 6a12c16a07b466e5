package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jdjewellers/storefront-backend/models"
	"github.com/jdjewellers/storefront-backend/repository"
	"go.uber.org/zap"
)

type ContactController struct {
	suggestions repository.SuggestionRepository
}

func NewContactController(suggestions repository.SuggestionRepository) *ContactController {
	return &ContactController{suggestions: suggestions}
}

type contactRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email,max=255"`
	Message string `json:"message" binding:"required,max=2000"`
}

// Submit stores a contact-form message for admins to review.
func (cc *ContactController) Submit(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	suggestion := &models.Suggestion{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := cc.suggestions.Create(c.Request.Context(), suggestion); err != nil {
		zap.L().Error("failed to save suggestion", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send message"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Thank you for your message!"})
}

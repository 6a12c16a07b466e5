package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/jdjewellers/storefront-backend/common/errors"
	"github.com/jdjewellers/storefront-backend/models"
	"github.com/jdjewellers/storefront-backend/services"
	"go.uber.org/zap"
)

type CartController struct {
	cart    *services.CartService
	catalog *services.CatalogService
}

func NewCartController(cart *services.CartService, catalog *services.CatalogService) *CartController {
	return &CartController{cart: cart, catalog: catalog}
}

func sessionID(c *gin.Context) (string, bool) {
	id := c.GetHeader(SessionHeader)
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing session id"})
		return "", false
	}
	return id, true
}

func cartResponse(cart *models.Cart) gin.H {
	return gin.H{
		"cart":       cart,
		"total":      cart.Total(),
		"item_count": cart.ItemCount(),
	}
}

// Get returns the session's cart with totals.
func (cc *CartController) Get(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	cart, err := cc.cart.Get(c.Request.Context(), sid)
	if err != nil {
		zap.L().Error("failed to get cart", zap.String("session_id", sid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get cart"})
		return
	}

	c.JSON(http.StatusOK, cartResponse(cart))
}

type addItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// AddItem snapshots the product into the cart, merging quantities for a
// product already present.
func (cc *CartController) AddItem(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	product, err := cc.catalog.GetByID(c.Request.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		zap.L().Error("failed to fetch product for cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add to cart"})
		return
	}

	cart, err := cc.cart.Add(c.Request.Context(), sid, product, req.Quantity)
	if err != nil {
		zap.L().Error("failed to save cart", zap.String("session_id", sid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save cart"})
		return
	}

	c.JSON(http.StatusOK, cartResponse(cart))
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// SetQuantity replaces a line's quantity. Quantities below 1 are a
// no-op, returning the cart unchanged.
func (cc *CartController) SetQuantity(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	var req setQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	cart, err := cc.cart.SetQuantity(c.Request.Context(), sid, c.Param("product_id"), req.Quantity)
	if err != nil {
		zap.L().Error("failed to update cart", zap.String("session_id", sid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		return
	}

	c.JSON(http.StatusOK, cartResponse(cart))
}

// RemoveItem filters the product's line out of the cart.
func (cc *CartController) RemoveItem(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	cart, err := cc.cart.Remove(c.Request.Context(), sid, c.Param("product_id"))
	if err != nil {
		zap.L().Error("failed to update cart", zap.String("session_id", sid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		return
	}

	c.JSON(http.StatusOK, cartResponse(cart))
}

// Clear removes the entire persisted cart.
func (cc *CartController) Clear(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	if err := cc.cart.Clear(c.Request.Context(), sid); err != nil {
		zap.L().Error("failed to clear cart", zap.String("session_id", sid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}

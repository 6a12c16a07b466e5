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

type CheckoutController struct {
	orders  *services.OrderService
	cart    *services.CartService
	catalog *services.CatalogService
}

func NewCheckoutController(orders *services.OrderService, cart *services.CartService, catalog *services.CatalogService) *CheckoutController {
	return &CheckoutController{orders: orders, cart: cart, catalog: catalog}
}

type checkoutRequest struct {
	services.CheckoutForm

	// ProductID set means buy-now: a single-product order that never
	// touches the cart.
	ProductID string `json:"product_id"`
}

// Submit places an order from either the session cart or a single
// buy-now product.
func (cc *CheckoutController) Submit(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	var (
		lines    []models.CartLine
		fromCart bool
		sid      string
	)

	if req.ProductID != "" {
		product, err := cc.catalog.GetByID(c.Request.Context(), req.ProductID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			zap.L().Error("failed to load buy-now product", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to place order"})
			return
		}
		lines = []models.CartLine{{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			ImageURL:  product.ImageURL,
			Category:  product.Category,
			Quantity:  1,
		}}
	} else {
		var ok bool
		sid, ok = sessionID(c)
		if !ok {
			return
		}

		cart, err := cc.cart.Get(c.Request.Context(), sid)
		if err != nil {
			zap.L().Error("failed to load cart for checkout", zap.String("session_id", sid), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to place order"})
			return
		}
		if len(cart.Lines) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}
		lines = cart.Lines
		fromCart = true
	}

	result, svcErr := cc.orders.Submit(c.Request.Context(), req.CheckoutForm, lines, fromCart, sid)
	if svcErr != nil {
		resp := gin.H{"error": svcErr.Message}
		if len(svcErr.Fields) > 0 {
			resp["fields"] = svcErr.Fields
		}
		c.JSON(svcErr.StatusCode, resp)
		return
	}

	c.JSON(http.StatusCreated, result)
}

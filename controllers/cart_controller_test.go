package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jdjewellers/storefront-backend/kafka"
	"github.com/jdjewellers/storefront-backend/models"
	"github.com/jdjewellers/storefront-backend/services"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// --- In-memory repositories for handler tests ---

type memCartRepo struct {
	carts map[string]*models.Cart
}

func (r *memCartRepo) Get(_ context.Context, sessionID string) (*models.Cart, error) {
	cart, ok := r.carts[sessionID]
	if !ok {
		return nil, nil
	}
	return cart, nil
}

func (r *memCartRepo) Save(_ context.Context, cart *models.Cart) error {
	cart.UpdatedAt = time.Now()
	r.carts[cart.SessionID] = cart
	return nil
}

func (r *memCartRepo) Delete(_ context.Context, sessionID string) error {
	delete(r.carts, sessionID)
	return nil
}

type memProductRepo struct {
	products map[string]models.Product
}

func (r *memProductRepo) List(_ context.Context, _ string) ([]models.Product, error) {
	out := []models.Product{}
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *memProductRepo) FindByID(_ context.Context, id string) (*models.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &p, nil
}

func (r *memProductRepo) Create(_ context.Context, p *models.Product) error {
	r.products[p.ID] = *p
	return nil
}

func (r *memProductRepo) Update(_ context.Context, _ string, _ bson.M) error { return nil }
func (r *memProductRepo) Delete(_ context.Context, id string) error {
	delete(r.products, id)
	return nil
}

type memBannerRepo struct{}

func (memBannerRepo) List(context.Context, bool) ([]models.Banner, error) { return nil, nil }
func (memBannerRepo) Create(context.Context, *models.Banner) error        { return nil }
func (memBannerRepo) Update(context.Context, string, bson.M) error        { return nil }
func (memBannerRepo) Delete(context.Context, string) error                { return nil }

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cartSvc := services.NewCartService(
		&memCartRepo{carts: map[string]*models.Cart{}},
		kafka.NoopPublisher{}, "cart.updated",
	)
	catalogSvc := services.NewCatalogService(
		&memProductRepo{products: map[string]models.Product{
			"p1": {ID: "p1", Name: "Gold Necklace", Price: 1500, Category: models.CategoryNecklace},
		}},
		memBannerRepo{},
	)
	cc := NewCartController(cartSvc, catalogSvc)

	r := gin.New()
	r.GET("/api/cart", cc.Get)
	r.POST("/api/cart", cc.AddItem)
	r.PATCH("/api/cart/:product_id", cc.SetQuantity)
	r.DELETE("/api/cart/:product_id", cc.RemoveItem)
	return r
}

func doJSON(r *gin.Engine, method, path, session, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set(SessionHeader, session)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddItemRequiresSessionHeader(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodPost, "/api/cart", "", `{"product_id":"p1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddItemMergesAndReturnsTotals(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodPost, "/api/cart", "s1", `{"product_id":"p1","quantity":1}`)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(r, http.MethodPost, "/api/cart", "s1", `{"product_id":"p1","quantity":1}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Cart      models.Cart `json:"cart"`
		Total     float64     `json:"total"`
		ItemCount int         `json:"item_count"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Cart.Lines, 1)
	assert.Equal(t, 2, resp.Cart.Lines[0].Quantity)
	assert.Equal(t, 3000.0, resp.Total)
	assert.Equal(t, 2, resp.ItemCount)
}

func TestAddUnknownProductIs404(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodPost, "/api/cart", "s1", `{"product_id":"ghost"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetQuantityBelowOneIsNoOp(t *testing.T) {
	r := newTestRouter()

	doJSON(r, http.MethodPost, "/api/cart", "s1", `{"product_id":"p1","quantity":2}`)
	w := doJSON(r, http.MethodPatch, "/api/cart/p1", "s1", `{"quantity":0}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Cart models.Cart `json:"cart"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Cart.Lines[0].Quantity)
}

func TestRemoveItemEmptiesCart(t *testing.T) {
	r := newTestRouter()

	doJSON(r, http.MethodPost, "/api/cart", "s1", `{"product_id":"p1"}`)
	w := doJSON(r, http.MethodDelete, "/api/cart/p1", "s1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ItemCount int `json:"item_count"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.ItemCount)
}

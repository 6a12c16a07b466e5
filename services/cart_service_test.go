package services

import (
	"context"
	"testing"

	"github.com/jdjewellers/storefront-backend/models"
	"github.com/stretchr/testify/assert"
)

// --- Fakes ---

type fakeCartRepo struct {
	carts map[string]*models.Cart
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[string]*models.Cart)}
}

func (r *fakeCartRepo) Get(_ context.Context, sessionID string) (*models.Cart, error) {
	cart, ok := r.carts[sessionID]
	if !ok {
		return nil, nil
	}
	copied := *cart
	copied.Lines = append([]models.CartLine(nil), cart.Lines...)
	return &copied, nil
}

func (r *fakeCartRepo) Save(_ context.Context, cart *models.Cart) error {
	copied := *cart
	copied.Lines = append([]models.CartLine(nil), cart.Lines...)
	r.carts[cart.SessionID] = &copied
	return nil
}

func (r *fakeCartRepo) Delete(_ context.Context, sessionID string) error {
	delete(r.carts, sessionID)
	return nil
}

type recordingPublisher struct {
	events []any
}

func (p *recordingPublisher) Publish(_ context.Context, _, _ string, event any) error {
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func testProduct(id string, price float64) *models.Product {
	return &models.Product{
		ID:       id,
		Name:     "Gold Necklace",
		Price:    price,
		Category: models.CategoryNecklace,
		ImageURL: "https://example.com/necklace.jpg",
	}
}

// --- Tests ---

func TestAddMergesSameProduct(t *testing.T) {
	svc := NewCartService(newFakeCartRepo(), &recordingPublisher{}, "cart.updated")
	ctx := context.Background()

	_, err := svc.Add(ctx, "s1", testProduct("p1", 500), 1)
	assert.NoError(t, err)
	cart, err := svc.Add(ctx, "s1", testProduct("p1", 500), 1)
	assert.NoError(t, err)

	assert.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
}

func TestAddSnapshotsProductAtAddTime(t *testing.T) {
	repo := newFakeCartRepo()
	svc := NewCartService(repo, &recordingPublisher{}, "cart.updated")
	ctx := context.Background()

	product := testProduct("p1", 500)
	_, err := svc.Add(ctx, "s1", product, 1)
	assert.NoError(t, err)

	// A later price edit must not change the line already in the cart.
	product.Price = 900
	cart, err := svc.Get(ctx, "s1")
	assert.NoError(t, err)
	assert.Equal(t, 500.0, cart.Lines[0].Price)
}

func TestSetQuantityGuardsZeroAndNegative(t *testing.T) {
	svc := NewCartService(newFakeCartRepo(), &recordingPublisher{}, "cart.updated")
	ctx := context.Background()

	_, err := svc.Add(ctx, "s1", testProduct("p1", 500), 2)
	assert.NoError(t, err)

	cart, err := svc.SetQuantity(ctx, "s1", "p1", 0)
	assert.NoError(t, err)
	assert.Equal(t, 2, cart.Lines[0].Quantity)

	cart, err = svc.SetQuantity(ctx, "s1", "p1", -3)
	assert.NoError(t, err)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
}

func TestSetQuantityReplacesInPlace(t *testing.T) {
	svc := NewCartService(newFakeCartRepo(), &recordingPublisher{}, "cart.updated")
	ctx := context.Background()

	_, err := svc.Add(ctx, "s1", testProduct("p1", 500), 2)
	assert.NoError(t, err)

	cart, err := svc.SetQuantity(ctx, "s1", "p1", 5)
	assert.NoError(t, err)
	assert.Equal(t, 5, cart.Lines[0].Quantity)
}

func TestRemoveFiltersLine(t *testing.T) {
	svc := NewCartService(newFakeCartRepo(), &recordingPublisher{}, "cart.updated")
	ctx := context.Background()

	_, err := svc.Add(ctx, "s1", testProduct("p1", 500), 1)
	assert.NoError(t, err)
	_, err = svc.Add(ctx, "s1", testProduct("p2", 700), 1)
	assert.NoError(t, err)

	cart, err := svc.Remove(ctx, "s1", "p1")
	assert.NoError(t, err)
	assert.Len(t, cart.Lines, 1)
	assert.Equal(t, "p2", cart.Lines[0].ProductID)
}

func TestTotalsAndItemCount(t *testing.T) {
	svc := NewCartService(newFakeCartRepo(), &recordingPublisher{}, "cart.updated")
	ctx := context.Background()

	empty, err := svc.Get(ctx, "s1")
	assert.NoError(t, err)
	assert.Equal(t, 0.0, empty.Total())
	assert.Equal(t, 0, empty.ItemCount())

	_, err = svc.Add(ctx, "s1", testProduct("p1", 500), 2)
	assert.NoError(t, err)
	cart, err := svc.Add(ctx, "s1", testProduct("p2", 700), 3)
	assert.NoError(t, err)

	assert.Equal(t, 500*2+700*3.0, cart.Total())
	assert.Equal(t, 5, cart.ItemCount())
}

func TestClearDeletesCartAndPublishes(t *testing.T) {
	pub := &recordingPublisher{}
	svc := NewCartService(newFakeCartRepo(), pub, "cart.updated")
	ctx := context.Background()

	_, err := svc.Add(ctx, "s1", testProduct("p1", 500), 1)
	assert.NoError(t, err)

	assert.NoError(t, svc.Clear(ctx, "s1"))

	cart, err := svc.Get(ctx, "s1")
	assert.NoError(t, err)
	assert.Empty(t, cart.Lines)

	// add + clear
	assert.Len(t, pub.events, 2)
	last, ok := pub.events[1].(models.CartEvent)
	assert.True(t, ok)
	assert.Equal(t, "cart.updated", last.Event)
	assert.Equal(t, 0, last.ItemCount)
}

func TestCartsAreIsolatedPerSession(t *testing.T) {
	svc := NewCartService(newFakeCartRepo(), &recordingPublisher{}, "cart.updated")
	ctx := context.Background()

	_, err := svc.Add(ctx, "s1", testProduct("p1", 500), 1)
	assert.NoError(t, err)

	other, err := svc.Get(ctx, "s2")
	assert.NoError(t, err)
	assert.Empty(t, other.Lines)
}

package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jdjewellers/storefront-backend/config"
	"github.com/jdjewellers/storefront-backend/models"
	"github.com/stretchr/testify/assert"
)

// --- Fakes ---

type fakeOrderRepo struct {
	created *models.Order
	failing bool
}

func (r *fakeOrderRepo) Create(_ context.Context, order *models.Order) error {
	if r.failing {
		return errors.New("connection refused")
	}
	order.ID = uuid.New()
	r.created = order
	return nil
}

func (r *fakeOrderRepo) FindAll(_ context.Context, _, _ int) ([]models.Order, int64, error) {
	if r.created == nil {
		return nil, 0, nil
	}
	return []models.Order{*r.created}, 1, nil
}

type fakeCartClearer struct {
	cleared []string
}

func (f *fakeCartClearer) Clear(_ context.Context, sessionID string) error {
	f.cleared = append(f.cleared, sessionID)
	return nil
}

// mockSNS records publishes (avoids a live SNS client in tests).
type mockSNS struct {
	publishedArn string
	publishedMsg []byte
}

func (m *mockSNS) Publish(_ context.Context, topicArn string, message []byte) error {
	m.publishedArn = topicArn
	m.publishedMsg = append([]byte(nil), message...)
	return nil
}

func newTestOrderService(repo *fakeOrderRepo, cart *fakeCartClearer, sns *mockSNS) *OrderService {
	var snsArn string
	if sns != nil {
		snsArn = "arn:aws:sns:ap-south-1:000000000000:order-events"
	}
	return NewOrderService(
		repo, cart,
		NewWhatsAppNotifier("919079998370"),
		&recordingPublisher{}, "order.created",
		sns, snsArn,
		config.AddressModeFlat,
		2000, 100,
	)
}

func cartLines() []models.CartLine {
	return []models.CartLine{
		{ProductID: "p1", Name: "Gold Necklace", Price: 1500, Quantity: 1},
		{ProductID: "p2", Name: "Silver Ring", Price: 200, Quantity: 2},
	}
}

// --- Tests ---

func TestShippingFreeAboveThreshold(t *testing.T) {
	svc := newTestOrderService(&fakeOrderRepo{}, &fakeCartClearer{}, nil)

	subtotal, shipping, total := svc.Totals([]models.CartLine{
		{Price: 1000, Quantity: 2},
	})
	assert.Equal(t, 2000.0, subtotal)
	assert.Equal(t, 0.0, shipping)
	assert.Equal(t, 2000.0, total)

	subtotal, shipping, total = svc.Totals([]models.CartLine{
		{Price: 1999, Quantity: 1},
	})
	assert.Equal(t, 1999.0, subtotal)
	assert.Equal(t, 100.0, shipping)
	assert.Equal(t, 2099.0, total)
}

func TestSubmitFromCartClearsCart(t *testing.T) {
	repo := &fakeOrderRepo{}
	cart := &fakeCartClearer{}
	svc := newTestOrderService(repo, cart, nil)

	result, svcErr := svc.Submit(context.Background(), validFlatForm(), cartLines(), true, "s1")
	assert.Nil(t, svcErr)
	assert.NotNil(t, repo.created)
	assert.Equal(t, []string{"s1"}, cart.cleared)
	assert.Equal(t, repo.created.ID.String(), result.OrderID)
}

func TestSubmitBuyNowLeavesCartUntouched(t *testing.T) {
	repo := &fakeOrderRepo{}
	cart := &fakeCartClearer{}
	svc := newTestOrderService(repo, cart, nil)

	_, svcErr := svc.Submit(context.Background(), validFlatForm(), cartLines()[:1], false, "")
	assert.Nil(t, svcErr)
	assert.NotNil(t, repo.created)
	assert.Empty(t, cart.cleared)
}

func TestSubmitComputesTotalsServerSide(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := newTestOrderService(repo, &fakeCartClearer{}, nil)

	// subtotal 1900 => flat 100 shipping
	result, svcErr := svc.Submit(context.Background(), validFlatForm(), cartLines(), true, "s1")
	assert.Nil(t, svcErr)
	assert.Equal(t, 1900.0, result.Subtotal)
	assert.Equal(t, 100.0, result.Shipping)
	assert.Equal(t, 2000.0, result.TotalAmount)
	assert.Equal(t, 2000.0, repo.created.TotalAmount)
}

func TestSubmitRejectsInvalidForm(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := newTestOrderService(repo, &fakeCartClearer{}, nil)

	form := validFlatForm()
	form.Phone = "12345"
	_, svcErr := svc.Submit(context.Background(), form, cartLines(), true, "s1")
	assert.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
	assert.Contains(t, svcErr.Fields, "phone")
	// No partial order on validation failure.
	assert.Nil(t, repo.created)
}

func TestSubmitRejectsEmptyItems(t *testing.T) {
	svc := newTestOrderService(&fakeOrderRepo{}, &fakeCartClearer{}, nil)

	_, svcErr := svc.Submit(context.Background(), validFlatForm(), nil, true, "s1")
	assert.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
}

func TestSubmitPersistFailureAbortsEverything(t *testing.T) {
	repo := &fakeOrderRepo{failing: true}
	cart := &fakeCartClearer{}
	sns := &mockSNS{}
	svc := newTestOrderService(repo, cart, sns)

	_, svcErr := svc.Submit(context.Background(), validFlatForm(), cartLines(), true, "s1")
	assert.NotNil(t, svcErr)
	assert.Equal(t, 500, svcErr.StatusCode)
	// No notification and no cart clear for an unpersisted order.
	assert.Empty(t, cart.cleared)
	assert.Empty(t, sns.publishedMsg)
}

func TestSubmitReturnsWhatsAppDeepLink(t *testing.T) {
	svc := newTestOrderService(&fakeOrderRepo{}, &fakeCartClearer{}, nil)

	result, svcErr := svc.Submit(context.Background(), validFlatForm(), cartLines(), false, "")
	assert.Nil(t, svcErr)
	assert.True(t, strings.HasPrefix(result.WhatsAppURL, "https://api.whatsapp.com/send?phone=919079998370&text="))
	assert.Contains(t, result.WhatsAppURL, "Gold+Necklace")
}

func TestSubmitPublishesToSNS(t *testing.T) {
	sns := &mockSNS{}
	svc := newTestOrderService(&fakeOrderRepo{}, &fakeCartClearer{}, sns)

	_, svcErr := svc.Submit(context.Background(), validFlatForm(), cartLines(), false, "")
	assert.Nil(t, svcErr)
	assert.Equal(t, "arn:aws:sns:ap-south-1:000000000000:order-events", sns.publishedArn)
	assert.NotEmpty(t, sns.publishedMsg)
}

package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jdjewellers/storefront-backend/kafka"
	"github.com/jdjewellers/storefront-backend/models"
	pkgaws "github.com/jdjewellers/storefront-backend/pkg/aws"
	"github.com/jdjewellers/storefront-backend/repository"
	"go.uber.org/zap"
)

// ServiceError carries a status code alongside the message so
// controllers can map it straight onto the response.
type ServiceError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// CartClearer is the slice of CartService the order flow needs.
type CartClearer interface {
	Clear(ctx context.Context, sessionID string) error
}

// SubmitResult is returned to the storefront after a successful order.
type SubmitResult struct {
	OrderID     string  `json:"order_id"`
	Subtotal    float64 `json:"subtotal"`
	Shipping    float64 `json:"shipping"`
	TotalAmount float64 `json:"total_amount"`
	WhatsAppURL string  `json:"whatsapp_url"`
}

type OrderService struct {
	orderRepo   repository.OrderRepository
	cart        CartClearer
	notifier    *WhatsAppNotifier
	publisher   kafka.Publisher
	orderTopic  string
	snsClient   pkgaws.SNSPublisher
	snsTopicArn string

	addressMode           string
	freeShippingThreshold float64
	shippingFlat          float64
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	cart CartClearer,
	notifier *WhatsAppNotifier,
	publisher kafka.Publisher,
	orderTopic string,
	snsClient pkgaws.SNSPublisher,
	snsTopicArn string,
	addressMode string,
	freeShippingThreshold, shippingFlat float64,
) *OrderService {
	return &OrderService{
		orderRepo:             orderRepo,
		cart:                  cart,
		notifier:              notifier,
		publisher:             publisher,
		orderTopic:            orderTopic,
		snsClient:             snsClient,
		snsTopicArn:           snsTopicArn,
		addressMode:           addressMode,
		freeShippingThreshold: freeShippingThreshold,
		shippingFlat:          shippingFlat,
	}
}

// Totals computes subtotal, shipping and total for a set of lines.
// Shipping is free at or above the threshold, otherwise a flat charge.
func (s *OrderService) Totals(lines []models.CartLine) (subtotal, shipping, total float64) {
	for _, line := range lines {
		subtotal += line.Price * float64(line.Quantity)
	}
	if subtotal < s.freeShippingThreshold {
		shipping = s.shippingFlat
	}
	return subtotal, shipping, subtotal + shipping
}

// Submit validates the form, persists the order, prepares the WhatsApp
// notification and, for cart-origin orders, clears the cart.
//
// If persisting fails nothing else runs: no notification exists for an
// unpersisted order. If the order persists but anything after it fails,
// the order stays and the gap is logged; there is no compensation.
func (s *OrderService) Submit(ctx context.Context, form CheckoutForm, lines []models.CartLine, fromCart bool, sessionID string) (*SubmitResult, *ServiceError) {
	if fieldErrs := ValidateCheckout(form, s.addressMode); len(fieldErrs) > 0 {
		return nil, &ServiceError{
			StatusCode: 400,
			Message:    "Please fix the errors in the form",
			Fields:     fieldErrs,
		}
	}

	if len(lines) == 0 {
		return nil, &ServiceError{StatusCode: 400, Message: "At least one item is required"}
	}

	subtotal, shipping, total := s.Totals(lines)

	order := &models.Order{
		CustomerName:    form.Name,
		CustomerPhone:   form.Phone,
		CustomerEmail:   form.Email,
		CustomerAddress: form.FlatAddress(s.addressMode),
		Subtotal:        subtotal,
		Shipping:        shipping,
		TotalAmount:     total,
	}
	for _, line := range lines {
		order.Items = append(order.Items, models.OrderItem{
			Name:     line.Name,
			Price:    line.Price,
			Quantity: line.Quantity,
		})
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		zap.L().Error("failed to persist order", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to place order. Please try again."}
	}

	result := &SubmitResult{
		OrderID:     order.ID.String(),
		Subtotal:    subtotal,
		Shipping:    shipping,
		TotalAmount: total,
	}

	// The deep link is local string building; it only stays empty if
	// the notifier is absent. An order without a notification is an
	// accepted inconsistency, not a rollback.
	if s.notifier != nil {
		result.WhatsAppURL = s.notifier.DeepLink(order)
	}

	if fromCart {
		if err := s.cart.Clear(ctx, sessionID); err != nil {
			zap.L().Error("failed to clear cart after checkout",
				zap.String("session_id", sessionID), zap.Error(err))
		}
	}

	event := models.OrderEvent{
		Event:       "order.created",
		OrderID:     order.ID.String(),
		TotalAmount: total,
		Timestamp:   time.Now(),
	}
	if err := s.publisher.Publish(ctx, s.orderTopic, order.ID.String(), event); err != nil {
		zap.L().Warn("failed to publish order event", zap.Error(err))
	}

	// Best-effort ops notification; never fails the request.
	if s.snsClient != nil && s.snsTopicArn != "" {
		if data, err := json.Marshal(event); err == nil {
			if err := s.snsClient.Publish(ctx, s.snsTopicArn, data); err != nil {
				zap.L().Warn("SNS publish failed", zap.Error(err))
			}
		}
	}

	return result, nil
}

// ListAll returns paginated orders for the admin dashboard.
func (s *OrderService) ListAll(ctx context.Context, page, limit int) ([]models.Order, int64, *ServiceError) {
	orders, total, err := s.orderRepo.FindAll(ctx, page, limit)
	if err != nil {
		zap.L().Error("failed to fetch orders", zap.Error(err))
		return nil, 0, &ServiceError{StatusCode: 500, Message: "Failed to fetch orders"}
	}
	return orders, total, nil
}

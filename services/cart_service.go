package services

import (
	"context"
	"sync"
	"time"

	"github.com/jdjewellers/storefront-backend/kafka"
	"github.com/jdjewellers/storefront-backend/models"
	"github.com/jdjewellers/storefront-backend/repository"
	"go.uber.org/zap"
)

// CartService mutates session-scoped carts. Every mutation is a
// read-modify-write over the full serialized line list; writes for the
// same session are serialized with a keyed mutex so two in-flight
// requests cannot clobber each other. Writes from separate API
// instances remain last-writer-wins.
type CartService struct {
	repo      repository.CartRepository
	publisher kafka.Publisher
	topic     string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewCartService(repo repository.CartRepository, publisher kafka.Publisher, topic string) *CartService {
	return &CartService{
		repo:      repo,
		publisher: publisher,
		topic:     topic,
		locks:     make(map[string]*sync.Mutex),
	}
}

func (s *CartService) sessionLock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	if l, ok := s.locks[sessionID]; ok {
		return l
	}
	l := &sync.Mutex{}
	s.locks[sessionID] = l
	return l
}

// Get returns the session's cart, or an empty cart when none exists.
func (s *CartService) Get(ctx context.Context, sessionID string) (*models.Cart, error) {
	cart, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart = &models.Cart{SessionID: sessionID, Lines: []models.CartLine{}}
	}
	return cart, nil
}

// Add merges qty of the product into the cart: an existing line for the
// same product id is incremented, otherwise a snapshot line is
// appended. qty values below 1 default to 1.
func (s *CartService) Add(ctx context.Context, sessionID string, product *models.Product, qty int) (*models.Cart, error) {
	if qty < 1 {
		qty = 1
	}

	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	cart, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	found := false
	for i, line := range cart.Lines {
		if line.ProductID == product.ID {
			cart.Lines[i].Quantity += qty
			found = true
			break
		}
	}
	if !found {
		cart.Lines = append(cart.Lines, models.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			ImageURL:  product.ImageURL,
			Category:  product.Category,
			Quantity:  qty,
		})
	}

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, err
	}
	s.publishChanged(ctx, cart)
	return cart, nil
}

// SetQuantity replaces the matching line's quantity in place. Zero or
// negative quantities leave the cart unchanged.
func (s *CartService) SetQuantity(ctx context.Context, sessionID, productID string, qty int) (*models.Cart, error) {
	if qty < 1 {
		return s.Get(ctx, sessionID)
	}

	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	cart, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	changed := false
	for i, line := range cart.Lines {
		if line.ProductID == productID {
			cart.Lines[i].Quantity = qty
			changed = true
			break
		}
	}
	if !changed {
		return cart, nil
	}

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, err
	}
	s.publishChanged(ctx, cart)
	return cart, nil
}

// Remove filters the matching line out of the cart.
func (s *CartService) Remove(ctx context.Context, sessionID, productID string) (*models.Cart, error) {
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	cart, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	newLines := []models.CartLine{}
	for _, line := range cart.Lines {
		if line.ProductID != productID {
			newLines = append(newLines, line)
		}
	}
	cart.Lines = newLines

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, err
	}
	s.publishChanged(ctx, cart)
	return cart, nil
}

// Clear deletes the persisted cart. Invoked after a full-cart checkout;
// buy-now orders never touch the cart.
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.repo.Delete(ctx, sessionID); err != nil {
		return err
	}
	s.publishChanged(ctx, &models.Cart{SessionID: sessionID, Lines: []models.CartLine{}})
	return nil
}

// publishChanged emits a cart.updated event. Event delivery is
// best-effort; a failed publish never fails the mutation.
func (s *CartService) publishChanged(ctx context.Context, cart *models.Cart) {
	event := models.CartEvent{
		Event:     "cart.updated",
		SessionID: cart.SessionID,
		ItemCount: cart.ItemCount(),
		Timestamp: time.Now(),
	}
	if err := s.publisher.Publish(ctx, s.topic, cart.SessionID, event); err != nil {
		zap.L().Warn("failed to publish cart event",
			zap.String("session_id", cart.SessionID), zap.Error(err))
	}
}

package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Skotchmaster/product_catalog/internal/events"
	"github.com/Skotchmaster/product_catalog/internal/models"
	"github.com/Skotchmaster/product_catalog/internal/repo"
	"github.com/Skotchmaster/product_catalog/pkg/logging"
)

type CartService struct {
	Carts    repo.CartStore
	Users    repo.UserStore
	Products repo.ProductStore
	Events   events.Publisher
}

// FindCartID returns the id of the cart line for (userID, productID); found is false when there is none.
func (s *CartService) FindCartID(ctx context.Context, userID, productID uint) (uint, bool, error) {
	id, found, err := s.Carts.FindIDByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return 0, false, newError(CodeInternal, "cart lookup failed", err)
	}
	return id, found, nil
}

// AddToCart is idempotent: an existing line for the pair is returned unchanged.
func (s *CartService) AddToCart(ctx context.Context, userID, productID uint) (*models.UserProductCart, bool, error) {
	if _, err := s.Users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, newError(CodeNotFound, "user not found", fmt.Errorf("user %d: %w", userID, ErrUserNotFound))
		}
		return nil, false, newError(CodeInternal, "user lookup failed", err)
	}
	if _, err := s.Products.FindByID(ctx, productID); err != nil {
		return nil, false, productLookupError(productID, err)
	}

	id, found, err := s.FindCartID(ctx, userID, productID)
	if err != nil {
		return nil, false, err
	}
	if !found {
		line := &models.UserProductCart{UserID: userID, ProductID: productID}
		if err := s.Carts.Save(ctx, line); err != nil {
			return nil, false, newError(CodeInternal, "cart item could not be saved", err)
		}
		id = line.ID
		s.publish(ctx, events.NewCartEvent(events.CartItemAdded, userID, productID, id))
	}

	item, err := s.Carts.FindByID(ctx, id)
	if err != nil {
		return nil, false, newError(CodeInternal, "cart lookup failed", err)
	}
	return item, !found, nil
}

func (s *CartService) GetCart(ctx context.Context, userID uint) ([]models.UserProductCart, error) {
	items, err := s.Carts.FindByUser(ctx, userID)
	if err != nil {
		return nil, newError(CodeInternal, "cart could not be loaded", err)
	}
	return items, nil
}

func (s *CartService) RemoveFromCart(ctx context.Context, userID, productID uint) error {
	if err := s.Carts.DeleteByUserAndProduct(ctx, userID, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newError(CodeNotFound, "item not found", ErrCartItemNotFound)
		}
		return newError(CodeInternal, "cart item could not be removed", err)
	}
	s.publish(ctx, events.NewCartEvent(events.CartItemRemoved, userID, productID, 0))
	return nil
}

func (s *CartService) publish(ctx context.Context, event events.CartEvent) {
	if s.Events == nil {
		return
	}
	pctx, cancel := context.WithTimeout(ctx, sideEffectTimeout)
	defer cancel()
	if err := s.Events.PublishEvent(pctx, events.TopicCart, keyOf(event.UserID), event); err != nil {
		logging.FromContext(ctx).Error("event_publish_failed", "topic", events.TopicCart, "error", err)
	}
}

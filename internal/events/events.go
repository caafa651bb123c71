package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Skotchmaster/product_catalog/internal/models"
)

const (
	TopicProducts   = "product_events"
	TopicCategories = "category_events"
	TopicCart       = "cart_events"
)

const (
	ProductCreated     = "product_created"
	ProductUpdated     = "product_updated"
	ProductDeleted     = "product_deleted"
	ProductsDeletedAll = "products_deleted_all"
	CategoryCreated    = "category_created"
	CategoryDeleted    = "category_deleted"
	CartItemAdded      = "cart_item_added"
	CartItemRemoved    = "cart_item_removed"
)

// Publisher is satisfied by *mykafka.Producer.
type Publisher interface {
	PublishEvent(ctx context.Context, topic, key string, event any) error
}

// Nop drops every event; used when no brokers are configured.
type Nop struct{}

func (Nop) PublishEvent(context.Context, string, string, any) error { return nil }

type ProductEvent struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	ProductID  uint      `json:"product_id,omitempty"`
	Title      string    `json:"title,omitempty"`
	Price      int64     `json:"price,omitempty"`
	Quantity   int       `json:"quantity,omitempty"`
	CategoryID uint      `json:"category_id,omitempty"`
	Count      int64     `json:"count,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

type CategoryEvent struct {
	EventID      string    `json:"event_id"`
	Type         string    `json:"type"`
	CategoryID   uint      `json:"category_id"`
	CategoryName string    `json:"category_name,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

type CartEvent struct {
	EventID   string    `json:"event_id"`
	Type      string    `json:"type"`
	UserID    uint      `json:"user_id"`
	ProductID uint      `json:"product_id"`
	CartID    uint      `json:"cart_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func NewProductEvent(eventType string, p *models.Product) ProductEvent {
	return ProductEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		ProductID:  p.ID,
		Title:      p.Title,
		Price:      p.Price,
		Quantity:   p.Quantity,
		CategoryID: p.CategoryID,
		Timestamp:  time.Now().UTC(),
	}
}

func NewProductDeletedEvent(id uint) ProductEvent {
	return ProductEvent{EventID: uuid.NewString(), Type: ProductDeleted, ProductID: id, Timestamp: time.Now().UTC()}
}

func NewProductsDeletedAllEvent(count int64) ProductEvent {
	return ProductEvent{EventID: uuid.NewString(), Type: ProductsDeletedAll, Count: count, Timestamp: time.Now().UTC()}
}

func NewCategoryEvent(eventType string, id uint, name string) CategoryEvent {
	return CategoryEvent{
		EventID:      uuid.NewString(),
		Type:         eventType,
		CategoryID:   id,
		CategoryName: name,
		Timestamp:    time.Now().UTC(),
	}
}

func NewCartEvent(eventType string, userID, productID, cartID uint) CartEvent {
	return CartEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		ProductID: productID,
		CartID:    cartID,
		Timestamp: time.Now().UTC(),
	}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Skotchmaster/product_catalog/internal/events"
	"github.com/Skotchmaster/product_catalog/internal/models"
	"github.com/Skotchmaster/product_catalog/internal/repo"
	"github.com/Skotchmaster/product_catalog/internal/transport"
	"github.com/Skotchmaster/product_catalog/internal/util"
	"github.com/Skotchmaster/product_catalog/pkg/logging"
)

const sideEffectTimeout = 5 * time.Second

// ProductIndex keeps a full-text copy of the catalog. *search.Index implements it.
type ProductIndex interface {
	IndexProduct(ctx context.Context, p *models.Product) error
	DeleteProduct(ctx context.Context, id uint) error
	DeleteAll(ctx context.Context) error
	Search(ctx context.Context, query string, from, size int) (int64, []models.Product, error)
}

type CatalogService struct {
	Products   repo.ProductStore
	Categories repo.CategoryStore
	Events     events.Publisher
	// Index may be nil; search is then unavailable.
	Index ProductIndex
}

type ProductPage struct {
	Items      []models.Product `json:"items"`
	PageNo     int              `json:"page_no"`
	PageSize   int              `json:"page_size"`
	Total      int64            `json:"total"`
	TotalPages int              `json:"total_pages"`
}

func (s *CatalogService) SaveProduct(ctx context.Context, req transport.ProductRequest) (*models.Product, error) {
	product, err := s.toProduct(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.Products.Save(ctx, product); err != nil {
		return nil, newError(CodeInternal, "product could not be saved", err)
	}

	s.publish(ctx, events.TopicProducts, keyOf(product.ID), events.NewProductEvent(events.ProductCreated, product))
	s.reindex(ctx, product)
	return product, nil
}

// SaveAllProducts resolves every category before writing anything, then inserts the batch.
func (s *CatalogService) SaveAllProducts(ctx context.Context, reqs []transport.ProductRequest) ([]models.Product, error) {
	products := make([]models.Product, 0, len(reqs))
	for _, req := range reqs {
		product, err := s.toProduct(ctx, req)
		if err != nil {
			return nil, err
		}
		products = append(products, *product)
	}
	if len(products) == 0 {
		return products, nil
	}

	if err := s.Products.SaveAll(ctx, products); err != nil {
		return nil, newError(CodeInternal, "products could not be saved", err)
	}

	for i := range products {
		s.publish(ctx, events.TopicProducts, keyOf(products[i].ID), events.NewProductEvent(events.ProductCreated, &products[i]))
		s.reindex(ctx, &products[i])
	}
	return products, nil
}

// GetAllProducts treats an empty catalog as NotFound.
func (s *CatalogService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.Products.FindAll(ctx)
	if err != nil {
		return nil, newError(CodeInternal, "An error occurred while retrieving products.", err)
	}
	if len(products) == 0 {
		return nil, newError(CodeNotFound, "No products found in the database.", ErrProductNotFound)
	}
	return products, nil
}

func (s *CatalogService) GetProductByID(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.Products.FindByID(ctx, id)
	if err != nil {
		return nil, productLookupError(id, err)
	}
	return product, nil
}

// UpdateProduct overwrites every mutable field of product id. A missing category and a
// missing product are both NotFound but carry different causes.
func (s *CatalogService) UpdateProduct(ctx context.Context, id uint, req transport.ProductRequest) (*models.Product, error) {
	category, err := s.findCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	product, err := s.Products.FindByID(ctx, id)
	if err != nil {
		return nil, productLookupError(id, err)
	}

	product.Title = req.Title
	product.Img = req.Img
	product.Description = req.Description
	product.Price = req.Price
	product.Quantity = req.Quantity
	product.CategoryID = category.ID
	product.Category = *category

	if err := s.Products.Save(ctx, product); err != nil {
		return nil, newError(CodeInternal, "product could not be updated", err)
	}

	s.publish(ctx, events.TopicProducts, keyOf(product.ID), events.NewProductEvent(events.ProductUpdated, product))
	s.reindex(ctx, product)
	return product, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.Products.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newError(CodeNotFound, "product is not in the database", fmt.Errorf("product %d: %w", id, ErrProductNotFound))
		}
		return newError(CodeInternal, "product could not be deleted", err)
	}

	s.publish(ctx, events.TopicProducts, keyOf(id), events.NewProductDeletedEvent(id))
	if s.Index != nil {
		ictx, cancel := context.WithTimeout(ctx, sideEffectTimeout)
		defer cancel()
		if err := s.Index.DeleteProduct(ictx, id); err != nil {
			logging.FromContext(ctx).Error("search_unindex_failed", "product_id", id, "error", err)
		}
	}
	return nil
}

// DeleteAllProducts returns how many products were removed; an empty catalog is not an error.
func (s *CatalogService) DeleteAllProducts(ctx context.Context) (int64, error) {
	deleted, err := s.Products.DeleteAll(ctx)
	if err != nil {
		return 0, newError(CodeInternal, "operation can't be done, database may be empty", err)
	}

	s.publish(ctx, events.TopicProducts, "all", events.NewProductsDeletedAllEvent(deleted))
	if s.Index != nil {
		ictx, cancel := context.WithTimeout(ctx, sideEffectTimeout)
		defer cancel()
		if err := s.Index.DeleteAll(ictx); err != nil {
			logging.FromContext(ctx).Error("search_clear_failed", "error", err)
		}
	}
	return deleted, nil
}

// GetProductsByCategory returns an empty list when nothing matches name.
func (s *CatalogService) GetProductsByCategory(ctx context.Context, name string) ([]models.Product, error) {
	products, err := s.Products.FindByCategoryName(ctx, name)
	if err != nil {
		return nil, newError(CodeBadRequest, "category is not found", err)
	}
	return products, nil
}

// GetProductsByPage returns page pageNo (zero-based) of pageSize products ordered by id.
func (s *CatalogService) GetProductsByPage(ctx context.Context, pageNo, pageSize int) (*ProductPage, error) {
	offset, limit, err := util.Window(pageNo, pageSize)
	if err != nil {
		return nil, newError(CodeMethodNotSupported, "Internal error", fmt.Errorf("%w: %w", ErrValidation, err))
	}

	items, total, err := s.Products.FindPage(ctx, offset, limit)
	if err != nil {
		return nil, newError(CodeMethodNotSupported, "Internal error", err)
	}

	return &ProductPage{
		Items:      items,
		PageNo:     pageNo,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: util.TotalPages(total, pageSize),
	}, nil
}

func (s *CatalogService) SearchProducts(ctx context.Context, query string, pageNo, pageSize int) (*ProductPage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, newError(CodeBadRequest, "search query is empty", ErrValidation)
	}
	if s.Index == nil {
		return nil, newError(CodeMethodNotSupported, "search is not available", ErrSearchDisabled)
	}
	from, size, err := util.Window(pageNo, pageSize)
	if err != nil {
		return nil, newError(CodeBadRequest, "invalid page parameters", fmt.Errorf("%w: %w", ErrValidation, err))
	}

	total, items, err := s.Index.Search(ctx, query, from, size)
	if err != nil {
		return nil, newError(CodeInternal, "search failed", err)
	}
	return &ProductPage{
		Items:      items,
		PageNo:     pageNo,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: util.TotalPages(total, pageSize),
	}, nil
}

func (s *CatalogService) toProduct(ctx context.Context, req transport.ProductRequest) (*models.Product, error) {
	category, err := s.findCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}
	return &models.Product{
		Title:       req.Title,
		Img:         req.Img,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		CategoryID:  category.ID,
		Category:    *category,
	}, nil
}

func (s *CatalogService) findCategory(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.Categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newError(CodeNotFound, "category not found", fmt.Errorf("category %d: %w", id, ErrCategoryNotFound))
		}
		return nil, newError(CodeInternal, "category lookup failed", err)
	}
	return category, nil
}

func productLookupError(id uint, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return newError(CodeNotFound, fmt.Sprintf("Product not found with ID: %d", id), fmt.Errorf("product %d: %w", id, ErrProductNotFound))
	}
	return newError(CodeInternal, "product lookup failed", err)
}

func (s *CatalogService) publish(ctx context.Context, topic, key string, event any) {
	if s.Events == nil {
		return
	}
	pctx, cancel := context.WithTimeout(ctx, sideEffectTimeout)
	defer cancel()
	if err := s.Events.PublishEvent(pctx, topic, key, event); err != nil {
		logging.FromContext(ctx).Error("event_publish_failed", "topic", topic, "key", key, "error", err)
	}
}

func (s *CatalogService) reindex(ctx context.Context, p *models.Product) {
	if s.Index == nil {
		return
	}
	ictx, cancel := context.WithTimeout(ctx, sideEffectTimeout)
	defer cancel()
	if err := s.Index.IndexProduct(ictx, p); err != nil {
		logging.FromContext(ctx).Error("search_index_failed", "product_id", p.ID, "error", err)
	}
}

func keyOf(id uint) string {
	return fmt.Sprint(id)
}

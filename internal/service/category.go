package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Skotchmaster/product_catalog/internal/events"
	"github.com/Skotchmaster/product_catalog/internal/models"
	"github.com/Skotchmaster/product_catalog/internal/repo"
	"github.com/Skotchmaster/product_catalog/internal/transport"
)

func (s *CatalogService) SaveCategory(ctx context.Context, req transport.CategoryRequest) (*models.Category, error) {
	name := strings.TrimSpace(req.CategoryName)
	if name == "" {
		return nil, newError(CodeBadRequest, "request failed", fmt.Errorf("category name is empty: %w", ErrValidation))
	}

	category := &models.Category{CategoryName: name}
	if err := s.Categories.Save(ctx, category); err != nil {
		return nil, newError(CodeBadRequest, "request failed", err)
	}

	s.publish(ctx, events.TopicCategories, keyOf(category.ID), events.NewCategoryEvent(events.CategoryCreated, category.ID, category.CategoryName))
	return category, nil
}

func (s *CatalogService) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.Categories.FindAll(ctx)
	if err != nil {
		return nil, newError(CodeBadRequest, "request failed", err)
	}
	return categories, nil
}

func (s *CatalogService) GetCategoryByID(ctx context.Context, id uint) (*models.Category, error) {
	return s.findCategory(ctx, id)
}

// DeleteCategory is refused while any product still belongs to the category.
func (s *CatalogService) DeleteCategory(ctx context.Context, id uint) error {
	if err := s.Categories.DeleteByID(ctx, id); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return newError(CodeNotFound, "category not found", fmt.Errorf("category %d: %w", id, ErrCategoryNotFound))
		case errors.Is(err, repo.ErrReferenced):
			return newError(CodeConflict, "category still has products", fmt.Errorf("category %d: %w", id, ErrCategoryInUse))
		default:
			return newError(CodeInternal, "category could not be deleted", err)
		}
	}

	s.publish(ctx, events.TopicCategories, keyOf(id), events.NewCategoryEvent(events.CategoryDeleted, id, ""))
	return nil
}

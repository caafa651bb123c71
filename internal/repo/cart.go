package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Skotchmaster/product_catalog/internal/models"
)

type CartRepo struct {
	DB *gorm.DB
}

func (r *CartRepo) FindIDByUserAndProduct(ctx context.Context, userID, productID uint) (uint, bool, error) {
	var item models.UserProductCart
	err := r.DB.WithContext(ctx).
		Select("id").
		Where("user_id = ? AND product_id = ?", userID, productID).
		Take(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return item.ID, true, nil
}

func (r *CartRepo) FindByID(ctx context.Context, id uint) (*models.UserProductCart, error) {
	var item models.UserProductCart
	if err := r.DB.WithContext(ctx).Preload("Product.Category").First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepo) FindByUser(ctx context.Context, userID uint) ([]models.UserProductCart, error) {
	items := []models.UserProductCart{}
	if err := r.DB.WithContext(ctx).
		Preload("Product.Category").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CartRepo) Save(ctx context.Context, item *models.UserProductCart) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Save(item).Error
}

func (r *CartRepo) DeleteByUserAndProduct(ctx context.Context, userID, productID uint) error {
	res := r.DB.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.UserProductCart{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Skotchmaster/product_catalog/internal/models"
)

// ErrReferenced is returned when a row cannot be removed while other rows point at it.
var ErrReferenced = errors.New("row is still referenced")

// Missing rows are reported as gorm.ErrRecordNotFound by every store.

type ProductStore interface {
	FindByID(ctx context.Context, id uint) (*models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
	FindPage(ctx context.Context, offset, limit int) ([]models.Product, int64, error)
	FindByCategoryName(ctx context.Context, name string) ([]models.Product, error)
	Save(ctx context.Context, p *models.Product) error
	SaveAll(ctx context.Context, ps []models.Product) error
	DeleteByID(ctx context.Context, id uint) error
	DeleteAll(ctx context.Context) (int64, error)
}

type CategoryStore interface {
	FindByID(ctx context.Context, id uint) (*models.Category, error)
	FindAll(ctx context.Context) ([]models.Category, error)
	Save(ctx context.Context, c *models.Category) error
	DeleteByID(ctx context.Context, id uint) error
}

type UserStore interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
	Save(ctx context.Context, u *models.User) error
}

type CartStore interface {
	// FindIDByUserAndProduct returns found=false, not an error, when no row matches.
	FindIDByUserAndProduct(ctx context.Context, userID, productID uint) (id uint, found bool, err error)
	FindByID(ctx context.Context, id uint) (*models.UserProductCart, error)
	FindByUser(ctx context.Context, userID uint) ([]models.UserProductCart, error)
	Save(ctx context.Context, item *models.UserProductCart) error
	DeleteByUserAndProduct(ctx context.Context, userID, productID uint) error
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Category{}, &models.Product{}, &models.User{}, &models.UserProductCart{})
}

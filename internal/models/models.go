package models

import "time"

// Base is the identity and audit block shared by every table.
type Base struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Category struct {
	Base
	CategoryName string `gorm:"uniqueIndex;not null" json:"category_name"`
}

type Product struct {
	Base
	Title       string   `gorm:"not null"           json:"title"`
	Img         string   `json:"img"`
	Description string   `json:"description"`
	Price       int64    `gorm:"not null"           json:"price"`
	Quantity    int      `gorm:"not null;default:0" json:"quantity"`
	CategoryID  uint     `gorm:"index;not null"     json:"category_id"`
	Category    Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category"`
}

type User struct {
	Base
	Username string `gorm:"uniqueIndex;not null"      json:"username"`
	Role     string `gorm:"not null;default:'user'"   json:"role"`
}

// UserProductCart is a single cart line: one row per (user, product) pair.
type UserProductCart struct {
	Base
	UserID    uint    `gorm:"uniqueIndex:idx_user_product;not null" json:"user_id"`
	User      User    `gorm:"constraint:OnDelete:CASCADE"           json:"-"`
	ProductID uint    `gorm:"uniqueIndex:idx_user_product;not null" json:"product_id"`
	Product   Product `gorm:"constraint:OnDelete:CASCADE"           json:"product"`
}

func (UserProductCart) TableName() string {
	return "user_product_carts"
}

package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageFile   string          `gorm:"not null;default:default_product.jpg" json:"imageFile"`

	CategoryID uint     `gorm:"not null" json:"categoryId"`
	Category   Category `json:"-"`
}

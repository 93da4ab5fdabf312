package entity

import (
	"gorm.io/gorm"
)

// CartItem is one pending line of a user's cart. Uniqueness per
// (user, product) is enforced by the upsert in CartRepository, not by
// a DB constraint.
type CartItem struct {
	gorm.Model
	UserID uint `gorm:"not null;index" json:"userId"`
	User   User `json:"-"`

	ProductID uint    `gorm:"not null" json:"productId"`
	Product   Product `json:"product"`

	Quantity int `gorm:"not null" json:"quantity"`
}

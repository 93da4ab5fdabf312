package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StatusPending is the status every order starts in; admins move it
// forward with free-text values afterwards.
const StatusPending = "pending"

type Order struct {
	gorm.Model
	TotalPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"totalPrice"`
	DateOrdered time.Time       `gorm:"not null" json:"dateOrdered"`
	Status      string          `gorm:"not null;default:pending" json:"status"`

	UserID uint `gorm:"not null;index" json:"userId"`
	User   User `json:"-"`

	Items []OrderItem `json:"items"`
}

package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name       string `gorm:"not null" json:"name"`
	Email      string `gorm:"uniqueIndex;not null" json:"email"`
	Password   string `json:"-"`
	IsAdmin    bool   `gorm:"not null;default:false" json:"isAdmin"`
	ProfilePic string `json:"profilePic"`

	// Relations, preloaded only when needed
	CartItems []CartItem `json:"-"`
	Orders    []Order    `json:"-"`
}

// Role maps the admin flag onto the role claim carried in tokens.
func (u *User) Role() string {
	if u.IsAdmin {
		return "admin"
	}
	return "customer"
}

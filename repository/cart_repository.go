package repository

import (
	"errors"

	"storefront/entity"

	"gorm.io/gorm"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

// ItemsForUser takes the DB handle so checkout can load the cart inside
// its transaction; plain reads pass r.DB.
func (r *CartRepository) ItemsForUser(tx *gorm.DB, userID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := tx.Where("user_id = ?", userID).
		Preload("Product").
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CartRepository) ItemByID(itemID uint) (*entity.CartItem, error) {
	var item entity.CartItem
	if err := r.DB.First(&item, itemID).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpsertItem merges quantity into an existing (user, product) line or
// creates a new one. Keeps at most one line per pair.
func (r *CartRepository) UpsertItem(tx *gorm.DB, userID, productID uint, qty int) error {
	var exist entity.CartItem
	err := tx.Where("user_id = ? AND product_id = ?", userID, productID).First(&exist).Error
	if err == nil {
		exist.Quantity += qty
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return tx.Create(&entity.CartItem{UserID: userID, ProductID: productID, Quantity: qty}).Error
}

func (r *CartRepository) SaveItem(item *entity.CartItem) error {
	return r.DB.Save(item).Error
}

func (r *CartRepository) DeleteItem(itemID uint) error {
	return r.DB.Delete(&entity.CartItem{}, itemID).Error
}

// ClearForUser empties the cart; checkout calls it inside its tx.
func (r *CartRepository) ClearForUser(tx *gorm.DB, userID uint) error {
	return tx.Where("user_id = ?", userID).Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) CountForUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.CartItem{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

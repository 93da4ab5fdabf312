package services

import (
	"errors"
	"fmt"

	"storefront/entity"
	"storefront/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cart adjustment actions as sent by the request layer.
const (
	ActionIncrease = "increase"
	ActionDecrease = "decrease"
	ActionRemove   = "remove"
)

type CartService struct {
	DB      *gorm.DB
	Repo    *repository.CartRepository
	Catalog *repository.CatalogRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, cat *repository.CatalogRepository) *CartService {
	return &CartService{DB: db, Repo: cr, Catalog: cat}
}

type CartView struct {
	Items []entity.CartItem `json:"items"`
	Total decimal.Decimal   `json:"total"`
}

// List returns the user's cart lines with the total recomputed from
// current product prices on every read.
func (s *CartService) List(userID uint) (*CartView, error) {
	items, err := s.Repo.ItemsForUser(s.Repo.DB, userID)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Product.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return &CartView{Items: items, Total: total}, nil
}

// Add merges qty into an existing (user, product) line or creates one.
// qty <= 0 is treated as 1, matching the form default.
func (s *CartService) Add(userID, productID uint, qty int) error {
	if qty <= 0 {
		qty = 1
	}

	if _, err := s.Catalog.ProductByID(s.Catalog.DB, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("product %d: %w", productID, ErrNotFound)
		}
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.UpsertItem(tx, userID, productID, qty)
	})
}

// Adjust applies increase/decrease/remove to one cart line. A decrease
// that reaches zero deletes the line; touching another user's line is a
// hard authorization failure.
func (s *CartService) Adjust(userID, itemID uint, action string) error {
	item, err := s.Repo.ItemByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("cart item %d: %w", itemID, ErrNotFound)
		}
		return err
	}
	if item.UserID != userID {
		return fmt.Errorf("cart item %d: %w", itemID, ErrNotOwner)
	}

	switch action {
	case ActionIncrease:
		item.Quantity++
		return s.Repo.SaveItem(item)
	case ActionDecrease:
		item.Quantity--
		if item.Quantity <= 0 {
			return s.Repo.DeleteItem(item.ID)
		}
		return s.Repo.SaveItem(item)
	case ActionRemove:
		return s.Repo.DeleteItem(item.ID)
	default:
		return fmt.Errorf("%w: action %q", ErrInvalid, action)
	}
}

// Count backs the cart badge in the storefront header.
func (s *CartService) Count(userID uint) (int64, error) {
	return s.Repo.CountForUser(userID)
}

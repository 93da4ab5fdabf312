package services

import (
	"errors"
	"fmt"
	"time"

	"storefront/entity"
	"storefront/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	Catalog  *repository.CatalogRepository
	Users    *repository.UserRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	catalog *repository.CatalogRepository,
	users *repository.UserRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, Catalog: catalog, Users: users}
}

// Checkout converts the user's cart into an order. All of it runs in
// one transaction: load the cart, snapshot current product prices into
// order items, create the order, clear the cart. Any failure rolls the
// whole thing back and leaves the cart as it was.
func (s *OrderService) Checkout(userID uint) (*entity.Order, error) {
	var order entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		items, err := s.CartRepo.ItemsForUser(tx, userID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		total := decimal.Zero
		lines := make([]entity.OrderItem, 0, len(items))
		for _, it := range items {
			p, err := s.Catalog.ProductByID(tx, it.ProductID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("product %d: %w", it.ProductID, ErrNotFound)
				}
				return err
			}
			total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
			lines = append(lines, entity.OrderItem{
				ProductID: p.ID,
				Quantity:  it.Quantity,
				Price:     p.Price,
			})
		}

		order = entity.Order{
			UserID:      userID,
			TotalPrice:  total,
			DateOrdered: time.Now(),
			Status:      entity.StatusPending,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for i := range lines {
			lines[i].OrderID = order.ID
			if err := s.Repo.CreateOrderItem(tx, &lines[i]); err != nil {
				return err
			}
		}
		order.Items = lines

		return s.CartRepo.ClearForUser(tx, userID)
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ---------------- Customer views ----------------

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Repo.ListForUser(userID)
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %d: %w", orderID, ErrNotFound)
		}
		return nil, err
	}
	if o.UserID != userID {
		return nil, fmt.Errorf("order %d: %w", orderID, ErrNotOwner)
	}
	return o, nil
}

// ---------------- Admin ----------------

func (s *OrderService) ListAll() ([]entity.Order, error) {
	return s.Repo.ListAll(0)
}

func (s *OrderService) Detail(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %d: %w", orderID, ErrNotFound)
		}
		return nil, err
	}
	return o, nil
}

// UpdateStatus sets the admin-facing free-text status of an order.
func (s *OrderService) UpdateStatus(orderID uint, status string) error {
	if status == "" {
		return fmt.Errorf("%w: empty status", ErrInvalid)
	}
	if _, err := s.Repo.GetOrder(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("order %d: %w", orderID, ErrNotFound)
		}
		return err
	}
	return s.Repo.UpdateStatus(orderID, status)
}

type DashboardCounts struct {
	Products   int64          `json:"products"`
	Categories int64          `json:"categories"`
	Orders     int64          `json:"orders"`
	Users      int64          `json:"users"`
	Recent     []entity.Order `json:"recentOrders"`
}

// Dashboard collects the admin landing-page counters plus the five most
// recent orders.
func (s *OrderService) Dashboard() (*DashboardCounts, error) {
	var out DashboardCounts
	var err error
	if out.Products, err = s.Catalog.CountProducts(); err != nil {
		return nil, err
	}
	if out.Categories, err = s.Catalog.CountCategories(); err != nil {
		return nil, err
	}
	if out.Orders, err = s.Repo.CountOrders(); err != nil {
		return nil, err
	}
	if out.Users, err = s.Users.CountActive(); err != nil {
		return nil, err
	}
	if out.Recent, err = s.Repo.ListAll(5); err != nil {
		return nil, err
	}
	return &out, nil
}

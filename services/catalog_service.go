package services

import (
	"errors"
	"fmt"
	"strings"

	"storefront/entity"
	"storefront/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CatalogService struct {
	Repo *repository.CatalogRepository
}

func NewCatalogService(repo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{Repo: repo}
}

// ---------------- Categories ----------------

func (s *CatalogService) ListCategories() ([]entity.Category, error) {
	return s.Repo.ListCategories()
}

func (s *CatalogService) CreateCategory(name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrInvalid)
	}
	count, err := s.Repo.CountCategoriesByName(name)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("category %q: %w", name, ErrDuplicate)
	}
	cat := &entity.Category{Name: name}
	if err := s.Repo.CreateCategory(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// DeleteCategory refuses to remove a category that still has products.
// The check lives here, not in the schema, so the caller gets a clean
// conflict instead of a driver error.
func (s *CatalogService) DeleteCategory(id uint) error {
	if _, err := s.Repo.CategoryByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("category %d: %w", id, ErrNotFound)
		}
		return err
	}
	count, err := s.Repo.CountProductsInCategory(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("category %d has %d products: %w", id, count, ErrConflict)
	}
	return s.Repo.DeleteCategory(id)
}

// ---------------- Products ----------------

type ProductIn struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageFile   string          `json:"imageFile"`
	CategoryID  uint            `json:"categoryId"`
}

func (s *CatalogService) ListProducts() ([]entity.Product, error) {
	return s.Repo.ListProducts()
}

func (s *CatalogService) ListProductsByCategory(categoryID uint) ([]entity.Product, error) {
	return s.Repo.ListProductsByCategory(categoryID)
}

func (s *CatalogService) GetProduct(id uint) (*entity.Product, error) {
	p, err := s.Repo.ProductByID(s.Repo.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return p, nil
}

func (s *CatalogService) CreateProduct(in *ProductIn) (*entity.Product, error) {
	if err := s.validateProduct(in); err != nil {
		return nil, err
	}
	p := &entity.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		CategoryID:  in.CategoryID,
	}
	if in.ImageFile != "" {
		p.ImageFile = in.ImageFile
	}
	if err := s.Repo.CreateProduct(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *CatalogService) UpdateProduct(id uint, in *ProductIn) (*entity.Product, error) {
	p, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}
	if err := s.validateProduct(in); err != nil {
		return nil, err
	}
	p.Name = strings.TrimSpace(in.Name)
	p.Description = in.Description
	p.Price = in.Price
	p.CategoryID = in.CategoryID
	if in.ImageFile != "" {
		p.ImageFile = in.ImageFile
	}
	if err := s.Repo.SaveProduct(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *CatalogService) DeleteProduct(id uint) error {
	if _, err := s.GetProduct(id); err != nil {
		return err
	}
	return s.Repo.DeleteProduct(id)
}

func (s *CatalogService) validateProduct(in *ProductIn) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: product name is required", ErrInvalid)
	}
	if in.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrInvalid)
	}
	// Referential check at the application layer; the storage schema is
	// not assumed to enforce it.
	if _, err := s.Repo.CategoryByID(in.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("category %d: %w", in.CategoryID, ErrNotFound)
		}
		return err
	}
	return nil
}

package repository

import (
	"storefront/entity"

	"gorm.io/gorm"
)

// CatalogRepository covers categories and products; they only ever
// change together (the category referential checks live in the service).
type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

// ---------------- Categories ----------------

func (r *CatalogRepository) ListCategories() ([]entity.Category, error) {
	var cats []entity.Category
	if err := r.DB.Order("name").Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

func (r *CatalogRepository) CategoryByID(id uint) (*entity.Category, error) {
	var cat entity.Category
	if err := r.DB.First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CatalogRepository) CountCategoriesByName(name string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Category{}).Where("name = ?", name).Count(&count).Error
	return count, err
}

func (r *CatalogRepository) CreateCategory(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

// DeleteCategory removes the row for good. A soft-deleted row would
// keep holding the unique name index and block re-creating the name.
func (r *CatalogRepository) DeleteCategory(id uint) error {
	return r.DB.Unscoped().Delete(&entity.Category{}, id).Error
}

// CountProductsInCategory backs the delete guard: a category with
// products must not be removed.
func (r *CatalogRepository) CountProductsInCategory(categoryID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Product{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

// ---------------- Products ----------------

func (r *CatalogRepository) ListProducts() ([]entity.Product, error) {
	var products []entity.Product
	if err := r.DB.Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *CatalogRepository) ListProductsByCategory(categoryID uint) ([]entity.Product, error) {
	var products []entity.Product
	if err := r.DB.Where("category_id = ?", categoryID).Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ProductByID takes the DB handle so checkout can read product rows
// inside its own transaction. Callers outside a tx pass r.DB.
func (r *CatalogRepository) ProductByID(tx *gorm.DB, id uint) (*entity.Product, error) {
	var p entity.Product
	if err := tx.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *CatalogRepository) CreateProduct(p *entity.Product) error {
	return r.DB.Create(p).Error
}

func (r *CatalogRepository) SaveProduct(p *entity.Product) error {
	return r.DB.Save(p).Error
}

func (r *CatalogRepository) DeleteProduct(id uint) error {
	return r.DB.Delete(&entity.Product{}, id).Error
}

func (r *CatalogRepository) CountProducts() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Product{}).Count(&count).Error
	return count, err
}

func (r *CatalogRepository) CountCategories() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Category{}).Count(&count).Error
	return count, err
}

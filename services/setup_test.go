package services

import (
	"testing"
	"time"

	"storefront/entity"
	"storefront/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.Product{},
		&entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	))
	return db
}

type testEnv struct {
	db      *gorm.DB
	auth    *AuthService
	catalog *CatalogService
	cart    *CartService
	orders  *OrderService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := setupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	return &testEnv{
		db:      db,
		auth:    NewAuthService(db, userRepo, "test-secret", time.Hour),
		catalog: NewCatalogService(catalogRepo),
		cart:    NewCartService(db, cartRepo, catalogRepo),
		orders:  NewOrderService(db, orderRepo, cartRepo, catalogRepo, userRepo),
	}
}

func seedCategory(t *testing.T, env *testEnv, name string) *entity.Category {
	t.Helper()
	cat, err := env.catalog.CreateCategory(name)
	require.NoError(t, err)
	return cat
}

func seedProduct(t *testing.T, env *testEnv, name, price string, categoryID uint) *entity.Product {
	t.Helper()
	p, err := env.catalog.CreateProduct(&ProductIn{
		Name:       name,
		Price:      decimal.RequireFromString(price),
		CategoryID: categoryID,
	})
	require.NoError(t, err)
	return p
}

func seedUser(t *testing.T, env *testEnv, email string) *entity.User {
	t.Helper()
	u, err := env.auth.Register("Test User", email, "secret123")
	require.NoError(t, err)
	return u
}

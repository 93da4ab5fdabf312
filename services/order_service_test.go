package services

import (
	"errors"
	"testing"

	"storefront/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutScenario(t *testing.T) {
	env := newTestEnv(t)
	cat := seedCategory(t, env, "Electronics")
	laptop := seedProduct(t, env, "High-Performance Laptop", "1200.00", cat.ID)
	headphones := seedProduct(t, env, "Wireless Headphones", "150.00", cat.ID)
	u := seedUser(t, env, "alice@example.com")

	require.NoError(t, env.cart.Add(u.ID, laptop.ID, 1))
	require.NoError(t, env.cart.Add(u.ID, headphones.ID, 2))

	order, err := env.orders.Checkout(u.ID)
	require.NoError(t, err)

	assert.True(t, order.TotalPrice.Equal(decimal.RequireFromString("1500.00")),
		"total = %s", order.TotalPrice)
	assert.Equal(t, entity.StatusPending, order.Status)
	assert.False(t, order.DateOrdered.IsZero())
	require.Len(t, order.Items, 2)
	assert.True(t, order.Items[0].Price.Equal(decimal.RequireFromString("1200.00")))
	assert.True(t, order.Items[1].Price.Equal(decimal.RequireFromString("150.00")))

	// cart is empty afterwards
	view, err := env.cart.List(u.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)

	// exactly one order exists
	var count int64
	require.NoError(t, env.db.Model(&entity.Order{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCheckoutEmptyCart(t *testing.T) {
	env := newTestEnv(t)
	u := seedUser(t, env, "alice@example.com")

	_, err := env.orders.Checkout(u.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyCart))

	var count int64
	require.NoError(t, env.db.Model(&entity.Order{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestOrderPricesAreFrozen(t *testing.T) {
	env := newTestEnv(t)
	cat := seedCategory(t, env, "Electronics")
	p := seedProduct(t, env, "Smart Watch", "250.00", cat.ID)
	u := seedUser(t, env, "alice@example.com")

	require.NoError(t, env.cart.Add(u.ID, p.ID, 2))
	order, err := env.orders.Checkout(u.ID)
	require.NoError(t, err)

	// raise the product price after the order exists
	require.NoError(t, env.db.Model(&entity.Product{}).Where("id = ?", p.ID).
		Update("price", "999.00").Error)

	got, err := env.orders.DetailForUser(u.ID, order.ID)
	require.NoError(t, err)
	assert.True(t, got.TotalPrice.Equal(decimal.RequireFromString("500.00")),
		"total = %s", got.TotalPrice)
	require.Len(t, got.Items, 1)
	assert.True(t, got.Items[0].Price.Equal(decimal.RequireFromString("250.00")),
		"item price = %s", got.Items[0].Price)
}

func TestCheckoutRollsBackWhenProductVanishes(t *testing.T) {
	env := newTestEnv(t)
	cat := seedCategory(t, env, "Electronics")
	keep := seedProduct(t, env, "Keyboard", "100.00", cat.ID)
	gone := seedProduct(t, env, "Monitor", "300.00", cat.ID)
	u := seedUser(t, env, "alice@example.com")

	require.NoError(t, env.cart.Add(u.ID, keep.ID, 1))
	require.NoError(t, env.cart.Add(u.ID, gone.ID, 1))

	// product disappears between add-to-cart and checkout
	require.NoError(t, env.db.Delete(&entity.Product{}, gone.ID).Error)

	_, err := env.orders.Checkout(u.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	// nothing committed: no order, no order items, cart untouched
	var orders, items int64
	require.NoError(t, env.db.Model(&entity.Order{}).Count(&orders).Error)
	require.NoError(t, env.db.Model(&entity.OrderItem{}).Count(&items).Error)
	assert.Equal(t, int64(0), orders)
	assert.Equal(t, int64(0), items)

	var cartLines int64
	require.NoError(t, env.db.Model(&entity.CartItem{}).Where("user_id = ?", u.ID).Count(&cartLines).Error)
	assert.Equal(t, int64(2), cartLines)
}

func TestOrderDetailOwnership(t *testing.T) {
	env := newTestEnv(t)
	cat := seedCategory(t, env, "Electronics")
	p := seedProduct(t, env, "Phone", "800.00", cat.ID)
	alice := seedUser(t, env, "alice@example.com")
	bob := seedUser(t, env, "bob@example.com")

	require.NoError(t, env.cart.Add(alice.ID, p.ID, 1))
	order, err := env.orders.Checkout(alice.ID)
	require.NoError(t, err)

	_, err = env.orders.DetailForUser(bob.ID, order.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotOwner))

	_, err = env.orders.DetailForUser(alice.ID, order.ID)
	assert.NoError(t, err)
}

func TestUpdateOrderStatus(t *testing.T) {
	env := newTestEnv(t)
	cat := seedCategory(t, env, "Electronics")
	p := seedProduct(t, env, "Phone", "800.00", cat.ID)
	u := seedUser(t, env, "alice@example.com")

	require.NoError(t, env.cart.Add(u.ID, p.ID, 1))
	order, err := env.orders.Checkout(u.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, order.Status)

	require.NoError(t, env.orders.UpdateStatus(order.ID, "shipped"))

	got, err := env.orders.Detail(order.ID)
	require.NoError(t, err)
	assert.Equal(t, "shipped", got.Status)
	// status is the only mutable column
	assert.True(t, got.TotalPrice.Equal(order.TotalPrice))

	err = env.orders.UpdateStatus(9999, "shipped")
	assert.True(t, errors.Is(err, ErrNotFound))

	err = env.orders.UpdateStatus(order.ID, "")
	assert.True(t, errors.Is(err, ErrInvalid))
}

func TestDashboardCounts(t *testing.T) {
	env := newTestEnv(t)
	cat := seedCategory(t, env, "Electronics")
	p := seedProduct(t, env, "Phone", "800.00", cat.ID)
	u := seedUser(t, env, "alice@example.com")

	require.NoError(t, env.cart.Add(u.ID, p.ID, 1))
	_, err := env.orders.Checkout(u.ID)
	require.NoError(t, err)

	counts, err := env.orders.Dashboard()
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.Products)
	assert.Equal(t, int64(1), counts.Categories)
	assert.Equal(t, int64(1), counts.Orders)
	assert.Equal(t, int64(1), counts.Users)
	assert.Len(t, counts.Recent, 1)
}

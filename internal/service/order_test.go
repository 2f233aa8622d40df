package service

import (
	"testing"

	"milkstore/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderDecrementsStockAndSnapshotsPrices(t *testing.T) {
	conn := newTestDB(t)
	customer := seedUser(t, conn, "alice", domain.Customer)
	milk := seedProduct(t, conn, "Whole Milk", 2.5, 10)
	butter := seedProduct(t, conn, "Butter", 4.0, 6)
	svc := NewOrderService(conn)

	order, err := svc.Create(CreateOrderInput{
		UserID:      customer.ID,
		TotalPrice:  17.0,
		Address:     "1 Main St",
		PhoneNumber: "0123456789",
		Lines: []OrderLine{
			{ProductID: milk.ID, Quantity: 2},
			{ProductID: butter.ID, Quantity: 3},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.Ordered, order.OrderStatus)
	assert.False(t, order.OrderDate.IsZero())
	assert.Equal(t, customer.ID, order.UserID)

	// Stock decremented by exactly the ordered quantities
	assert.Equal(t, 8, currentStock(t, conn, milk.ID))
	assert.Equal(t, 3, currentStock(t, conn, butter.ID))

	// Line prices are unit price x quantity snapshots
	require.Len(t, order.OrderDetails, 2)
	prices := map[string]float64{}
	for _, detail := range order.OrderDetails {
		require.NotNil(t, detail.Product)
		prices[detail.Product.Name] = detail.Price
	}
	assert.Equal(t, 5.0, prices["Whole Milk"])
	assert.Equal(t, 12.0, prices["Butter"])
}

func TestCreateOrderInsufficientStockIsAllOrNothing(t *testing.T) {
	conn := newTestDB(t)
	customer := seedUser(t, conn, "alice", domain.Customer)
	milk := seedProduct(t, conn, "Whole Milk", 2.5, 5)
	butter := seedProduct(t, conn, "Butter", 4.0, 1)
	svc := NewOrderService(conn)

	// The second line exceeds stock, so the whole order must be rejected
	_, err := svc.Create(CreateOrderInput{
		UserID:     customer.ID,
		TotalPrice: 21.0,
		Address:    "1 Main St",
		Lines: []OrderLine{
			{ProductID: milk.ID, Quantity: 2},
			{ProductID: butter.ID, Quantity: 4},
		},
	})
	require.ErrorIs(t, err, ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Butter")
	assert.Contains(t, err.Error(), "available stock: 1")

	// No stock was touched and no rows were created
	assert.Equal(t, 5, currentStock(t, conn, milk.ID))
	assert.Equal(t, 1, currentStock(t, conn, butter.ID))
	var orderCount, detailCount int64
	require.NoError(t, conn.Model(&domain.Order{}).Count(&orderCount).Error)
	require.NoError(t, conn.Model(&domain.OrderDetail{}).Count(&detailCount).Error)
	assert.Zero(t, orderCount)
	assert.Zero(t, detailCount)
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	conn := newTestDB(t)
	customer := seedUser(t, conn, "alice", domain.Customer)
	milk := seedProduct(t, conn, "Whole Milk", 2.5, 5)
	svc := NewOrderService(conn)

	_, err := svc.Create(CreateOrderInput{
		UserID:     customer.ID,
		TotalPrice: 5.0,
		Address:    "1 Main St",
		Lines: []OrderLine{
			{ProductID: milk.ID, Quantity: 1},
			{ProductID: "no-such-product", Quantity: 1},
		},
	})
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 5, currentStock(t, conn, milk.ID))
}

func TestCreateOrderDrainsStockThenRejectsNextOrder(t *testing.T) {
	conn := newTestDB(t)
	customer := seedUser(t, conn, "alice", domain.Customer)
	milk := seedProduct(t, conn, "Whole Milk", 2.5, 5)
	svc := NewOrderService(conn)

	// Ordering the entire stock succeeds and leaves zero
	_, err := svc.Create(CreateOrderInput{
		UserID:     customer.ID,
		TotalPrice: 12.5,
		Address:    "1 Main St",
		Lines:      []OrderLine{{ProductID: milk.ID, Quantity: 5}},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, currentStock(t, conn, milk.ID))

	// The next order for the same product fails
	_, err = svc.Create(CreateOrderInput{
		UserID:     customer.ID,
		TotalPrice: 2.5,
		Address:    "1 Main St",
		Lines:      []OrderLine{{ProductID: milk.ID, Quantity: 1}},
	})
	require.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 0, currentStock(t, conn, milk.ID))
}

func TestCancelOrderRestoresStockExactlyOnce(t *testing.T) {
	conn := newTestDB(t)
	customer := seedUser(t, conn, "alice", domain.Customer)
	milk := seedProduct(t, conn, "Whole Milk", 2.5, 10)
	butter := seedProduct(t, conn, "Butter", 4.0, 6)
	svc := NewOrderService(conn)

	order, err := svc.Create(CreateOrderInput{
		UserID:     customer.ID,
		TotalPrice: 17.0,
		Address:    "1 Main St",
		Lines: []OrderLine{
			{ProductID: milk.ID, Quantity: 2},
			{ProductID: butter.ID, Quantity: 3},
		},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(order.ID))

	// Stock restored to its pre-order level, status flipped to Cancelled
	assert.Equal(t, 10, currentStock(t, conn, milk.ID))
	assert.Equal(t, 6, currentStock(t, conn, butter.ID))
	cancelled, err := svc.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Cancelled, cancelled.OrderStatus)

	// A second cancel fails and must not restore stock again
	err = svc.Cancel(order.ID)
	require.ErrorIs(t, err, ErrInvalidState)
	assert.Equal(t, 10, currentStock(t, conn, milk.ID))
	assert.Equal(t, 6, currentStock(t, conn, butter.ID))
}

func TestCancelOrderNotFound(t *testing.T) {
	conn := newTestDB(t)
	svc := NewOrderService(conn)

	err := svc.Cancel("no-such-order")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCancelOrderRejectedOnceAssigned(t *testing.T) {
	conn := newTestDB(t)
	customer := seedUser(t, conn, "alice", domain.Customer)
	milk := seedProduct(t, conn, "Whole Milk", 2.5, 5)
	svc := NewOrderService(conn)

	order, err := svc.Create(CreateOrderInput{
		UserID:     customer.ID,
		TotalPrice: 5.0,
		Address:    "1 Main St",
		Lines:      []OrderLine{{ProductID: milk.ID, Quantity: 2}},
	})
	require.NoError(t, err)
	setOrderStatus(t, conn, order.ID, domain.Assigned)

	err = svc.Cancel(order.ID)
	require.ErrorIs(t, err, ErrInvalidState)
	assert.Equal(t, 3, currentStock(t, conn, milk.ID))
}

func TestUpdateOrderPartialFields(t *testing.T) {
	conn := newTestDB(t)
	customer := seedUser(t, conn, "alice", domain.Customer)
	milk := seedProduct(t, conn, "Whole Milk", 2.5, 5)
	svc := NewOrderService(conn)

	order, err := svc.Create(CreateOrderInput{
		UserID:      customer.ID,
		TotalPrice:  5.0,
		Address:     "1 Main St",
		PhoneNumber: "0123456789",
		Lines:       []OrderLine{{ProductID: milk.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	address := "2 Side St"
	code := "MS-2026-001"
	updated, err := svc.Update(order.ID, UpdateOrderInput{Address: &address, OrderCode: &code})
	require.NoError(t, err)

	assert.Equal(t, "2 Side St", updated.Address)
	assert.Equal(t, "MS-2026-001", updated.OrderCode)
	// Untouched fields stay as they were
	assert.Equal(t, "0123456789", updated.PhoneNumber)
	assert.Equal(t, domain.Ordered, updated.OrderStatus)
}

func TestUpdateOrderStatusValidation(t *testing.T) {
	conn := newTestDB(t)
	customer := seedUser(t, conn, "alice", domain.Customer)
	milk := seedProduct(t, conn, "Whole Milk", 2.5, 5)
	svc := NewOrderService(conn)

	order, err := svc.Create(CreateOrderInput{
		UserID:     customer.ID,
		TotalPrice: 5.0,
		Address:    "1 Main St",
		Lines:      []OrderLine{{ProductID: milk.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	// A code outside the enum is a validation error
	unknown := 9
	_, err = svc.Update(order.ID, UpdateOrderInput{OrderStatus: &unknown})
	require.ErrorIs(t, err, ErrValidation)

	// A legal forward move is accepted
	assigned := int(domain.Assigned)
	updated, err := svc.Update(order.ID, UpdateOrderInput{OrderStatus: &assigned})
	require.NoError(t, err)
	assert.Equal(t, domain.Assigned, updated.OrderStatus)

	// A backward move is rejected
	ordered := int(domain.Ordered)
	_, err = svc.Update(order.ID, UpdateOrderInput{OrderStatus: &ordered})
	require.ErrorIs(t, err, ErrInvalidState)

	// Nothing transitions out of a terminal state
	setOrderStatus(t, conn, order.ID, domain.Delivered)
	shipping := int(domain.Shipping)
	_, err = svc.Update(order.ID, UpdateOrderInput{OrderStatus: &shipping})
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestOrderDetailPriceSurvivesProductPriceChange(t *testing.T) {
	conn := newTestDB(t)
	customer := seedUser(t, conn, "alice", domain.Customer)
	milk := seedProduct(t, conn, "Whole Milk", 2.5, 5)
	svc := NewOrderService(conn)

	order, err := svc.Create(CreateOrderInput{
		UserID:     customer.ID,
		TotalPrice: 5.0,
		Address:    "1 Main St",
		Lines:      []OrderLine{{ProductID: milk.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	// A later price change must not rewrite the snapshot
	require.NoError(t, conn.Model(&domain.Product{}).Where("id = ?", milk.ID).Update("price", 9.99).Error)

	reloaded, err := svc.Get(order.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.OrderDetails, 1)
	assert.Equal(t, 5.0, reloaded.OrderDetails[0].Price)
}

func TestListOrdersSearchAndPaging(t *testing.T) {
	conn := newTestDB(t)
	customer := seedUser(t, conn, "alice", domain.Customer)
	other := seedUser(t, conn, "bob", domain.Customer)
	milk := seedProduct(t, conn, "Whole Milk", 2.5, 100)
	svc := NewOrderService(conn)

	for i := 0; i < 3; i++ {
		_, err := svc.Create(CreateOrderInput{
			UserID:     customer.ID,
			TotalPrice: 2.5,
			Address:    "1 Main St",
			Lines:      []OrderLine{{ProductID: milk.ID, Quantity: 1}},
		})
		require.NoError(t, err)
	}
	_, err := svc.Create(CreateOrderInput{
		UserID:     other.ID,
		TotalPrice: 2.5,
		Address:    "9 Harbor Rd",
		Lines:      []OrderLine{{ProductID: milk.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	// Address search filters before counting
	page, err := svc.List(1, 2, "Main", "address")
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.TotalCount)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Items, 2)

	// Status search matches every open order
	page, err = svc.List(1, 10, "Ordered", "orderStatus")
	require.NoError(t, err)
	assert.Equal(t, int64(4), page.TotalCount)

	// Listing by user only returns that user's orders
	page, err = svc.ListByUser(other.ID, 1, 10, "", "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.TotalCount)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "9 Harbor Rd", page.Items[0].Address)
}

package analytics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatera900/bite-backend/pkg/models"
)

type stubOrders struct {
	orders []models.Order
}

func (s stubOrders) List(context.Context) ([]models.Order, error) {
	return s.orders, nil
}

func TestPopularItemsTalliesQuantities(t *testing.T) {
	t.Parallel()

	svc := NewService(stubOrders{orders: []models.Order{
		{Items: []models.OrderItem{{MenuItemID: 1, Quantity: 2}}},
		{Items: []models.OrderItem{{MenuItemID: 1, Quantity: 3}, {MenuItemID: 2, Quantity: 1}}},
	}})

	ranked, err := svc.PopularItems(context.Background())
	require.NoError(t, err)

	require.Len(t, ranked, 2)
	assert.Equal(t, PopularItem{ItemID: 1, OrderCount: 5}, ranked[0])
	assert.Equal(t, PopularItem{ItemID: 2, OrderCount: 1}, ranked[1])
}

func TestPopularItemsBreaksTiesByItemID(t *testing.T) {
	t.Parallel()

	svc := NewService(stubOrders{orders: []models.Order{
		{Items: []models.OrderItem{{MenuItemID: 9, Quantity: 2}, {MenuItemID: 3, Quantity: 2}}},
	}})

	ranked, err := svc.PopularItems(context.Background())
	require.NoError(t, err)

	require.Len(t, ranked, 2)
	assert.Equal(t, 3, ranked[0].ItemID)
	assert.Equal(t, 9, ranked[1].ItemID)
}

func TestPopularItemsCapsAtTen(t *testing.T) {
	t.Parallel()

	var items []models.OrderItem
	for i := 1; i <= 15; i++ {
		items = append(items, models.OrderItem{MenuItemID: i, Quantity: i})
	}
	svc := NewService(stubOrders{orders: []models.Order{{Items: items}}})

	ranked, err := svc.PopularItems(context.Background())
	require.NoError(t, err)

	require.Len(t, ranked, 10)
	assert.Equal(t, 15, ranked[0].ItemID)
	assert.Equal(t, 6, ranked[9].ItemID)
}

func TestRevenueCountsCompletedOnly(t *testing.T) {
	t.Parallel()

	svc := NewService(stubOrders{orders: []models.Order{
		{Status: models.OrderStatusCompleted, Total: 10},
		{Status: models.OrderStatusCompleted, Total: 20},
		{Status: models.OrderStatusPending, Total: 5},
	}})

	report, err := svc.Revenue(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 30.0, report.TotalRevenue)
	assert.Equal(t, 15.0, report.AvgOrderValue)
	assert.Equal(t, 2, report.TotalOrders)
	assert.Equal(t, 1, report.PendingOrders)
}

func TestRevenueEmptyStore(t *testing.T) {
	t.Parallel()

	svc := NewService(stubOrders{})

	report, err := svc.Revenue(context.Background())
	require.NoError(t, err)

	assert.Zero(t, report.TotalRevenue)
	assert.Zero(t, report.AvgOrderValue)
	assert.Zero(t, report.TotalOrders)
	assert.Zero(t, report.PendingOrders)
}

package analytics

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/gatera900/bite-backend/pkg/models"
)

// OrderSource is the slice of the order store analytics needs.
type OrderSource interface {
	List(ctx context.Context) ([]models.Order, error)
}

// PopularItem is one row of the popularity ranking.
type PopularItem struct {
	ItemID     int `json:"itemId"`
	OrderCount int `json:"orderCount"`
}

// RevenueReport summarizes completed-order revenue. PendingOrders
// counts across the whole store regardless of completion.
type RevenueReport struct {
	TotalRevenue  float64 `json:"totalRevenue"`
	AvgOrderValue float64 `json:"avgOrderValue"`
	TotalOrders   int     `json:"totalOrders"`
	PendingOrders int     `json:"pendingOrders"`
}

const popularItemsLimit = 10

// Service derives reports from the order store on demand; nothing is
// precomputed or cached.
type Service struct {
	orders OrderSource
}

func NewService(orders OrderSource) *Service {
	return &Service{orders: orders}
}

// PopularItems ranks menu items by total quantity ordered, descending,
// ties broken by lower item id. At most ten rows are returned.
func (s *Service) PopularItems(ctx context.Context) ([]PopularItem, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int)
	for _, order := range orders {
		for _, item := range order.Items {
			counts[item.MenuItemID] += item.Quantity
		}
	}

	ranked := make([]PopularItem, 0, len(counts))
	for itemID, count := range counts {
		ranked = append(ranked, PopularItem{ItemID: itemID, OrderCount: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].OrderCount != ranked[j].OrderCount {
			return ranked[i].OrderCount > ranked[j].OrderCount
		}
		return ranked[i].ItemID < ranked[j].ItemID
	})

	if len(ranked) > popularItemsLimit {
		ranked = ranked[:popularItemsLimit]
	}
	return ranked, nil
}

// Revenue sums completed orders with decimal math.
func (s *Service) Revenue(ctx context.Context) (RevenueReport, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return RevenueReport{}, err
	}

	total := decimal.Zero
	completed := 0
	pending := 0
	for _, order := range orders {
		switch order.Status {
		case models.OrderStatusCompleted:
			total = total.Add(decimal.NewFromFloat(order.Total))
			completed++
		case models.OrderStatusPending:
			pending++
		}
	}

	avg := decimal.Zero
	if completed > 0 {
		avg = total.Div(decimal.NewFromInt(int64(completed)))
	}

	return RevenueReport{
		TotalRevenue:  total.Round(2).InexactFloat64(),
		AvgOrderValue: avg.Round(2).InexactFloat64(),
		TotalOrders:   completed,
		PendingOrders: pending,
	}, nil
}

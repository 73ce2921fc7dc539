package cart

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Item is one menu line in a cart.
type Item struct {
	MenuItemID     int     `json:"menuItemId"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Quantity       int     `json:"quantity"`
	Customizations string  `json:"customizations,omitempty"`
}

// Cart is the session view returned by every mutation.
type Cart struct {
	Items []Item  `json:"items"`
	Total float64 `json:"total"`
}

// Manager holds per-session carts in memory. Carts never outlive the
// process; checkout turns them into orders.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string][]Item
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string][]Item)}
}

func (m *Manager) Get(sessionID string) Cart {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return snapshot(m.sessions[sessionID])
}

// Add merges by menu item id, incrementing the existing line by the
// added quantity.
func (m *Manager) Add(sessionID string, item Item) Cart {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	items := m.sessions[sessionID]
	merged := false
	for i := range items {
		if items[i].MenuItemID == item.MenuItemID {
			items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, item)
	}
	m.sessions[sessionID] = items
	return snapshot(items)
}

// UpdateQuantity sets the line to the given quantity; zero or less
// removes the line.
func (m *Manager) UpdateQuantity(sessionID string, menuItemID, quantity int) Cart {
	m.mu.Lock()
	defer m.mu.Unlock()

	items := m.sessions[sessionID]
	if quantity <= 0 {
		items = removeLine(items, menuItemID)
	} else {
		for i := range items {
			if items[i].MenuItemID == menuItemID {
				items[i].Quantity = quantity
				break
			}
		}
	}
	m.sessions[sessionID] = items
	return snapshot(items)
}

func (m *Manager) Remove(sessionID string, menuItemID int) Cart {
	m.mu.Lock()
	defer m.mu.Unlock()

	items := removeLine(m.sessions[sessionID], menuItemID)
	m.sessions[sessionID] = items
	return snapshot(items)
}

func (m *Manager) Clear(sessionID string) Cart {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, sessionID)
	return snapshot(nil)
}

func removeLine(items []Item, menuItemID int) []Item {
	out := items[:0]
	for _, item := range items {
		if item.MenuItemID != menuItemID {
			out = append(out, item)
		}
	}
	return out
}

// snapshot copies the lines and totals them with decimal math so
// prices like 8.95 sum without float drift.
func snapshot(items []Item) Cart {
	copied := make([]Item, len(items))
	copy(copied, items)

	total := decimal.Zero
	for _, item := range copied {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return Cart{
		Items: copied,
		Total: total.Round(2).InexactFloat64(),
	}
}

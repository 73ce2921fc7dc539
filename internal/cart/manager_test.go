package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMergesByMenuItem(t *testing.T) {
	t.Parallel()

	m := NewManager()

	m.Add("s1", Item{MenuItemID: 6, Name: "Farm Burger", Price: 18, Quantity: 1})
	got := m.Add("s1", Item{MenuItemID: 6, Name: "Farm Burger", Price: 18, Quantity: 1})

	require.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.Equal(t, 36.0, got.Total)
}

func TestAddDefaultsQuantityToOne(t *testing.T) {
	t.Parallel()

	m := NewManager()

	got := m.Add("s1", Item{MenuItemID: 3, Name: "Seasonal Vegetable Soup", Price: 9})
	require.Len(t, got.Items, 1)
	assert.Equal(t, 1, got.Items[0].Quantity)
	assert.Equal(t, 9.0, got.Total)
}

func TestTotalAvoidsFloatDrift(t *testing.T) {
	t.Parallel()

	m := NewManager()

	m.Add("s1", Item{MenuItemID: 1, Price: 0.1, Quantity: 1})
	m.Add("s1", Item{MenuItemID: 2, Price: 0.2, Quantity: 1})
	got := m.Get("s1")

	assert.Equal(t, 0.3, got.Total)
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	t.Parallel()

	m := NewManager()

	m.Add("s1", Item{MenuItemID: 2, Name: "Herb Crusted Salmon", Price: 24, Quantity: 2})
	m.Add("s1", Item{MenuItemID: 5, Name: "Fresh Pressed Juice", Price: 6, Quantity: 1})

	got := m.UpdateQuantity("s1", 2, 0)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 5, got.Items[0].MenuItemID)
	assert.Equal(t, 6.0, got.Total)
}

func TestUpdateQuantitySetsAbsoluteValue(t *testing.T) {
	t.Parallel()

	m := NewManager()

	m.Add("s1", Item{MenuItemID: 4, Name: "Farm Apple Pie", Price: 8, Quantity: 1})
	got := m.UpdateQuantity("s1", 4, 3)

	require.Len(t, got.Items, 1)
	assert.Equal(t, 3, got.Items[0].Quantity)
	assert.Equal(t, 24.0, got.Total)
}

func TestRemoveAndClear(t *testing.T) {
	t.Parallel()

	m := NewManager()

	m.Add("s1", Item{MenuItemID: 1, Price: 14, Quantity: 1})
	m.Add("s1", Item{MenuItemID: 2, Price: 24, Quantity: 1})

	got := m.Remove("s1", 1)
	require.Len(t, got.Items, 1)

	got = m.Clear("s1")
	assert.Empty(t, got.Items)
	assert.Zero(t, got.Total)
}

func TestSessionsAreIsolated(t *testing.T) {
	t.Parallel()

	m := NewManager()

	m.Add("a", Item{MenuItemID: 1, Price: 14, Quantity: 1})
	got := m.Get("b")

	assert.Empty(t, got.Items)
}

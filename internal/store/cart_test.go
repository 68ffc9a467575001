package store_test

import (
	"testing"

	"github.com/electricpro/storefront/internal/models"
	"github.com/electricpro/storefront/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bulb() models.CartItem {
	return models.CartItem{ID: "led-1", Name: "Smart LED Bulb Set", Price: "KSh 8,999", Category: "LED Lights"}
}

func switchItem() models.CartItem {
	return models.CartItem{ID: "sw-2", Name: "Smart WiFi Switch", Price: "KSh 4,500", Category: "Switches"}
}

func TestCartStore_AddItem(t *testing.T) {
	t.Run("Insert New Item", func(t *testing.T) {
		// Arrange
		s := store.NewCartStore()

		// Act
		snap := s.AddItem(bulb(), 2)

		// Assert
		require.Len(t, snap.Items, 1)
		assert.Equal(t, "led-1", snap.Items[0].ID)
		assert.Equal(t, 2, snap.Items[0].Quantity)
		assert.Equal(t, 2, snap.TotalItems)
		assert.InDelta(t, 17998, snap.TotalPrice, 1e-9)
	})

	t.Run("Re-Adding Same ID Merges Instead Of Duplicating", func(t *testing.T) {
		// Arrange
		s := store.NewCartStore()
		s.AddItem(bulb(), 1)

		// Act
		snap := s.AddItem(bulb(), 3)

		// Assert
		require.Len(t, snap.Items, 1)
		assert.Equal(t, 4, snap.Items[0].Quantity)
		assert.Equal(t, 4, snap.TotalItems)
	})

	t.Run("Quantity Below One Defaults To One", func(t *testing.T) {
		s := store.NewCartStore()

		snap := s.AddItem(bulb(), 0)

		require.Len(t, snap.Items, 1)
		assert.Equal(t, 1, snap.Items[0].Quantity)
	})

	t.Run("Insertion Order Preserved", func(t *testing.T) {
		s := store.NewCartStore()
		s.AddItem(bulb(), 1)
		s.AddItem(switchItem(), 1)

		snap := s.Snapshot()

		require.Len(t, snap.Items, 2)
		assert.Equal(t, "led-1", snap.Items[0].ID)
		assert.Equal(t, "sw-2", snap.Items[1].ID)
	})
}

func TestCartStore_RemoveItem(t *testing.T) {
	t.Run("Add Then Remove Restores Prior Snapshot", func(t *testing.T) {
		// Arrange
		s := store.NewCartStore()
		s.AddItem(bulb(), 2)
		before := s.Snapshot()

		// Act
		s.AddItem(switchItem(), 1)
		after := s.RemoveItem("sw-2")

		// Assert
		assert.Equal(t, before, after)
	})

	t.Run("Removing Absent ID Is A No-Op", func(t *testing.T) {
		s := store.NewCartStore()
		s.AddItem(bulb(), 1)

		notified := false
		s.Subscribe(func(models.CartSnapshot) { notified = true })

		snap := s.RemoveItem("missing")

		assert.Len(t, snap.Items, 1)
		assert.False(t, notified, "no-op removal must not notify observers")
	})

	t.Run("Index Stays Consistent After Middle Removal", func(t *testing.T) {
		s := store.NewCartStore()
		s.AddItem(bulb(), 1)
		s.AddItem(switchItem(), 1)
		s.AddItem(models.CartItem{ID: "cb-1", Name: "Professional Circuit Breaker", Price: "KSh 14,999"}, 1)

		s.RemoveItem("sw-2")
		snap := s.UpdateQuantity("cb-1", 5)

		require.Len(t, snap.Items, 2)
		assert.Equal(t, "cb-1", snap.Items[1].ID)
		assert.Equal(t, 5, snap.Items[1].Quantity)
	})
}

func TestCartStore_UpdateQuantity(t *testing.T) {
	t.Run("Zero Quantity Removes The Item", func(t *testing.T) {
		// Arrange
		s := store.NewCartStore()
		s.AddItem(bulb(), 2)

		// Act
		byUpdate := s.UpdateQuantity("led-1", 0)

		s2 := store.NewCartStore()
		s2.AddItem(bulb(), 2)
		byRemove := s2.RemoveItem("led-1")

		// Assert
		assert.Equal(t, byRemove, byUpdate)
		assert.Empty(t, byUpdate.Items)
		assert.Equal(t, 0, byUpdate.TotalItems)
	})

	t.Run("Negative Quantity Clamped To Zero", func(t *testing.T) {
		s := store.NewCartStore()
		s.AddItem(bulb(), 2)

		snap := s.UpdateQuantity("led-1", -3)

		assert.Empty(t, snap.Items)
	})

	t.Run("Absent ID Is A No-Op", func(t *testing.T) {
		s := store.NewCartStore()
		s.AddItem(bulb(), 2)

		snap := s.UpdateQuantity("missing", 7)

		require.Len(t, snap.Items, 1)
		assert.Equal(t, 2, snap.Items[0].Quantity)
	})

	t.Run("Quantity Set Exactly", func(t *testing.T) {
		s := store.NewCartStore()
		s.AddItem(bulb(), 2)

		snap := s.UpdateQuantity("led-1", 9)

		assert.Equal(t, 9, snap.Items[0].Quantity)
		assert.Equal(t, 9, snap.TotalItems)
	})
}

func TestCartStore_Aggregates(t *testing.T) {
	t.Run("TotalItems Equals Sum Of Quantities And IDs Stay Unique", func(t *testing.T) {
		// Arrange
		s := store.NewCartStore()

		// Act: a mixed sequence of mutations
		s.AddItem(bulb(), 2)
		s.AddItem(switchItem(), 1)
		s.AddItem(bulb(), 1)
		s.UpdateQuantity("sw-2", 4)
		s.RemoveItem("missing")

		snap := s.Snapshot()

		// Assert
		sum := 0
		seen := map[string]bool{}
		for _, item := range snap.Items {
			sum += item.Quantity
			assert.False(t, seen[item.ID], "duplicate id %s", item.ID)
			seen[item.ID] = true
			assert.GreaterOrEqual(t, item.Quantity, 1)
		}
		assert.Equal(t, sum, snap.TotalItems)
	})

	t.Run("TotalPrice Derived From Display Strings", func(t *testing.T) {
		s := store.NewCartStore()
		s.AddItem(models.CartItem{ID: "a", Name: "A", Price: "KSh 1,000"}, 2)
		s.AddItem(models.CartItem{ID: "b", Name: "B", Price: "KSh 500"}, 1)

		snap := s.Snapshot()

		assert.InDelta(t, 2500, snap.TotalPrice, 1e-9)
	})

	t.Run("Display String Preserved On Item", func(t *testing.T) {
		s := store.NewCartStore()

		snap := s.AddItem(bulb(), 1)

		assert.Equal(t, "KSh 8,999", snap.Items[0].Price)
	})
}

func TestCartStore_Clear(t *testing.T) {
	s := store.NewCartStore()
	s.AddItem(bulb(), 2)
	s.AddItem(switchItem(), 1)

	snap := s.Clear()

	assert.Empty(t, snap.Items)
	assert.Equal(t, 0, snap.TotalItems)
	assert.InDelta(t, 0, snap.TotalPrice, 1e-9)

	// Re-adding after clear starts from a clean slate.
	snap = s.AddItem(bulb(), 1)
	assert.Equal(t, 1, snap.TotalItems)
}

func TestCartStore_Observers(t *testing.T) {
	t.Run("Notified Synchronously With The New Snapshot", func(t *testing.T) {
		// Arrange
		s := store.NewCartStore()

		var got []models.CartSnapshot
		s.Subscribe(func(snap models.CartSnapshot) { got = append(got, snap) })

		// Act
		s.AddItem(bulb(), 1)
		s.UpdateQuantity("led-1", 3)
		s.Clear()

		// Assert
		require.Len(t, got, 3)
		assert.Equal(t, 1, got[0].TotalItems)
		assert.Equal(t, 3, got[1].TotalItems)
		assert.Equal(t, 0, got[2].TotalItems)
	})

	t.Run("Unsubscribe Stops Notifications", func(t *testing.T) {
		s := store.NewCartStore()

		calls := 0
		unsubscribe := s.Subscribe(func(models.CartSnapshot) { calls++ })

		s.AddItem(bulb(), 1)
		unsubscribe()
		s.AddItem(switchItem(), 1)

		assert.Equal(t, 1, calls)
	})

	t.Run("Clearing An Empty Cart Does Not Notify", func(t *testing.T) {
		s := store.NewCartStore()

		calls := 0
		s.Subscribe(func(models.CartSnapshot) { calls++ })

		s.Clear()

		assert.Equal(t, 0, calls)
	})
}

func TestCartStore_SnapshotIsolation(t *testing.T) {
	s := store.NewCartStore()
	s.AddItem(bulb(), 2)

	snap := s.Snapshot()
	snap.Items[0].Quantity = 99

	assert.Equal(t, 2, s.Snapshot().Items[0].Quantity, "mutating a snapshot must not leak into the store")
}

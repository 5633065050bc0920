package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/gateway"
)

func testCatalog() *gateway.UnitSeats {
	return &gateway.UnitSeats{
		UnitID: "bus-1",
		Kind:   "BUS",
		Seats: []gateway.Seat{
			{ID: "s-a1", SeatNumber: "A1", Price: 500},
			{ID: "s-a2", SeatNumber: "A2", Price: 500},
			{ID: "s-b1", SeatNumber: "B1", Price: 700},
			{ID: "s-b2", SeatNumber: "B2", Price: 700, Reserved: true},
		},
	}
}

func TestStateToggle(t *testing.T) {
	t.Run("selects an available seat", func(t *testing.T) {
		state := NewState("bus-1")

		selected := state.Toggle(testCatalog(), "A1")

		assert.True(t, selected)
		assert.True(t, state.Contains("A1"))
	})

	t.Run("second toggle deselects", func(t *testing.T) {
		state := NewState("bus-1")
		catalog := testCatalog()

		state.Toggle(catalog, "A1")
		selected := state.Toggle(catalog, "A1")

		assert.False(t, selected)
		assert.False(t, state.Contains("A1"))
		assert.Empty(t, state.Seats)
	})

	t.Run("reserved seat is a no-op", func(t *testing.T) {
		state := NewState("bus-1")

		selected := state.Toggle(testCatalog(), "B2")

		assert.False(t, selected)
		assert.Empty(t, state.Seats)
	})

	t.Run("unknown seat is a no-op", func(t *testing.T) {
		state := NewState("bus-1")

		selected := state.Toggle(testCatalog(), "Z9")

		assert.False(t, selected)
		assert.Empty(t, state.Seats)
	})

	t.Run("preserves selection order", func(t *testing.T) {
		state := NewState("bus-1")
		catalog := testCatalog()

		state.Toggle(catalog, "B1")
		state.Toggle(catalog, "A1")
		state.Toggle(catalog, "A2")

		assert.Equal(t, []string{"B1", "A1", "A2"}, state.Seats)
	})

	t.Run("removing from the middle keeps the rest in order", func(t *testing.T) {
		state := NewState("bus-1")
		catalog := testCatalog()

		state.Toggle(catalog, "B1")
		state.Toggle(catalog, "A1")
		state.Toggle(catalog, "A2")
		state.Toggle(catalog, "A1")

		assert.Equal(t, []string{"B1", "A2"}, state.Seats)
	})
}

func TestStateTotal(t *testing.T) {
	t.Run("sums catalog prices", func(t *testing.T) {
		state := NewState("bus-1")
		catalog := testCatalog()

		state.Toggle(catalog, "A1")
		state.Toggle(catalog, "B1")

		assert.Equal(t, 1200.0, state.Total(catalog))
	})

	t.Run("empty selection totals zero", func(t *testing.T) {
		state := NewState("bus-1")

		assert.Equal(t, 0.0, state.Total(testCatalog()))
	})

	t.Run("seat missing from catalog contributes zero", func(t *testing.T) {
		state := NewState("bus-1")
		state.Seats = []string{"A1", "GHOST"}

		assert.Equal(t, 500.0, state.Total(testCatalog()))
	})
}

func TestStateResetIfUnitChanged(t *testing.T) {
	t.Run("same unit keeps the selection", func(t *testing.T) {
		state := NewState("bus-1")
		state.Toggle(testCatalog(), "A1")

		reset := state.ResetIfUnitChanged("bus-1")

		assert.False(t, reset)
		assert.Equal(t, []string{"A1"}, state.Seats)
	})

	t.Run("different unit empties the selection", func(t *testing.T) {
		state := NewState("bus-1")
		state.Toggle(testCatalog(), "A1")

		reset := state.ResetIfUnitChanged("bus-2")

		assert.True(t, reset)
		assert.Empty(t, state.Seats)
		assert.Equal(t, "bus-2", state.UnitID)
	})
}

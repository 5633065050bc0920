package selection

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/catalog"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/gateway"
)

func newTestService(t *testing.T, units map[string]*gateway.UnitSeats) Service {
	t.Helper()
	catalogService := catalog.NewService(&gateway.CatalogMock{Units: units})
	return NewService(NewMemoryRepository(), catalogService)
}

func twoUnits() map[string]*gateway.UnitSeats {
	return map[string]*gateway.UnitSeats{
		"bus-1": {
			UnitID: "bus-1",
			Seats: []gateway.Seat{
				{ID: "s-a1", SeatNumber: "A1", Price: 500},
				{ID: "s-b1", SeatNumber: "B1", Price: 700},
			},
		},
		"bus-2": {
			UnitID: "bus-2",
			Seats: []gateway.Seat{
				{ID: "s2-a1", SeatNumber: "A1", Price: 300},
			},
		},
	}
}

func TestServiceToggle(t *testing.T) {
	ctx := context.Background()

	t.Run("accumulates seats and total", func(t *testing.T) {
		svc := newTestService(t, twoUnits())

		_, err := svc.Toggle(ctx, "sess", "bus-1", "A1")
		require.NoError(t, err)

		summary, err := svc.Toggle(ctx, "sess", "bus-1", "B1")
		require.NoError(t, err)

		assert.Equal(t, []string{"A1", "B1"}, summary.Seats)
		assert.Equal(t, 1200.0, summary.TotalCost)
	})

	t.Run("survives across calls through the repository", func(t *testing.T) {
		svc := newTestService(t, twoUnits())

		_, err := svc.Toggle(ctx, "sess", "bus-1", "A1")
		require.NoError(t, err)

		summary, err := svc.Get(ctx, "sess", "bus-1")
		require.NoError(t, err)
		assert.Equal(t, []string{"A1"}, summary.Seats)
	})

	t.Run("unit change resets before toggling", func(t *testing.T) {
		svc := newTestService(t, twoUnits())

		_, err := svc.Toggle(ctx, "sess", "bus-1", "A1")
		require.NoError(t, err)
		_, err = svc.Toggle(ctx, "sess", "bus-1", "B1")
		require.NoError(t, err)

		summary, err := svc.Toggle(ctx, "sess", "bus-2", "A1")
		require.NoError(t, err)

		assert.Equal(t, "bus-2", summary.UnitID)
		assert.Equal(t, []string{"A1"}, summary.Seats)
		assert.Equal(t, 300.0, summary.TotalCost)
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		svc := newTestService(t, twoUnits())

		_, err := svc.Toggle(ctx, "alice", "bus-1", "A1")
		require.NoError(t, err)

		summary, err := svc.Get(ctx, "bob", "bus-1")
		require.NoError(t, err)
		assert.Empty(t, summary.Seats)
	})

	t.Run("unknown unit surfaces the catalog error", func(t *testing.T) {
		svc := newTestService(t, twoUnits())

		_, err := svc.Toggle(ctx, "sess", "bus-404", "A1")
		assert.Error(t, err)
	})
}

func TestServiceGet(t *testing.T) {
	ctx := context.Background()

	t.Run("empty session yields empty summary", func(t *testing.T) {
		svc := newTestService(t, twoUnits())

		summary, err := svc.Get(ctx, "sess", "bus-1")
		require.NoError(t, err)

		assert.Empty(t, summary.Seats)
		assert.Equal(t, 0.0, summary.TotalCost)
	})

	t.Run("viewing another unit resets the stored state", func(t *testing.T) {
		svc := newTestService(t, twoUnits())

		_, err := svc.Toggle(ctx, "sess", "bus-1", "A1")
		require.NoError(t, err)

		summary, err := svc.Get(ctx, "sess", "bus-2")
		require.NoError(t, err)
		assert.Empty(t, summary.Seats)

		// The reset is persisted, not just a view
		state, err := svc.Current(ctx, "sess")
		require.NoError(t, err)
		assert.Equal(t, "bus-2", state.UnitID)
		assert.Empty(t, state.Seats)
	})
}

func TestServiceClear(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, twoUnits())

	_, err := svc.Toggle(ctx, "sess", "bus-1", "A1")
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, "sess"))

	state, err := svc.Current(ctx, "sess")
	require.NoError(t, err)
	assert.Empty(t, state.Seats)
	assert.Equal(t, "", state.UnitID)
}

package relay

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/gateway"
)

func TestMemoryStoreHandoff(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	t.Run("missing hand-off reports not found", func(t *testing.T) {
		_, err := store.LoadHandoff(ctx, "nobody")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("round trip", func(t *testing.T) {
		h := Handoff{
			UnitID:        "bus-1",
			BookingID:     "BK-1",
			SeatNumbers:   []string{"A1", "A2"},
			Email:         "x@example.com",
			TransactionID: "1234567890",
			TotalCost:     1200,
			Reservations: []gateway.ReserveSeatResponse{
				{ReservationID: "R-1", SeatID: "s-a1", BookingID: "BK-1"},
			},
		}
		require.NoError(t, store.SaveHandoff(ctx, "sess", h))

		loaded, err := store.LoadHandoff(ctx, "sess")
		require.NoError(t, err)
		assert.Equal(t, "BK-1", loaded.BookingID)
		assert.Equal(t, []string{"A1", "A2"}, loaded.SeatNumbers)
		assert.False(t, loaded.CreatedAt.IsZero(), "save stamps the record")
	})

	t.Run("overwrite replaces the previous entry", func(t *testing.T) {
		require.NoError(t, store.SaveHandoff(ctx, "sess", Handoff{BookingID: "BK-2"}))

		loaded, err := store.LoadHandoff(ctx, "sess")
		require.NoError(t, err)
		assert.Equal(t, "BK-2", loaded.BookingID)
	})

	t.Run("clear removes the entry", func(t *testing.T) {
		require.NoError(t, store.ClearHandoff(ctx, "sess"))

		_, err := store.LoadHandoff(ctx, "sess")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMemoryStoreUnitSelection(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.LoadUnitSelection(ctx, "sess")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.SaveUnitSelection(ctx, "sess", "bus-1"))

	unitID, err := store.LoadUnitSelection(ctx, "sess")
	require.NoError(t, err)
	assert.Equal(t, "bus-1", unitID)

	// A new unit view overwrites the previous one
	require.NoError(t, store.SaveUnitSelection(ctx, "sess", "bus-2"))
	unitID, err = store.LoadUnitSelection(ctx, "sess")
	require.NoError(t, err)
	assert.Equal(t, "bus-2", unitID)
}

package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/gateway"
)

func demoUnits() map[string]*gateway.UnitSeats {
	return map[string]*gateway.UnitSeats{
		"bus-1": {
			UnitID:    "bus-1",
			Kind:      "BUS",
			BasePrice: 500,
			Seats: []gateway.Seat{
				{ID: "s-a1", SeatNumber: "A1", Price: 500},
				{ID: "s-b2", SeatNumber: "B2", Price: 700, Reserved: true},
			},
		},
	}
}

func TestGetUnitSeats(t *testing.T) {
	ctx := context.Background()

	t.Run("fetches from the backend", func(t *testing.T) {
		mock := &gateway.CatalogMock{Units: demoUnits()}
		svc := NewService(mock)

		unit, err := svc.GetUnitSeats(ctx, "bus-1")
		require.NoError(t, err)
		assert.Equal(t, "bus-1", unit.UnitID)
		assert.Len(t, unit.Seats, 2)
	})

	t.Run("empty unit id is rejected without a backend call", func(t *testing.T) {
		mock := &gateway.CatalogMock{Units: demoUnits()}
		svc := NewService(mock)

		_, err := svc.GetUnitSeats(ctx, "")
		assert.Error(t, err)
		assert.Equal(t, 0, mock.Calls)
	})

	t.Run("backend failure propagates", func(t *testing.T) {
		mock := &gateway.CatalogMock{Err: errors.New("connection refused")}
		svc := NewService(mock)

		_, err := svc.GetUnitSeats(ctx, "bus-1")
		assert.Error(t, err)
	})

	t.Run("without a cache every call hits the backend", func(t *testing.T) {
		mock := &gateway.CatalogMock{Units: demoUnits()}
		svc := NewService(mock)

		_, err := svc.GetUnitSeats(ctx, "bus-1")
		require.NoError(t, err)
		_, err = svc.GetUnitSeats(ctx, "bus-1")
		require.NoError(t, err)

		assert.Equal(t, 2, mock.Calls)
	})
}

func TestLookupSeat(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&gateway.CatalogMock{Units: demoUnits()})

	t.Run("resolves a known seat", func(t *testing.T) {
		seat, err := svc.LookupSeat(ctx, "bus-1", "B2")
		require.NoError(t, err)
		assert.Equal(t, "s-b2", seat.ID)
		assert.True(t, seat.Reserved)
	})

	t.Run("unknown seat errors", func(t *testing.T) {
		_, err := svc.LookupSeat(ctx, "bus-1", "Z9")
		assert.Error(t, err)
	})
}

func TestSeatGridResponse(t *testing.T) {
	unit := demoUnits()["bus-1"]

	grid := newSeatGridResponse(unit)
	assert.Equal(t, "bus-1", grid.UnitID)
	require.Len(t, grid.Seats, 2)
	assert.Equal(t, "A1", grid.Seats[0].SeatNumber)
	assert.True(t, grid.Seats[1].Reserved)

	empty := EmptyGrid("bus-404")
	assert.Equal(t, "bus-404", empty.UnitID)
	assert.NotNil(t, empty.Seats)
	assert.Empty(t, empty.Seats)
}

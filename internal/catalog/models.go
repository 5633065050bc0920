package catalog

import (
	"time"

	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/gateway"
)

// SeatGridResponse is the seat map rendered by the SPA for one transport
// unit. A failed load still produces a grid, just an empty one.
type SeatGridResponse struct {
	UnitID    string     `json:"unit_id"`
	Kind      string     `json:"kind"`
	Departure time.Time  `json:"departure"`
	Arrival   time.Time  `json:"arrival"`
	BasePrice float64    `json:"base_price"`
	Seats     []SeatView `json:"seats"`
}

// SeatView is one seat cell of the grid.
type SeatView struct {
	ID         string  `json:"id"`
	SeatNumber string  `json:"seat_number"`
	Price      float64 `json:"price"`
	Reserved   bool    `json:"reserved"`
}

func newSeatGridResponse(unit *gateway.UnitSeats) *SeatGridResponse {
	grid := &SeatGridResponse{
		UnitID:    unit.UnitID,
		Kind:      unit.Kind,
		Departure: unit.Departure,
		Arrival:   unit.Arrival,
		BasePrice: unit.BasePrice,
		Seats:     make([]SeatView, 0, len(unit.Seats)),
	}

	for _, seat := range unit.Seats {
		grid.Seats = append(grid.Seats, SeatView{
			ID:         seat.ID,
			SeatNumber: seat.SeatNumber,
			Price:      seat.Price,
			Reserved:   seat.Reserved,
		})
	}

	return grid
}

// EmptyGrid is what the view falls back to when the catalog load fails.
func EmptyGrid(unitID string) *SeatGridResponse {
	return &SeatGridResponse{
		UnitID: unitID,
		Seats:  []SeatView{},
	}
}

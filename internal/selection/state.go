package selection

import (
	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/gateway"
)

// State is the ordered set of seat numbers the user has chosen for the
// currently displayed transport unit. It never contains a seat that was
// reserved at selection time.
type State struct {
	UnitID string   `json:"unit_id"`
	Seats  []string `json:"seats"`
}

func NewState(unitID string) *State {
	return &State{UnitID: unitID, Seats: []string{}}
}

// Contains reports whether seatNumber is currently selected.
func (s *State) Contains(seatNumber string) bool {
	for _, n := range s.Seats {
		if n == seatNumber {
			return true
		}
	}
	return false
}

// Toggle flips a seat's membership against the given catalog snapshot.
// A selected seat is removed; an unselected one is added unless it is
// reserved or unknown to the catalog, in which case the click is a no-op.
// Returns whether the seat ended up selected.
func (s *State) Toggle(catalog *gateway.UnitSeats, seatNumber string) bool {
	for i, n := range s.Seats {
		if n == seatNumber {
			s.Seats = append(s.Seats[:i], s.Seats[i+1:]...)
			return false
		}
	}

	for _, seat := range catalog.Seats {
		if seat.SeatNumber == seatNumber {
			if seat.Reserved {
				return false
			}
			s.Seats = append(s.Seats, seatNumber)
			return true
		}
	}

	return false
}

// Total derives the current cost: the sum of catalog prices for every
// selected seat. Seats missing from the catalog contribute 0, which
// silently masks backend/catalog mismatches; kept as current behavior.
func (s *State) Total(catalog *gateway.UnitSeats) float64 {
	prices := make(map[string]float64, len(catalog.Seats))
	for _, seat := range catalog.Seats {
		prices[seat.SeatNumber] = seat.Price
	}

	var total float64
	for _, n := range s.Seats {
		total += prices[n]
	}
	return total
}

// ResetIfUnitChanged empties the selection whenever the active transport
// unit's identity changes. Returns whether a reset happened.
func (s *State) ResetIfUnitChanged(unitID string) bool {
	if s.UnitID == unitID {
		return false
	}
	s.UnitID = unitID
	s.Seats = []string{}
	return true
}

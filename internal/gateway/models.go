package gateway

import "time"

// UnitSeats is the backend's seat inventory snapshot for one transport
// unit. The client treats it as read-only for the lifetime of a page view.
type UnitSeats struct {
	UnitID    string    `json:"unit_id"`
	Kind      string    `json:"kind"` // BUS or FLIGHT
	Departure time.Time `json:"departure"`
	Arrival   time.Time `json:"arrival"`
	BasePrice float64   `json:"base_price"`
	Seats     []Seat    `json:"seats"`
}

// Seat is one bookable seat. Reserved seats are immutable from the
// client's perspective.
type Seat struct {
	ID         string  `json:"id"`
	SeatNumber string  `json:"seat_number"`
	Price      float64 `json:"price"`
	Reserved   bool    `json:"reserved"`
}

// CreateBookingRequest is the booking draft the backend mints an id for.
type CreateBookingRequest struct {
	PassengerName string `json:"passenger_name"`
	Email         string `json:"email"`
}

// CreateBookingResponse carries the minted booking identifier.
type CreateBookingResponse struct {
	BookingID string `json:"booking_id"`
}

// ReserveSeatRequest reserves one seat for one booking.
type ReserveSeatRequest struct {
	SeatID    string `json:"seat_id"`
	BookingID string `json:"booking_id"`
}

// ReserveSeatResponse is the backend's reservation record echo, relayed
// to the confirmation page verbatim.
type ReserveSeatResponse struct {
	ReservationID string `json:"reservation_id"`
	SeatID        string `json:"seat_id"`
	SeatNumber    string `json:"seat_number"`
	BookingID     string `json:"booking_id"`
	Status        string `json:"status"`
}

// SignatureRequest asks the backend to sign a payment, keyed by the
// total cost and the client-generated transaction identifier.
type SignatureRequest struct {
	TotalAmount   float64 `json:"total_amount"`
	TransactionID string  `json:"transaction_id"`
}

// SignatureResponse carries everything the gateway form POST needs. The
// gateway URL and field contract are backend-supplied at runtime.
type SignatureResponse struct {
	Signature        string `json:"signature"`
	SignedFieldNames string `json:"signed_field_names"`
	GatewayURL       string `json:"gateway_url"`
	ProductCode      string `json:"product_code"`
}

// DashboardStats is the aggregate snapshot the admin dashboard polls.
type DashboardStats struct {
	TotalBookings   int64     `json:"total_bookings"`
	TotalRevenue    float64   `json:"total_revenue"`
	SeatsReserved   int64     `json:"seats_reserved"`
	ActiveUnits     int64     `json:"active_units"`
	GeneratedAt     time.Time `json:"generated_at"`
	BookingsByKind  map[string]int64 `json:"bookings_by_kind,omitempty"`
}

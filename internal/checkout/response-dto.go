package checkout

import (
	"time"

	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/gateway"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/relay"
)

// GatewayForm describes the payment form the client must POST to the
// payment provider. AutoSubmitHTML is a self-submitting page for
// clients that prefer a plain navigation over building the form.
type GatewayForm struct {
	URL            string            `json:"url"`
	Method         string            `json:"method"`
	Fields         map[string]string `json:"fields"`
	AutoSubmitHTML string            `json:"auto_submit_html"`
}

// Response is returned after a checkout run reaches the gateway
// handoff. The client is expected to submit Gateway immediately.
type Response struct {
	State         State                          `json:"state"`
	UnitID        string                         `json:"unit_id"`
	BookingID     string                         `json:"booking_id"`
	TransactionID string                         `json:"transaction_id"`
	SeatNumbers   []string                       `json:"seat_numbers"`
	TotalCost     float64                        `json:"total_cost"`
	Reservations  []gateway.ReserveSeatResponse  `json:"reservations"`
	Gateway       *GatewayForm                   `json:"gateway"`
}

// ConfirmationResponse is the post-payment summary rebuilt from the
// relay store.
type ConfirmationResponse struct {
	UnitID        string    `json:"unit_id"`
	BookingID     string    `json:"booking_id"`
	TransactionID string    `json:"transaction_id"`
	SeatNumbers   []string  `json:"seat_numbers"`
	Email         string    `json:"email"`
	TotalCost     float64   `json:"total_cost"`
	CreatedAt     time.Time `json:"created_at"`
}

func newConfirmationResponse(h *relay.Handoff) *ConfirmationResponse {
	return &ConfirmationResponse{
		UnitID:        h.UnitID,
		BookingID:     h.BookingID,
		TransactionID: h.TransactionID,
		SeatNumbers:   h.SeatNumbers,
		Email:         h.Email,
		TotalCost:     h.TotalCost,
		CreatedAt:     h.CreatedAt,
	}
}

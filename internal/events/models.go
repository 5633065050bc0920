package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventType labels a checkout lifecycle event.
type EventType string

const (
	EventCheckoutStarted   EventType = "checkout.started"
	EventBookingCreated    EventType = "checkout.booking_created"
	EventReservationFailed EventType = "checkout.reservation_failed"
	EventGatewayHandoff    EventType = "checkout.gateway_handoff"
	EventCheckoutFailed    EventType = "checkout.failed"
)

// CheckoutEvent is the audit record published for each checkout
// milestone. Consumers are external; this service never reads them back.
type CheckoutEvent struct {
	ID            uuid.UUID `json:"id"`
	Type          EventType `json:"type"`
	SessionID     string    `json:"session_id"`
	UnitID        string    `json:"unit_id,omitempty"`
	BookingID     string    `json:"booking_id,omitempty"`
	TransactionID string    `json:"transaction_id,omitempty"`
	SeatNumbers   []string  `json:"seat_numbers,omitempty"`
	TotalCost     float64   `json:"total_cost,omitempty"`
	Reason        string    `json:"reason,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// NewCheckoutEvent stamps a fresh event with an id and timestamp.
func NewCheckoutEvent(eventType EventType, sessionID string) *CheckoutEvent {
	return &CheckoutEvent{
		ID:         uuid.New(),
		Type:       eventType,
		SessionID:  sessionID,
		OccurredAt: time.Now(),
	}
}

func (e *CheckoutEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// PartitionKey routes every event of one session to the same partition
// so consumers see a session's milestones in order.
func (e *CheckoutEvent) PartitionKey() string {
	if e.SessionID != "" {
		return e.SessionID
	}
	return e.ID.String()
}

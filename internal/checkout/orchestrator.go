package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/catalog"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/events"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/gateway"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/relay"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/selection"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/shared/config"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/pkg/httpclient"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/pkg/logger"
)

// Orchestrator drives a checkout run through its steps in order:
// auth check, validation, booking creation, per-seat reservation,
// payment signature, gateway handoff. Each run is single-shot; a
// failure at any step stops the run and nothing that already succeeded
// is rolled back.
type Orchestrator interface {
	Run(ctx context.Context, req Request) (*Response, *Error)

	// Confirmation rebuilds the post-payment summary from the relay
	// store and clears it so a refresh cannot replay it.
	Confirmation(ctx context.Context, sessionID string) (*ConfirmationResponse, error)

	// SetEventProducer injects the checkout event producer dependency.
	SetEventProducer(producer events.Producer)
}

type orchestrator struct {
	catalogService   catalog.Service
	selectionService selection.Service
	booking          gateway.BookingClient
	reservation      gateway.ReservationClient
	payment          gateway.PaymentClient
	relayStore       relay.Store
	paymentCfg       config.PaymentConfig
	producer         events.Producer
	log              *logger.Logger
}

func NewOrchestrator(
	catalogService catalog.Service,
	selectionService selection.Service,
	clients *gateway.Clients,
	relayStore relay.Store,
	paymentCfg config.PaymentConfig,
	log *logger.Logger,
) Orchestrator {
	return &orchestrator{
		catalogService:   catalogService,
		selectionService: selectionService,
		booking:          clients.Booking,
		reservation:      clients.Reservation,
		payment:          clients.Payment,
		relayStore:       relayStore,
		paymentCfg:       paymentCfg,
		producer:         events.NoopProducer{},
		log:              log,
	}
}

// SetEventProducer enables best-effort checkout event publishing.
func (o *orchestrator) SetEventProducer(producer events.Producer) {
	if producer != nil {
		o.producer = producer
	}
}

func (o *orchestrator) Run(ctx context.Context, req Request) (*Response, *Error) {
	o.publish(ctx, events.EventCheckoutStarted, req, "", "", nil, 0)

	// Step 1: auth check. Presence only; the backend verifies the token
	// on every call that needs it.
	if req.Token == "" {
		o.log.LogAuthFailure(ctx, "checkout submitted without token", req.SessionID)
		return nil, &Error{
			State:    StateAuthCheck,
			Message:  "Please log in to complete your booking.",
			Redirect: "/login",
			From:     req.From,
		}
	}

	// Step 2: validate the form against the current selection.
	state, err := o.selectionService.Current(ctx, req.SessionID)
	if err != nil {
		return nil, newError(StateValidating, "Could not load your seat selection. Please try again.", err)
	}
	seats := state.Seats
	if state.UnitID != req.UnitID {
		// A unit switch resets the selection; anything left over belongs
		// to the previous unit.
		seats = nil
	}
	if verr := validateRequest(req, seats); verr != nil {
		return nil, verr
	}
	o.log.LogCheckoutStarted(ctx, req.SessionID, req.UnitID, len(seats))

	// Step 3: price the selection against the current snapshot.
	unit, err := o.catalogService.GetUnitSeats(ctx, req.UnitID)
	if err != nil {
		return nil, newError(StateValidating, "Could not load seat details. Please try again.", err)
	}
	total := state.Total(unit)

	// Step 4: create the booking shell.
	bookingResp, err := o.booking.CreateBooking(ctx, req.Token, gateway.CreateBookingRequest{
		PassengerName: req.PassengerName,
		Email:         req.Email,
	})
	if err != nil {
		o.publishFailure(ctx, req, "", backendMessage(err, "booking creation failed"))
		return nil, newError(StateCreatingBooking, backendMessage(err, "Could not create your booking. Please try again."), err)
	}
	bookingID := bookingResp.BookingID
	o.log.LogBookingCreated(ctx, bookingID, req.SessionID)
	o.publish(ctx, events.EventBookingCreated, req, bookingID, "", seats, total)

	// Step 5: reserve each seat in turn. Reservation writes are never
	// retried and the first failure ends the run; earlier reservations
	// stay reserved under the booking.
	reservations := make([]gateway.ReserveSeatResponse, 0, len(seats))
	for _, seatNumber := range seats {
		seatID := resolveSeatID(unit, seatNumber)
		resv, err := o.reservation.ReserveSeat(ctx, req.Token, gateway.ReserveSeatRequest{
			SeatID:    seatID,
			BookingID: bookingID,
		})
		if err != nil {
			o.log.LogSeatReservationFailed(ctx, seatNumber, bookingID, err)
			msg := reservationFailureMessage(seatNumber, err)
			o.publishFailure(ctx, req, bookingID, msg)
			return nil, &Error{
				State:      StateReservingSeats,
				SeatNumber: seatNumber,
				Message:    msg,
				Err:        err,
			}
		}
		if resv.SeatNumber == "" {
			resv.SeatNumber = seatNumber
		}
		reservations = append(reservations, *resv)

		// Occupancy confirmation is best effort. The reservation above
		// already holds the seat.
		if err := o.reservation.ConfirmOccupancy(ctx, req.Token, seatID, bookingID); err != nil {
			o.log.LogOccupancyConfirmFailed(ctx, seatNumber, bookingID, err)
		}
	}

	// Step 6: request the payment signature for the grand total.
	txnID, err := generateTransactionID()
	if err != nil {
		return nil, newError(StateRequestingSignature, "Could not prepare your payment. Please try again.", err)
	}
	sig, err := o.payment.RequestSignature(ctx, req.Token, gateway.SignatureRequest{
		TotalAmount:   total,
		TransactionID: txnID,
	})
	if err != nil {
		o.publishFailure(ctx, req, bookingID, backendMessage(err, "payment signature failed"))
		return nil, newError(StateRequestingSignature, backendMessage(err, "Could not prepare your payment. Please try again."), err)
	}

	// Step 7: build the gateway POST and stash the hand-off record for
	// the confirmation page.
	form, err := buildGatewayForm(sig, txnID, total, o.paymentCfg)
	if err != nil {
		return nil, newError(StateRedirectingToGateway, "Could not prepare the payment form. Please try again.", err)
	}

	handoff := relay.Handoff{
		UnitID:        req.UnitID,
		BookingID:     bookingID,
		Reservations:  reservations,
		SeatNumbers:   seats,
		Email:         req.Email,
		TransactionID: txnID,
		TotalCost:     total,
	}
	if err := o.relayStore.SaveHandoff(ctx, req.SessionID, handoff); err != nil {
		// The payment can still proceed; only the confirmation page
		// loses its data.
		o.log.Error("failed to save checkout hand-off", "session_id", req.SessionID, "error", err)
	}

	if err := o.selectionService.Clear(ctx, req.SessionID); err != nil {
		o.log.Warn("failed to clear seat selection after checkout", "session_id", req.SessionID, "error", err)
	}
	o.catalogService.Invalidate(ctx, req.UnitID)

	o.log.LogGatewayHandoff(ctx, bookingID, txnID, total)
	o.publish(ctx, events.EventGatewayHandoff, req, bookingID, txnID, seats, total)

	return &Response{
		State:         StateRedirectingToGateway,
		UnitID:        req.UnitID,
		BookingID:     bookingID,
		TransactionID: txnID,
		SeatNumbers:   seats,
		TotalCost:     total,
		Reservations:  reservations,
		Gateway:       form,
	}, nil
}

func (o *orchestrator) Confirmation(ctx context.Context, sessionID string) (*ConfirmationResponse, error) {
	handoff, err := o.relayStore.LoadHandoff(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := o.relayStore.ClearHandoff(ctx, sessionID); err != nil {
		o.log.Warn("failed to clear checkout hand-off", "session_id", sessionID, "error", err)
	}
	return newConfirmationResponse(handoff), nil
}

// resolveSeatID maps a selected seat number to its backend id. A seat
// missing from the snapshot falls back to its number and lets the
// backend reject it.
func resolveSeatID(unit *gateway.UnitSeats, seatNumber string) string {
	for i := range unit.Seats {
		if unit.Seats[i].SeatNumber == seatNumber {
			return unit.Seats[i].ID
		}
	}
	return seatNumber
}

// reservationFailureMessage turns a reservation error into the message
// shown to the passenger. A duplicate-entry conflict means someone else
// holds the seat and the seat map the passenger picked from is stale.
func reservationFailureMessage(seatNumber string, err error) string {
	if isDuplicateEntry(err) {
		return fmt.Sprintf("Seat %s has already been taken. The seat map may be out of date, please refresh and choose again.", seatNumber)
	}
	return fmt.Sprintf("Could not reserve seat %s: %s", seatNumber, backendMessage(err, "please try again"))
}

func isDuplicateEntry(err error) bool {
	var statusErr *httpclient.StatusError
	if errors.As(err, &statusErr) {
		msg := strings.ToLower(statusErr.Message)
		if strings.Contains(msg, "same entry") || strings.Contains(msg, "duplicate") {
			return true
		}
	}
	return false
}

// backendMessage surfaces the backend's own error text when one exists,
// otherwise the fallback.
func backendMessage(err error, fallback string) string {
	var statusErr *httpclient.StatusError
	if errors.As(err, &statusErr) && statusErr.Message != "" {
		return statusErr.Message
	}
	return fallback
}

func (o *orchestrator) publish(ctx context.Context, eventType events.EventType, req Request, bookingID, txnID string, seats []string, total float64) {
	event := events.NewCheckoutEvent(eventType, req.SessionID)
	event.UnitID = req.UnitID
	event.BookingID = bookingID
	event.TransactionID = txnID
	event.SeatNumbers = seats
	event.TotalCost = total
	if err := o.producer.Publish(ctx, event); err != nil {
		o.log.Debug("failed to publish checkout event", "type", string(eventType), "error", err)
	}
}

func (o *orchestrator) publishFailure(ctx context.Context, req Request, bookingID, reason string) {
	event := events.NewCheckoutEvent(events.EventCheckoutFailed, req.SessionID)
	event.UnitID = req.UnitID
	event.BookingID = bookingID
	event.Reason = reason
	if err := o.producer.Publish(ctx, event); err != nil {
		o.log.Debug("failed to publish checkout event", "type", string(events.EventCheckoutFailed), "error", err)
	}
}

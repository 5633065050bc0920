package gateway

import (
	"context"
	"fmt"
	"net/url"
)

// ReservationClient performs the backend-side seat reservation: the
// irreversible act of associating a seat with a booking.
type ReservationClient interface {
	ReserveSeat(ctx context.Context, token string, req ReserveSeatRequest) (*ReserveSeatResponse, error)
	ConfirmOccupancy(ctx context.Context, token, seatID, bookingID string) error
}

type HTTPReservationClient struct {
	baseClient
}

// ReserveSeat posts one seat reservation scoped to (seatID, bookingID).
// Never retried: reissuing a reservation write risks double-booking.
func (c *HTTPReservationClient) ReserveSeat(ctx context.Context, token string, req ReserveSeatRequest) (*ReserveSeatResponse, error) {
	var resp ReserveSeatResponse
	endpoint := c.url("/seats/%s/reserve", url.PathEscape(req.SeatID))

	if err := c.http.PostJSON(ctx, endpoint, authHeaders(token), req, &resp); err != nil {
		return nil, err
	}

	if resp.SeatID == "" {
		resp.SeatID = req.SeatID
	}
	if resp.BookingID == "" {
		resp.BookingID = req.BookingID
	}

	return &resp, nil
}

// ConfirmOccupancy flips the seat's occupancy flag after a successful
// reservation. Best effort: the authoritative reservation has already
// succeeded, so callers log failures instead of aborting.
func (c *HTTPReservationClient) ConfirmOccupancy(ctx context.Context, token, seatID, bookingID string) error {
	endpoint := c.url("/seats/%s/occupancy", url.PathEscape(seatID))

	body := map[string]string{"booking_id": bookingID}
	if err := c.http.PostJSON(ctx, endpoint, authHeaders(token), body, nil); err != nil {
		return fmt.Errorf("failed to confirm occupancy for seat %s: %w", seatID, err)
	}

	return nil
}

package gateway

import (
	"context"
	"fmt"
)

// BookingClient creates booking records on the upstream backend.
type BookingClient interface {
	CreateBooking(ctx context.Context, token string, req CreateBookingRequest) (*CreateBookingResponse, error)
}

type HTTPBookingClient struct {
	baseClient
}

// CreateBooking posts the booking draft and expects a minted booking
// identifier back. Writes are never retried.
func (c *HTTPBookingClient) CreateBooking(ctx context.Context, token string, req CreateBookingRequest) (*CreateBookingResponse, error) {
	var resp CreateBookingResponse
	endpoint := c.url("/bookings")

	if err := c.http.PostJSON(ctx, endpoint, authHeaders(token), req, &resp); err != nil {
		return nil, err
	}

	if resp.BookingID == "" {
		return nil, fmt.Errorf("backend did not return a booking identifier")
	}

	return &resp, nil
}

package gateway

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// In-memory mocks for tests and local development without an upstream
// backend.

type CatalogMock struct {
	mock  sync.Mutex
	Units map[string]*UnitSeats
	Err   error
	Calls int
}

func (m *CatalogMock) GetUnitSeats(ctx context.Context, unitID string) (*UnitSeats, error) {
	m.mock.Lock()
	defer m.mock.Unlock()
	m.Calls++

	if m.Err != nil {
		return nil, m.Err
	}
	unit, ok := m.Units[unitID]
	if !ok {
		return nil, fmt.Errorf("failed to fetch seat catalog for unit %s: not found", unitID)
	}
	return unit, nil
}

type BookingMock struct {
	mock     sync.Mutex
	NextID   string
	Err      error
	Requests []CreateBookingRequest
}

func (m *BookingMock) CreateBooking(ctx context.Context, token string, req CreateBookingRequest) (*CreateBookingResponse, error) {
	m.mock.Lock()
	defer m.mock.Unlock()

	m.Requests = append(m.Requests, req)
	if m.Err != nil {
		return nil, m.Err
	}

	id := m.NextID
	if id == "" {
		id = "BK-MOCK"
	}
	return &CreateBookingResponse{BookingID: id}, nil
}

type ReservationMock struct {
	mock sync.Mutex

	// FailOn maps seat IDs to the error their reservation returns.
	FailOn map[string]error
	// ConfirmErr, when set, fails every occupancy confirmation.
	ConfirmErr error

	Reserved  []ReserveSeatRequest
	Confirmed []string
}

func (m *ReservationMock) ReserveSeat(ctx context.Context, token string, req ReserveSeatRequest) (*ReserveSeatResponse, error) {
	m.mock.Lock()
	defer m.mock.Unlock()

	if err, ok := m.FailOn[req.SeatID]; ok {
		return nil, err
	}

	m.Reserved = append(m.Reserved, req)
	return &ReserveSeatResponse{
		ReservationID: fmt.Sprintf("RSV-%d", len(m.Reserved)),
		SeatID:        req.SeatID,
		BookingID:     req.BookingID,
		Status:        "RESERVED",
	}, nil
}

func (m *ReservationMock) ConfirmOccupancy(ctx context.Context, token, seatID, bookingID string) error {
	m.mock.Lock()
	defer m.mock.Unlock()

	if m.ConfirmErr != nil {
		return m.ConfirmErr
	}
	m.Confirmed = append(m.Confirmed, seatID)
	return nil
}

type PaymentMock struct {
	mock     sync.Mutex
	Err      error
	Requests []SignatureRequest
}

func (m *PaymentMock) RequestSignature(ctx context.Context, token string, req SignatureRequest) (*SignatureResponse, error) {
	m.mock.Lock()
	defer m.mock.Unlock()

	m.Requests = append(m.Requests, req)
	if m.Err != nil {
		return nil, m.Err
	}

	return &SignatureResponse{
		Signature:        "mock-signature",
		SignedFieldNames: "total_amount,transaction_uuid,product_code",
		GatewayURL:       "https://gateway.example.com/pay",
		ProductCode:      "MOCK",
	}, nil
}

type StatsMock struct {
	mock  sync.Mutex
	Stats *DashboardStats
	Err   error
	Calls int
}

func (m *StatsMock) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	m.mock.Lock()
	defer m.mock.Unlock()
	m.Calls++

	if m.Err != nil {
		return nil, m.Err
	}
	if m.Stats == nil {
		return &DashboardStats{GeneratedAt: time.Now()}, nil
	}
	return m.Stats, nil
}

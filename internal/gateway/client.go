package gateway

import (
	"fmt"

	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/shared/config"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/pkg/httpclient"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/pkg/logger"
)

// Clients bundles every upstream backend client behind interfaces so the
// orchestrator can be exercised against mocks.
type Clients struct {
	Catalog     CatalogClient
	Booking     BookingClient
	Reservation ReservationClient
	Payment     PaymentClient
	Stats       StatsClient
}

// NewClients wires the real HTTP-backed clients against the configured
// upstream base URL, all sharing one HTTP client and its budgets.
func NewClients(cfg config.UpstreamConfig, log *logger.Logger) *Clients {
	hc := httpclient.New(httpclient.Config{
		Timeout:    cfg.Timeout,
		RetryCount: cfg.RetryCount,
		RetryDelay: cfg.RetryDelay,
	}, log)

	base := baseClient{http: hc, baseURL: cfg.BaseURL}

	return &Clients{
		Catalog:     &HTTPCatalogClient{baseClient: base},
		Booking:     &HTTPBookingClient{baseClient: base},
		Reservation: &HTTPReservationClient{baseClient: base},
		Payment:     &HTTPPaymentClient{baseClient: base},
		Stats:       &HTTPStatsClient{baseClient: base},
	}
}

type baseClient struct {
	http    *httpclient.Client
	baseURL string
}

func (c baseClient) url(format string, args ...interface{}) string {
	return c.baseURL + fmt.Sprintf(format, args...)
}

// authHeaders builds the bearer header for a backend call. Token may be
// empty for public reads.
func authHeaders(token string) map[string]string {
	if token == "" {
		return nil
	}
	return map[string]string{"Authorization": "Bearer " + token}
}

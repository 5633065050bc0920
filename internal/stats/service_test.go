package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/gateway"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/pkg/logger"
)

func TestGetDashboardStats(t *testing.T) {
	ctx := context.Background()

	t.Run("cold cache falls through to the backend", func(t *testing.T) {
		mock := &gateway.StatsMock{Stats: &gateway.DashboardStats{TotalBookings: 7}}
		svc := NewService(mock)

		stats, err := svc.GetDashboardStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(7), stats.TotalBookings)
		assert.Equal(t, 1, mock.Calls)
	})

	t.Run("backend failure propagates", func(t *testing.T) {
		svc := NewService(&gateway.StatsMock{Err: errors.New("unavailable")})

		_, err := svc.GetDashboardStats(ctx)
		assert.Error(t, err)
	})
}

func TestPoller(t *testing.T) {
	mock := &gateway.StatsMock{Stats: &gateway.DashboardStats{TotalBookings: 1}}
	svc := NewService(mock)

	poller := NewPoller(svc, 20*time.Millisecond, logger.GetDefault())
	poller.Start(context.Background())

	// Immediate refresh plus at least one tick
	time.Sleep(70 * time.Millisecond)
	poller.Stop()

	calls := mock.Calls
	assert.GreaterOrEqual(t, calls, 2)

	// Stopped poller makes no further calls
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, calls, mock.Calls)
}

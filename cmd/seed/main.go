package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/gateway"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/shared/config"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/shared/constants"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/pkg/cache"

	"github.com/google/uuid"
)

// Seeds demo seat snapshots into the catalog cache so the service can be
// exercised without the booking backend running. Snapshots are written
// with a long TTL; a real backend fetch overwrites them as it expires.

func main() {
	fmt.Println("🌱 Seeding demo seat catalog...")

	cfg := config.Load()

	if err := cache.Init(cache.Config{
		Address:  cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer cache.Close()

	cacheService := cache.NewService(cache.Client())
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	units := []*gateway.UnitSeats{
		demoUnit("bus-ktm-pkr-001", "BUS", 700, 32, []string{"A3", "B7"}),
		demoUnit("bus-ktm-chitwan-002", "BUS", 500, 28, nil),
		demoUnit("flight-ktm-pkr-101", "FLIGHT", 4500, 18, []string{"1A", "1B", "2C"}),
	}

	for _, unit := range units {
		key := constants.BuildCatalogUnitKey(unit.UnitID)
		if err := cacheService.Set(ctx, key, unit, 24*time.Hour); err != nil {
			log.Fatalf("Failed to seed unit %s: %v", unit.UnitID, err)
		}
		fmt.Printf("  ✅ %s (%d seats, %d reserved)\n",
			unit.UnitID, len(unit.Seats), countReserved(unit.Seats))
	}

	fmt.Println("🎉 Seeding completed! Seat catalog is ready for testing.")
}

func demoUnit(unitID, kind string, basePrice float64, seatCount int, reserved []string) *gateway.UnitSeats {
	departure := time.Now().Add(48 * time.Hour).Truncate(time.Hour)

	reservedSet := make(map[string]bool, len(reserved))
	for _, r := range reserved {
		reservedSet[r] = true
	}

	rows := "ABCD"
	seats := make([]gateway.Seat, 0, seatCount)
	for i := 0; i < seatCount; i++ {
		seatNumber := fmt.Sprintf("%c%d", rows[i%len(rows)], i/len(rows)+1)
		if kind == "FLIGHT" {
			seatNumber = fmt.Sprintf("%d%c", i/len(rows)+1, rows[i%len(rows)])
		}
		seats = append(seats, gateway.Seat{
			ID:         uuid.New().String(),
			SeatNumber: seatNumber,
			Price:      basePrice,
			Reserved:   reservedSet[seatNumber],
		})
	}

	return &gateway.UnitSeats{
		UnitID:    unitID,
		Kind:      kind,
		Departure: departure,
		Arrival:   departure.Add(6 * time.Hour),
		BasePrice: basePrice,
		Seats:     seats,
	}
}

func countReserved(seats []gateway.Seat) int {
	n := 0
	for _, s := range seats {
		if s.Reserved {
			n++
		}
	}
	return n
}

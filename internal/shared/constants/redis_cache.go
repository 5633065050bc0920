package constants

import (
	"fmt"
	"time"
)

// Redis keyspace for the checkout gateway.
// Pattern: busbooking:{module}:{operation}:{identifier}

// ================== CACHE TTL DURATIONS ==================

const (
	// Catalog snapshots live for one page view: the SPA fetches once on
	// mount and a stale seat map is the duplicate-entry failure mode.
	TTL_CATALOG_SNAPSHOT = 30 * time.Second

	// Selection state survives page navigation within a browsing session.
	TTL_SELECTION = 30 * time.Minute

	// Relay hand-off entries are disposable; they only need to outlive
	// the gateway redirect round trip.
	TTL_RELAY = 15 * time.Minute

	// Dashboard aggregates are refreshed by the poller on its own timer.
	TTL_DASHBOARD_STATS = 2 * time.Minute
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "busbooking"
)

// ================== CATALOG MODULE ==================

const (
	CACHE_KEY_CATALOG_UNIT = CACHE_PREFIX + ":catalog:unit:" // + unit-id
)

// BuildCatalogUnitKey builds the snapshot key for one transport unit.
func BuildCatalogUnitKey(unitID string) string {
	return CACHE_KEY_CATALOG_UNIT + unitID
}

// ================== SELECTION MODULE ==================

const (
	CACHE_KEY_SELECTION = CACHE_PREFIX + ":selection:session:" // + session-id
)

// BuildSelectionKey builds the per-session selection state key.
func BuildSelectionKey(sessionID string) string {
	return CACHE_KEY_SELECTION + sessionID
}

// ================== RELAY MODULE ==================

const (
	CACHE_KEY_RELAY = CACHE_PREFIX + ":relay:session:" // + session-id + :field
)

// BuildRelayKey builds a hand-off key for one session and field.
func BuildRelayKey(sessionID, field string) string {
	return fmt.Sprintf("%s%s:%s", CACHE_KEY_RELAY, sessionID, field)
}

// ================== STATS MODULE ==================

const (
	CACHE_KEY_DASHBOARD_STATS = CACHE_PREFIX + ":stats:dashboard"
)

package gateway

import (
	"context"
	"fmt"
	"net/url"
)

// CatalogClient reads seat inventory from the upstream backend.
type CatalogClient interface {
	GetUnitSeats(ctx context.Context, unitID string) (*UnitSeats, error)
}

type HTTPCatalogClient struct {
	baseClient
}

// GetUnitSeats fetches the seat list for one transport unit. Reads go
// through the shared client's retry budget.
func (c *HTTPCatalogClient) GetUnitSeats(ctx context.Context, unitID string) (*UnitSeats, error) {
	var unit UnitSeats
	endpoint := c.url("/units/%s/seats", url.PathEscape(unitID))

	if err := c.http.GetJSON(ctx, endpoint, nil, &unit); err != nil {
		return nil, fmt.Errorf("failed to fetch seat catalog for unit %s: %w", unitID, err)
	}

	if unit.UnitID == "" {
		unit.UnitID = unitID
	}

	return &unit, nil
}

package backpack

import (
	"context"

	"github.com/vantagefx/exkernel/core/types"
)

// GetAccountBalance calls GET /api/v1/account.
func (c *Connector) GetAccountBalance(ctx context.Context) ([]types.Balance, error) {
	if err := c.RequireAuth(); err != nil {
		return nil, err
	}
	var raw []wireBalance
	if err := c.Rest.GetJSON(ctx, "/api/v1/account", nil, true, &raw); err != nil {
		return nil, err
	}
	balances := make([]types.Balance, 0, len(raw))
	for _, b := range raw {
		free, err := types.ParseQuantity(orDefault(b.Free, "0"))
		if err != nil {
			continue
		}
		locked, err := types.ParseQuantity(orDefault(b.Locked, "0"))
		if err != nil {
			continue
		}
		if free.IsZero() && locked.IsZero() {
			continue
		}
		bal := types.Balance{Asset: b.Asset, Free: free, Locked: locked}
		if err := bal.Validate(); err != nil {
			continue
		}
		balances = append(balances, bal)
	}
	return balances, nil
}

// GetPositions calls GET /api/v1/positions. Backpack is primarily a spot
// venue, so this returns an empty slice unless the account has perpetual
// positions open.
func (c *Connector) GetPositions(ctx context.Context) ([]types.Position, error) {
	if err := c.RequireAuth(); err != nil {
		return nil, err
	}
	var raw []wirePosition
	if err := c.Rest.GetJSON(ctx, "/api/v1/positions", nil, true, &raw); err != nil {
		return nil, err
	}
	positions := make([]types.Position, 0, len(raw))
	for _, p := range raw {
		pos, err := convertPosition(p)
		if err != nil {
			continue
		}
		positions = append(positions, pos)
	}
	return positions, nil
}

package hyperliquid

import (
	"context"

	"github.com/vantagefx/exkernel/core/types"
)

// GetAccountBalance calls GET /v1/account/balances.
func (c *Connector) GetAccountBalance(ctx context.Context) ([]types.Balance, error) {
	if err := c.RequireAuth(); err != nil {
		return nil, err
	}
	var raw []wireBalance
	if err := c.Rest.GetJSON(ctx, "/v1/account/balances", nil, true, &raw); err != nil {
		return nil, err
	}
	balances := make([]types.Balance, 0, len(raw))
	for _, b := range raw {
		total, err := types.ParseQuantity(orDefault(b.Total, "0"))
		if err != nil {
			continue
		}
		available, err := types.ParseQuantity(orDefault(b.Available, "0"))
		if err != nil {
			continue
		}
		if total.IsZero() && available.IsZero() {
			continue
		}
		bal := types.Balance{
			Asset:  b.Coin,
			Free:   available,
			Locked: total.Sub(available),
		}
		if err := bal.Validate(); err != nil {
			continue
		}
		balances = append(balances, bal)
	}
	return balances, nil
}

// GetPositions calls GET /v1/account/positions -- Hyperliquid is a
// perpetuals-only venue, so positions are always meaningful here.
func (c *Connector) GetPositions(ctx context.Context) ([]types.Position, error) {
	if err := c.RequireAuth(); err != nil {
		return nil, err
	}
	var raw []wirePosition
	if err := c.Rest.GetJSON(ctx, "/v1/account/positions", nil, true, &raw); err != nil {
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

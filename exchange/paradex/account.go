package paradex

import (
	"context"

	"github.com/vantagefx/exkernel/core/types"
)

// GetAccountBalance calls GET /v1/balance.
func (c *Connector) GetAccountBalance(ctx context.Context) ([]types.Balance, error) {
	if err := c.RequireAuth(); err != nil {
		return nil, err
	}
	var raw []wireBalance
	if err := c.Rest.GetJSON(ctx, "/v1/balance", nil, true, &raw); err != nil {
		return nil, err
	}
	balances := make([]types.Balance, 0, len(raw))
	for _, b := range raw {
		size, err := types.ParseQuantity(orDefault(b.Size, "0"))
		if err != nil || size.IsZero() {
			continue
		}
		bal := types.Balance{
			Asset: b.Token,
			Free:  size,
		}
		if err := bal.Validate(); err != nil {
			continue
		}
		balances = append(balances, bal)
	}
	return balances, nil
}

// GetPositions calls GET /v1/positions -- Paradex is a perpetuals venue,
// so positions are always meaningful here, the same as Hyperliquid.
func (c *Connector) GetPositions(ctx context.Context) ([]types.Position, error) {
	if err := c.RequireAuth(); err != nil {
		return nil, err
	}
	var raw []wirePosition
	if err := c.Rest.GetJSON(ctx, "/v1/positions", nil, true, &raw); err != nil {
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

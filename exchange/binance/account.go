package binance

import (
	"context"

	"github.com/vantagefx/exkernel/core/types"
)

// GetAccountBalance signs and calls GET /api/v3/account, filtering out
// assets with zero free and zero locked balance. The timestamp query
// parameter Binance requires is appended by the HMAC signer itself, not
// here -- see signer.HmacSigner.signBinance.
func (c *Connector) GetAccountBalance(ctx context.Context) ([]types.Balance, error) {
	if err := c.RequireAuth(); err != nil {
		return nil, err
	}

	var info wireAccountInfo
	if err := c.Rest.GetJSON(ctx, "/api/v3/account", nil, true, &info); err != nil {
		return nil, err
	}

	balances := make([]types.Balance, 0, len(info.Balances))
	for _, b := range info.Balances {
		free, err := types.ParseQuantity(b.Free)
		if err != nil {
			continue
		}
		locked, err := types.ParseQuantity(b.Locked)
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

// GetPositions: Binance Spot has no concept of a position.
func (c *Connector) GetPositions(context.Context) ([]types.Position, error) {
	return []types.Position{}, nil
}

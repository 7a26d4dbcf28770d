package bybit

import (
	"context"
	"encoding/json"

	"github.com/vantagefx/exkernel/core/kernel/signer"
	"github.com/vantagefx/exkernel/core/types"
)

// accountTypeFor returns the wallet accountType Bybit v5 expects, which
// differs between spot (SPOT, isolated per-symbol margin) and linear
// perpetual (UNIFIED, cross-margin across contracts).
func accountTypeFor(category string) string {
	if category == categoryLinear {
		return "UNIFIED"
	}
	return "SPOT"
}

// GetAccountBalance signs and calls GET /v5/account/wallet-balance,
// flattening Bybit's nested result.list[].coin[] structure and filtering
// out coins with no wallet balance and no equity. As with Binance, the
// timestamp is not a query parameter here -- HmacSigner.signBybit carries
// it in the X-BAPI-TIMESTAMP header instead.
func (c *Connector) GetAccountBalance(ctx context.Context) ([]types.Balance, error) {
	if err := c.RequireAuth(); err != nil {
		return nil, err
	}

	query := []signer.KV{{Key: "accountType", Value: accountTypeFor(c.Category)}}
	var env wireEnvelope
	if err := c.Rest.GetJSON(ctx, "/v5/account/wallet-balance", query, true, &env); err != nil {
		return nil, err
	}
	if err := checkRetCode(env); err != nil {
		return nil, err
	}

	var result wireAccountResult
	if err := json.Unmarshal(env.Result, &result); err != nil {
		return nil, types.NewDeserializationError("failed to parse wallet-balance result: " + err.Error())
	}

	var balances []types.Balance
	for _, list := range result.List {
		for _, coin := range list.Coin {
			locked := coin.Locked
			if locked == "" {
				locked = "0"
			}
			equity := coin.Equity
			if equity == "" {
				equity = coin.WalletBalance
			}
			free, err := types.ParseQuantity(equity)
			if err != nil {
				continue
			}
			lockedQty, err := types.ParseQuantity(locked)
			if err != nil {
				continue
			}
			if free.IsZero() && lockedQty.IsZero() {
				continue
			}
			bal := types.Balance{Asset: coin.Coin, Free: free, Locked: lockedQty}
			if err := bal.Validate(); err != nil {
				continue
			}
			balances = append(balances, bal)
		}
	}
	return balances, nil
}

// GetPositions: only meaningful for the linear-perpetual category; spot
// has no notion of a position.
func (c *Connector) GetPositions(ctx context.Context) ([]types.Position, error) {
	if c.Category != categoryLinear {
		return []types.Position{}, nil
	}
	if err := c.RequireAuth(); err != nil {
		return nil, err
	}

	query := []signer.KV{{Key: "category", Value: c.Category}, {Key: "settleCoin", Value: "USDT"}}
	var env wireEnvelope
	if err := c.Rest.GetJSON(ctx, "/v5/position/list", query, true, &env); err != nil {
		return nil, err
	}
	if err := checkRetCode(env); err != nil {
		return nil, err
	}

	var result struct {
		List []wirePosition `json:"list"`
	}
	if err := json.Unmarshal(env.Result, &result); err != nil {
		return nil, types.NewDeserializationError("failed to parse position list result: " + err.Error())
	}

	positions := make([]types.Position, 0, len(result.List))
	for _, p := range result.List {
		pos, err := convertPosition(p)
		if err != nil {
			continue
		}
		positions = append(positions, pos)
	}
	return positions, nil
}

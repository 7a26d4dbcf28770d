package hyperliquid

import (
	"context"

	"github.com/vantagefx/exkernel/core/types"
)

// GetFundingRates reads the full GET /v1/funding feed via
// GetAllFundingRates and filters it to symbols client-side, returned in
// the caller's requested order.
func (c *Connector) GetFundingRates(ctx context.Context, symbols []string) ([]types.FundingRate, error) {
	all, err := c.GetAllFundingRates(ctx)
	if err != nil {
		return nil, err
	}
	bySymbol := make(map[string]types.FundingRate, len(all))
	for _, fr := range all {
		bySymbol[fr.Symbol.String()] = fr
	}
	out := make([]types.FundingRate, 0, len(symbols))
	for _, s := range symbols {
		if fr, ok := bySymbol[s]; ok {
			out = append(out, fr)
		}
	}
	return out, nil
}

func (c *Connector) GetAllFundingRates(ctx context.Context) ([]types.FundingRate, error) {
	var raw []wireFundingRate
	if err := c.Rest.GetJSON(ctx, "/v1/funding", nil, false, &raw); err != nil {
		return nil, err
	}
	rates := make([]types.FundingRate, 0, len(raw))
	for _, f := range raw {
		fr, err := convertFundingRate(f)
		if err != nil {
			continue
		}
		rates = append(rates, fr)
	}
	return rates, nil
}

// GetFundingRateHistory calls GET /v1/funding/history.
func (c *Connector) GetFundingRateHistory(
	ctx context.Context,
	symbol string,
	startTime, endTime *int64,
	limit *int,
) ([]types.FundingRate, error) {
	var raw []wireFundingRate
	if err := c.Rest.GetJSON(ctx, "/v1/funding/history?symbol="+symbol, nil, false, &raw); err != nil {
		return nil, err
	}
	rates := make([]types.FundingRate, 0, len(raw))
	for _, f := range raw {
		fr, err := convertFundingRate(f)
		if err != nil {
			continue
		}
		rates = append(rates, fr)
	}
	return rates, nil
}

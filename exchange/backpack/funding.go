package backpack

import (
	"context"

	"github.com/vantagefx/exkernel/core/types"
)

// GetFundingRates filters GetAllFundingRates down to symbols, mirroring
// Backpack's get_single_funding_rate-per-symbol reference behavior, and
// returns them in the caller's requested order.
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

// GetAllFundingRates calls GET /api/v1/funding/rates.
func (c *Connector) GetAllFundingRates(ctx context.Context) ([]types.FundingRate, error) {
	var raw []wireFundingRate
	if err := c.Rest.GetJSON(ctx, "/api/v1/funding/rates", nil, false, &raw); err != nil {
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

// GetFundingRateHistory calls GET /api/v1/funding/rates/history.
func (c *Connector) GetFundingRateHistory(
	ctx context.Context,
	symbol string,
	startTime, endTime *int64,
	limit *int,
) ([]types.FundingRate, error) {
	var raw []wireFundingRate
	if err := c.Rest.GetJSON(ctx, "/api/v1/funding/rates/history?symbol="+symbol, nil, false, &raw); err != nil {
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

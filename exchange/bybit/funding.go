package bybit

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/vantagefx/exkernel/core/kernel/signer"
	"github.com/vantagefx/exkernel/core/log"
	"github.com/vantagefx/exkernel/core/types"
)

// GetFundingRates fetches GET /v5/market/tickers?category=linear, which
// carries the current funding rate and mark/index price alongside the
// regular ticker fields, and filters the result down to symbols, returned
// in the caller's requested order rather than the venue's response order.
func (c *Connector) GetFundingRates(ctx context.Context, symbols []string) ([]types.FundingRate, error) {
	all, err := c.GetAllFundingRates(ctx)
	if err != nil {
		return nil, err
	}
	if len(symbols) == 0 {
		return all, nil
	}
	bySymbol := make(map[string]types.FundingRate, len(all))
	for _, fr := range all {
		bySymbol[fr.Symbol.String()] = fr
	}
	out := make([]types.FundingRate, 0, len(symbols))
	for _, s := range symbols {
		if fr, ok := bySymbol[strings.ToUpper(s)]; ok {
			out = append(out, fr)
		}
	}
	return out, nil
}

func (c *Connector) GetAllFundingRates(ctx context.Context) ([]types.FundingRate, error) {
	query := []signer.KV{{Key: "category", Value: categoryLinear}}
	var env wireEnvelope
	if err := c.Rest.GetJSON(ctx, "/v5/market/tickers", query, false, &env); err != nil {
		return nil, err
	}
	if err := checkRetCode(env); err != nil {
		return nil, err
	}
	var result wireFundingResult
	if err := json.Unmarshal(env.Result, &result); err != nil {
		return nil, types.NewDeserializationError("failed to parse tickers result: " + err.Error())
	}

	rates := make([]types.FundingRate, 0, len(result.List))
	for _, t := range result.List {
		fr, err := convertFundingRate(t)
		if err != nil {
			log.Global.Warnf("bybit: skipping unconvertible funding rate for %s: %v", t.Symbol, err)
			continue
		}
		rates = append(rates, fr)
	}
	return rates, nil
}

// GetFundingRateHistory fetches GET /v5/market/funding/history, Bybit's
// per-settlement funding-rate ledger for one linear symbol.
func (c *Connector) GetFundingRateHistory(
	ctx context.Context,
	symbol string,
	startTime, endTime *int64,
	limit *int,
) ([]types.FundingRate, error) {
	sym, err := types.ParseSymbol(symbol)
	if err != nil {
		return nil, err
	}

	query := []signer.KV{
		{Key: "category", Value: categoryLinear},
		{Key: "symbol", Value: strings.ToUpper(symbol)},
	}
	if startTime != nil {
		query = append(query, signer.KV{Key: "startTime", Value: intToStr(*startTime)})
	}
	if endTime != nil {
		query = append(query, signer.KV{Key: "endTime", Value: intToStr(*endTime)})
	}
	if limit != nil {
		query = append(query, signer.KV{Key: "limit", Value: intToStr(int64(*limit))})
	}

	var env wireEnvelope
	if err := c.Rest.GetJSON(ctx, "/v5/market/funding/history", query, false, &env); err != nil {
		return nil, err
	}
	if err := checkRetCode(env); err != nil {
		return nil, err
	}

	var result struct {
		List []wireFundingHistoryEntry `json:"list"`
	}
	if err := json.Unmarshal(env.Result, &result); err != nil {
		return nil, types.NewDeserializationError("failed to parse funding history result: " + err.Error())
	}

	rates := make([]types.FundingRate, 0, len(result.List))
	for _, entry := range result.List {
		rate, err := types.ParsePrice(entry.FundingRate)
		if err != nil {
			continue
		}
		rates = append(rates, types.FundingRate{
			Symbol:      sym,
			FundingRate: types.SomePrice(rate),
			Timestamp:   types.Timestamp(parseIntOrZero(entry.FundingRateTimestamp)),
		})
	}
	return rates, nil
}

type wireFundingHistoryEntry struct {
	Symbol                string `json:"symbol"`
	FundingRate           string `json:"fundingRate"`
	FundingRateTimestamp  string `json:"fundingRateTimestamp"`
}

package bybit

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/vantagefx/exkernel/core/kernel/signer"
	"github.com/vantagefx/exkernel/core/log"
	"github.com/vantagefx/exkernel/core/types"
)

// GetMarkets fetches GET /v5/market/instruments-info for the connector's
// category (spot or linear) and unwraps Bybit's retCode/retMsg/result
// envelope before converting each instrument.
func (c *Connector) GetMarkets(ctx context.Context) ([]types.Market, error) {
	var env wireEnvelope
	query := []signer.KV{{Key: "category", Value: c.Category}}
	if err := c.Rest.GetJSON(ctx, "/v5/market/instruments-info", query, false, &env); err != nil {
		return nil, err
	}
	if err := checkRetCode(env); err != nil {
		return nil, err
	}

	var info wireInstrumentsInfo
	if err := json.Unmarshal(env.Result, &info); err != nil {
		return nil, types.NewDeserializationError("failed to parse instruments-info result: " + err.Error())
	}

	markets := make([]types.Market, 0, len(info.List))
	for _, m := range info.List {
		market, err := convertMarket(m)
		if err != nil {
			log.Global.Warnf("bybit: skipping unconvertible market %s: %v", m.Symbol, err)
			continue
		}
		markets = append(markets, market)
	}
	return markets, nil
}

func checkRetCode(env wireEnvelope) error {
	if env.RetCode != 0 {
		return types.NewAPIError(strconv.Itoa(env.RetCode), env.RetMsg)
	}
	return nil
}

func (c *Connector) GetWebSocketURL() string { return c.WsURL }

// SubscribeMarketData opens the connector's WS session (a public spot or
// linear stream, per Category) and forwards decoded pushes to the returned
// channel. Bybit's application-layer ping is intercepted here rather than
// in the codec: DecodeMessage is a pure function and can't itself write a
// pong frame back onto the wire.
func (c *Connector) SubscribeMarketData(
	ctx context.Context,
	symbols []string,
	subscriptionTypes []types.SubscriptionType,
	wsConfig *types.WebSocketConfig,
) (<-chan types.MarketDataType, error) {
	if c.Ws == nil {
		return nil, types.NewWebSocketError("connector was built without a websocket session")
	}

	streams := buildStreams(symbols, subscriptionTypes)

	if !c.Ws.IsConnected() {
		if err := c.Ws.Connect(ctx); err != nil {
			return nil, err
		}
	}
	if err := c.SubscribeIncremental(streams); err != nil {
		return nil, err
	}

	out := make(chan types.MarketDataType, 256)
	go func() {
		defer close(out)
		for {
			msg, ok, err := c.Ws.NextMessage(ctx)
			if err != nil {
				log.Wss.Errorf("bybit market data stream ended: %v", err)
				return
			}
			if !ok {
				return
			}
			if msg.Kind == MsgPing {
				if sendErr := c.Ws.SendRaw(Codec{}.EncodePong()); sendErr != nil {
					log.Wss.Warnf("bybit: failed to answer ping: %v", sendErr)
				}
				continue
			}
			converted, err := toMarketDataType(msg)
			if err != nil {
				log.Wss.Warnf("bybit: dropping unconvertible message: %v", err)
				continue
			}
			if converted == nil {
				continue
			}
			select {
			case out <- *converted:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

func toMarketDataType(msg Message) (*types.MarketDataType, error) {
	switch msg.Kind {
	case MsgTicker:
		md, err := convertTicker(msg.Ticker)
		return &md, err
	case MsgOrderBook:
		md, err := convertOrderBook(msg.OrderBook)
		return &md, err
	case MsgTrade:
		md, err := convertTrade(msg.Trade)
		return &md, err
	case MsgKline:
		md, err := convertKlineWs(msg.Symbol, msg.Kline)
		return &md, err
	default:
		return nil, nil
	}
}

// GetKlines fetches GET /v5/market/kline. Bybit ships each candle as a
// positional string array, newest first, so the results are reversed
// before returning.
func (c *Connector) GetKlines(
	ctx context.Context,
	symbol string,
	interval types.KlineInterval,
	limit *int,
	startTime, endTime *int64,
) ([]types.Kline, error) {
	sym, err := types.ParseSymbol(symbol)
	if err != nil {
		return nil, err
	}

	query := []signer.KV{
		{Key: "category", Value: c.Category},
		{Key: "symbol", Value: strings.ToUpper(symbol)},
		{Key: "interval", Value: bybitInterval(interval)},
	}
	if limit != nil {
		query = append(query, signer.KV{Key: "limit", Value: strconv.Itoa(*limit)})
	}
	if startTime != nil {
		query = append(query, signer.KV{Key: "start", Value: strconv.FormatInt(*startTime, 10)})
	}
	if endTime != nil {
		query = append(query, signer.KV{Key: "end", Value: strconv.FormatInt(*endTime, 10)})
	}

	var env wireEnvelope
	if err := c.Rest.GetJSON(ctx, "/v5/market/kline", query, false, &env); err != nil {
		return nil, err
	}
	if err := checkRetCode(env); err != nil {
		return nil, err
	}
	var result wireKlineResult
	if err := json.Unmarshal(env.Result, &result); err != nil {
		return nil, types.NewDeserializationError("failed to parse kline result: " + err.Error())
	}

	klines := make([]types.Kline, 0, len(result.List))
	for i := len(result.List) - 1; i >= 0; i-- {
		kline, err := decodeRestKline(sym, interval, result.List[i])
		if err != nil {
			log.Global.Warnf("bybit: skipping unconvertible kline for %s: %v", symbol, err)
			continue
		}
		klines = append(klines, kline)
	}
	return klines, nil
}

// bybitInterval maps the closed interval set onto Bybit's own vocabulary,
// which uses bare minute counts ("1","5","60") rather than unit suffixes
// except for day/week/month.
func bybitInterval(i types.KlineInterval) string {
	switch i {
	case types.Interval1d:
		return "D"
	case types.Interval1w:
		return "W"
	case types.Interval1M:
		return "M"
	default:
		seconds := i.ToSeconds()
		return strconv.FormatInt(seconds/60, 10)
	}
}

package hyperliquid

import (
	"context"

	"github.com/vantagefx/exkernel/core/log"
	"github.com/vantagefx/exkernel/core/types"
)

// GetMarkets fetches GET /v1/markets.
func (c *Connector) GetMarkets(ctx context.Context) ([]types.Market, error) {
	var raw []wireMarket
	if err := c.Rest.GetJSON(ctx, "/v1/markets", nil, false, &raw); err != nil {
		return nil, err
	}
	markets := make([]types.Market, 0, len(raw))
	for _, m := range raw {
		market, err := convertMarket(m)
		if err != nil {
			log.Global.Warnf("hyperliquid: skipping unconvertible market %s: %v", m.Symbol, err)
			continue
		}
		markets = append(markets, market)
	}
	return markets, nil
}

func (c *Connector) GetWebSocketURL() string { return c.WsURL }

// SubscribeMarketData mirrors the other adapters' consumer loop, proving
// the generic ws.WsSession plumbing works unchanged for this venue.
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
				log.Wss.Errorf("hyperliquid market data stream ended: %v", err)
				return
			}
			if !ok {
				return
			}
			converted, err := toMarketDataType(msg)
			if err != nil {
				log.Wss.Warnf("hyperliquid: dropping unconvertible message: %v", err)
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
		md, err := convertKline(msg.Kline)
		return &md, err
	default:
		return nil, nil
	}
}

// GetKlines fetches GET /v1/klines.
func (c *Connector) GetKlines(
	ctx context.Context,
	symbol string,
	interval types.KlineInterval,
	limit *int,
	startTime, endTime *int64,
) ([]types.Kline, error) {
	var raw []wireKline
	if err := c.Rest.GetJSON(ctx, "/v1/klines?symbol="+symbol+"&interval="+interval.ToWireString(), nil, false, &raw); err != nil {
		return nil, err
	}
	klines := make([]types.Kline, 0, len(raw))
	for _, k := range raw {
		md, err := convertKline(k)
		if err != nil {
			log.Global.Warnf("hyperliquid: skipping unconvertible kline for %s: %v", symbol, err)
			continue
		}
		klines = append(klines, md.Kline)
	}
	return klines, nil
}

package binance

import (
	"context"
	"strconv"
	"strings"

	"github.com/vantagefx/exkernel/core/kernel/signer"
	"github.com/vantagefx/exkernel/core/log"
	"github.com/vantagefx/exkernel/core/types"
)

// GetMarkets fetches GET /api/v3/exchangeInfo and converts every symbol's
// LOT_SIZE/PRICE_FILTER bounds into a types.Market.
func (c *Connector) GetMarkets(ctx context.Context) ([]types.Market, error) {
	var info wireExchangeInfo
	if err := c.Rest.GetJSON(ctx, "/api/v3/exchangeInfo", nil, false, &info); err != nil {
		return nil, err
	}
	markets := make([]types.Market, 0, len(info.Symbols))
	for _, m := range info.Symbols {
		market, err := convertMarket(m)
		if err != nil {
			log.Global.Warnf("binance: skipping unconvertible market %s: %v", m.Symbol, err)
			continue
		}
		markets = append(markets, market)
	}
	return markets, nil
}

func (c *Connector) GetWebSocketURL() string { return c.WsURL }

// SubscribeMarketData connects the WebSocket session wired in at build
// time (if it is not already connected) and subscribes to the stream
// identifiers derived from symbols/subscriptionTypes that are not already
// open, forwarding decoded messages onto the returned channel until ctx is
// cancelled or the session ends. It does not create a session: a connector
// built without one gets a WebSocketError.
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
				log.Wss.Errorf("binance market data stream ended: %v", err)
				return
			}
			if !ok {
				return
			}
			converted, err := toMarketDataType(msg)
			if err != nil {
				log.Wss.Warnf("binance: dropping unconvertible message: %v", err)
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
		md, err := convertDepth(msg.OrderBook)
		return &md, err
	case MsgTrade:
		md, err := convertTrade(msg.Trade)
		return &md, err
	case MsgKline:
		md, err := convertKlineEvent(msg.Kline)
		return &md, err
	default:
		return nil, nil
	}
}

// GetKlines fetches GET /api/v3/klines. Binance ships every candle as a
// positional array rather than an object.
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
		{Key: "symbol", Value: strings.ToUpper(symbol)},
		{Key: "interval", Value: interval.ToWireString()},
	}
	if limit != nil {
		query = append(query, signer.KV{Key: "limit", Value: strconv.Itoa(*limit)})
	}
	if startTime != nil {
		query = append(query, signer.KV{Key: "startTime", Value: strconv.FormatInt(*startTime, 10)})
	}
	if endTime != nil {
		query = append(query, signer.KV{Key: "endTime", Value: strconv.FormatInt(*endTime, 10)})
	}

	var raw []wireRestKline
	if err := c.Rest.GetJSON(ctx, "/api/v3/klines", query, false, &raw); err != nil {
		return nil, err
	}

	klines := make([]types.Kline, 0, len(raw))
	for _, entry := range raw {
		kline, err := decodeRestKline(sym, interval, entry)
		if err != nil {
			log.Global.Warnf("binance: skipping unconvertible kline for %s: %v", symbol, err)
			continue
		}
		klines = append(klines, kline)
	}
	return klines, nil
}

package types

import "github.com/antihax/optional"

// SubscriptionKind tags which SubscriptionType variant is active.
type SubscriptionKind int

const (
	SubTicker SubscriptionKind = iota
	SubOrderBook
	SubTrades
	SubKlines
)

// SubscriptionType is a closed union over the four stream shapes a
// MarketDataSource can be asked to open. OrderBook carries an optional
// depth; Klines carries the required interval.
type SubscriptionType struct {
	Kind     SubscriptionKind
	Depth    optional.Int64 // only meaningful for SubOrderBook
	Interval KlineInterval  // only meaningful for SubKlines
}

func NewTickerSubscription() SubscriptionType {
	return SubscriptionType{Kind: SubTicker}
}

func NewOrderBookSubscription(depth optional.Int64) SubscriptionType {
	return SubscriptionType{Kind: SubOrderBook, Depth: depth}
}

func NewTradesSubscription() SubscriptionType {
	return SubscriptionType{Kind: SubTrades}
}

func NewKlinesSubscription(interval KlineInterval) SubscriptionType {
	return SubscriptionType{Kind: SubKlines, Interval: interval}
}

// WebSocketConfig is an immutable value describing reconnection behavior
// for one subscribe_market_data call.
type WebSocketConfig struct {
	AutoReconnect        bool
	PingInterval         optional.Int64 // seconds
	MaxReconnectAttempts optional.Int64
}

func DefaultWebSocketConfig() WebSocketConfig {
	return WebSocketConfig{AutoReconnect: true}
}

// MarketDataKind tags which MarketDataType variant a decoded message
// carries.
type MarketDataKind int

const (
	MDTicker MarketDataKind = iota
	MDOrderBook
	MDTrade
	MDKline
)

// MarketDataType is the tagged union delivered on subscribe_market_data's
// receiver channel. Exactly one of the payload fields is meaningful,
// selected by Kind.
type MarketDataType struct {
	Kind      MarketDataKind
	Ticker    Ticker
	OrderBook OrderBook
	Trade     Trade
	Kline     Kline
}

func NewTickerData(t Ticker) MarketDataType       { return MarketDataType{Kind: MDTicker, Ticker: t} }
func NewOrderBookData(b OrderBook) MarketDataType { return MarketDataType{Kind: MDOrderBook, OrderBook: b} }
func NewTradeData(t Trade) MarketDataType         { return MarketDataType{Kind: MDTrade, Trade: t} }
func NewKlineData(k Kline) MarketDataType         { return MarketDataType{Kind: MDKline, Kline: k} }

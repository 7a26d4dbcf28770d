// Package traits defines the capability interfaces a Connector composes:
// MarketDataSource, OrderPlacer, AccountInfo, and (for perpetual venues
// only) FundingRateSource. An adapter implements only the capabilities its
// venue actually supports; Connector wires the ones it's given.
package traits

import (
	"context"

	"github.com/vantagefx/exkernel/core/types"
)

// MarketDataSource is the read-only market-data capability every adapter
// implements: reference data (GetMarkets), streaming subscriptions, and
// historical klines.
type MarketDataSource interface {
	GetMarkets(ctx context.Context) ([]types.Market, error)

	// SubscribeMarketData connects (or reuses) the venue's WebSocket and
	// returns a channel of decoded messages for the requested symbols and
	// subscription types. The channel closes when ctx is cancelled or the
	// underlying session terminates permanently. The adapters in this module
	// do not read config: reconnection settings are fixed when the
	// connector is built, and nil is accepted.
	SubscribeMarketData(
		ctx context.Context,
		symbols []string,
		subscriptionTypes []types.SubscriptionType,
		config *types.WebSocketConfig,
	) (<-chan types.MarketDataType, error)

	GetWebSocketURL() string

	GetKlines(
		ctx context.Context,
		symbol string,
		interval types.KlineInterval,
		limit *int,
		startTime, endTime *int64,
	) ([]types.Kline, error)
}

// OrderPlacer is the trading capability. ModifyOrder has a default
// "unsupported" implementation via UnsupportedModifyOrder so adapters for
// venues without in-place modification don't need to implement it by hand.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, order types.OrderRequest) (types.OrderResponse, error)
	CancelOrder(ctx context.Context, symbol, orderID string) error
	ModifyOrder(ctx context.Context, orderID string, order types.OrderRequest) (types.OrderResponse, error)
}

// UnsupportedModifyOrder is the shared body for adapters whose venue has no
// order-modification endpoint; embed it or call it directly from
// ModifyOrder.
func UnsupportedModifyOrder(context.Context, string, types.OrderRequest) (types.OrderResponse, error) {
	return types.OrderResponse{}, types.NewOrderError("order modification not supported")
}

// AccountInfo is the account-state capability. GetPositions returns an
// empty slice (never an error) for spot adapters, which have no concept of
// a position.
type AccountInfo interface {
	GetAccountBalance(ctx context.Context) ([]types.Balance, error)
	GetPositions(ctx context.Context) ([]types.Position, error)
}

// FundingRateSource is implemented only by perpetual-futures adapters.
type FundingRateSource interface {
	GetFundingRates(ctx context.Context, symbols []string) ([]types.FundingRate, error)
	GetAllFundingRates(ctx context.Context) ([]types.FundingRate, error)
	GetFundingRateHistory(
		ctx context.Context,
		symbol string,
		startTime, endTime *int64,
		limit *int,
	) ([]types.FundingRate, error)
}

// ExchangeConnector composes the three capabilities every venue supports.
type ExchangeConnector interface {
	MarketDataSource
	OrderPlacer
	AccountInfo
}

// PerpetualExchangeConnector adds funding-rate access for perpetual
// venues (in this module: Bybit linear, Hyperliquid, Backpack, Paradex).
type PerpetualExchangeConnector interface {
	ExchangeConnector
	FundingRateSource
}

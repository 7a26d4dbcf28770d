package bybit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantagefx/exkernel/core/types"
)

func TestConvertMarketLotSizeAndPrecision(t *testing.T) {
	m := wireMarket{
		Symbol:    "BTCUSDT",
		BaseCoin:  "BTC",
		QuoteCoin: "USDT",
		Status:    "Trading",
		LotSizeFilter: wireLotSize{
			BasePrecision: "0.000001",
			MinOrderQty:   "0.0001",
			MaxOrderQty:   "100",
		},
	}
	market, err := convertMarket(m)
	require.NoError(t, err)
	assert.Equal(t, "BTC", market.Symbol.Base)
	assert.Equal(t, "USDT", market.Symbol.Quote)
	assert.Equal(t, uint8(6), market.BasePrecision)
	minQty, ok := types.GetQuantity(market.MinQty)
	require.True(t, ok)
	assert.Equal(t, "0.0001", minQty.String())
}

func TestConvertOrderCreateResultFallsBackToRequest(t *testing.T) {
	order := types.OrderRequest{
		Symbol:    mustSymbol(t, "ETHUSDT"),
		Side:      types.Buy,
		OrderType: types.MarketOrder,
		Quantity:  mustQuantity(t, "1.5"),
	}
	resp, err := convertOrderCreateResult(wireOrderCreateResult{OrderID: "123", OrderLinkID: "abc"}, order)
	require.NoError(t, err)
	assert.Equal(t, "123", resp.OrderID)
	assert.Equal(t, "abc", resp.ClientOrderID)
	assert.Equal(t, order.Symbol, resp.Symbol)
	assert.Equal(t, "1.5", resp.Quantity.String())
}

func TestConvertOrderCreateResultPrefersEchoedFields(t *testing.T) {
	order := types.OrderRequest{
		Symbol:    mustSymbol(t, "ETHUSDT"),
		Side:      types.Buy,
		OrderType: types.Limit,
		Quantity:  mustQuantity(t, "1.5"),
	}
	resp, err := convertOrderCreateResult(wireOrderCreateResult{
		OrderID: "123", Symbol: "ETHUSDT", Qty: "2.0", Price: "3000.5", OrderStatus: "Filled",
	}, order)
	require.NoError(t, err)
	assert.Equal(t, "2.0", resp.Quantity.String())
	assert.Equal(t, "Filled", resp.Status)
	price, ok := types.GetPrice(resp.Price)
	require.True(t, ok)
	assert.Equal(t, "3000.5", price.String())
}

func TestDecodeRestKlineComputesCloseTimeFromInterval(t *testing.T) {
	sym := mustSymbol(t, "BTCUSDT")
	kline, err := decodeRestKline(sym, types.Interval1m, []string{"1000", "100", "110", "90", "105", "50"})
	require.NoError(t, err)
	assert.Equal(t, types.Timestamp(1000), kline.OpenTime)
	assert.Equal(t, types.Timestamp(1000+60000), kline.CloseTime)
}

func mustSymbol(t *testing.T, wire string) types.Symbol {
	sym, err := types.ParseSymbol(wire)
	require.NoError(t, err)
	return sym
}

func mustQuantity(t *testing.T, s string) types.Quantity {
	q, err := types.ParseQuantity(s)
	require.NoError(t, err)
	return q
}

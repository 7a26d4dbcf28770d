package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarketValidatePrecisionBound(t *testing.T) {
	m := Market{Symbol: mustTestSymbol(t, "BTCUSDT"), BasePrecision: 19}
	err := m.Validate()
	require.Error(t, err)
	assert.Equal(t, KindInvalidParameters, KindOf(err))
}

func TestMarketValidateMinMaxQtyOrdered(t *testing.T) {
	minQty := mustTestQuantity(t, "10")
	maxQty := mustTestQuantity(t, "1")
	m := Market{
		Symbol: mustTestSymbol(t, "BTCUSDT"),
		MinQty: SomeQuantity(minQty),
		MaxQty: SomeQuantity(maxQty),
	}
	err := m.Validate()
	require.Error(t, err)
}

func TestMarketValidateAcceptsOrderedBounds(t *testing.T) {
	m := Market{
		Symbol:         mustTestSymbol(t, "BTCUSDT"),
		BasePrecision:  8,
		QuotePrecision: 8,
		MinQty:         SomeQuantity(mustTestQuantity(t, "0.001")),
		MaxQty:         SomeQuantity(mustTestQuantity(t, "1000")),
		MinPrice:       SomePrice(mustTestPrice(t, "1")),
		MaxPrice:       SomePrice(mustTestPrice(t, "100000")),
	}
	require.NoError(t, m.Validate())
}

func TestOrderBookValidateBidsMustDescend(t *testing.T) {
	ob := OrderBook{
		Symbol: mustTestSymbol(t, "BTCUSDT"),
		Bids: []OrderBookLevel{
			{Price: mustTestPrice(t, "100"), Quantity: mustTestQuantity(t, "1")},
			{Price: mustTestPrice(t, "101"), Quantity: mustTestQuantity(t, "1")},
		},
	}
	require.Error(t, ob.Validate())
}

func TestOrderBookValidateAsksMustAscend(t *testing.T) {
	ob := OrderBook{
		Symbol: mustTestSymbol(t, "BTCUSDT"),
		Asks: []OrderBookLevel{
			{Price: mustTestPrice(t, "101"), Quantity: mustTestQuantity(t, "1")},
			{Price: mustTestPrice(t, "100"), Quantity: mustTestQuantity(t, "1")},
		},
	}
	require.Error(t, ob.Validate())
}

func TestOrderBookValidateBestBidBelowBestAsk(t *testing.T) {
	ob := OrderBook{
		Symbol: mustTestSymbol(t, "BTCUSDT"),
		Bids:   []OrderBookLevel{{Price: mustTestPrice(t, "101"), Quantity: mustTestQuantity(t, "1")}},
		Asks:   []OrderBookLevel{{Price: mustTestPrice(t, "100"), Quantity: mustTestQuantity(t, "1")}},
	}
	require.Error(t, ob.Validate())
}

func TestOrderBookValidateAcceptsWellFormedBook(t *testing.T) {
	ob := OrderBook{
		Symbol: mustTestSymbol(t, "BTCUSDT"),
		Bids: []OrderBookLevel{
			{Price: mustTestPrice(t, "100"), Quantity: mustTestQuantity(t, "1")},
			{Price: mustTestPrice(t, "99"), Quantity: mustTestQuantity(t, "2")},
		},
		Asks: []OrderBookLevel{
			{Price: mustTestPrice(t, "101"), Quantity: mustTestQuantity(t, "1")},
			{Price: mustTestPrice(t, "102"), Quantity: mustTestQuantity(t, "2")},
		},
	}
	require.NoError(t, ob.Validate())
	bid, ok := ob.BestBid()
	require.True(t, ok)
	assert.Equal(t, "100", bid.Price.String())
	ask, ok := ob.BestAsk()
	require.True(t, ok)
	assert.Equal(t, "101", ask.Price.String())
}

func TestOrderBookBestBidAskEmptySide(t *testing.T) {
	ob := OrderBook{Symbol: mustTestSymbol(t, "BTCUSDT")}
	_, ok := ob.BestBid()
	assert.False(t, ok)
	_, ok = ob.BestAsk()
	assert.False(t, ok)
}

func mustTestSymbol(t *testing.T, wire string) Symbol {
	sym, err := ParseSymbol(wire)
	require.NoError(t, err)
	return sym
}

func mustTestPrice(t *testing.T, s string) Price {
	p, err := ParsePrice(s)
	require.NoError(t, err)
	return p
}

func mustTestQuantity(t *testing.T, s string) Quantity {
	q, err := ParseQuantity(s)
	require.NoError(t, err)
	return q
}

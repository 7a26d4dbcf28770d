package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolRoundTrip(t *testing.T) {
	cases := []string{"BTCUSDT", "ETHUSDC", "SOLBUSD", "BNBBTC", "ETHBTC"}
	for _, wire := range cases {
		sym, err := ParseSymbol(wire)
		require.NoError(t, err)
		assert.Equal(t, wire, sym.String())
	}
}

func TestParseSymbolLongestQuoteMatch(t *testing.T) {
	sym, err := ParseSymbol("BTCUSDT")
	require.NoError(t, err)
	assert.Equal(t, "BTC", sym.Base)
	assert.Equal(t, "USDT", sym.Quote)
}

func TestParseSymbolRejectsUnknownQuote(t *testing.T) {
	_, err := ParseSymbol("XYZ")
	require.Error(t, err)
	assert.Equal(t, KindInvalidParameters, KindOf(err))
}

func TestNewSymbolUppercasesAndTrims(t *testing.T) {
	sym, err := NewSymbol(" btc ", "usdt")
	require.NoError(t, err)
	assert.Equal(t, "BTC", sym.Base)
	assert.Equal(t, "USDT", sym.Quote)
}

func TestNewSymbolRejectsEmpty(t *testing.T) {
	_, err := NewSymbol("", "USDT")
	require.Error(t, err)
}

package signer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQueryStringSplitsPairs(t *testing.T) {
	kvs := parseQueryString("symbol=BTCUSDT&side=BUY")
	require.Len(t, kvs, 2)
	assert.Equal(t, KV{Key: "symbol", Value: "BTCUSDT"}, kvs[0])
	assert.Equal(t, KV{Key: "side", Value: "BUY"}, kvs[1])
}

func TestParseQueryStringEmpty(t *testing.T) {
	assert.Nil(t, parseQueryString(""))
}

func TestNoopSignerPassesQueryThrough(t *testing.T) {
	result, err := NoopSigner{}.SignRequest("GET", "/api/v3/ticker", "symbol=BTCUSDT", nil, 0)
	require.NoError(t, err)
	assert.Equal(t, []KV{{Key: "symbol", Value: "BTCUSDT"}}, result.SignedParams)
	assert.Empty(t, result.Headers)
}

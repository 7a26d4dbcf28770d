package signer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHmacSignerRejectsEmptyCredentials(t *testing.T) {
	_, err := NewHmacSigner("", "secret", HmacBinance, 0)
	require.Error(t, err)

	_, err = NewHmacSigner("key", "", HmacBinance, 0)
	require.Error(t, err)
}

func TestHmacSignerBinanceDeterministic(t *testing.T) {
	s, err := NewHmacSigner("apikey", "secret", HmacBinance, 0)
	require.NoError(t, err)

	first, err := s.SignRequest("GET", "/api/v3/order", "symbol=BTCUSDT", nil, 1700000000000)
	require.NoError(t, err)
	second, err := s.SignRequest("GET", "/api/v3/order", "symbol=BTCUSDT", nil, 1700000000000)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "apikey", first.Headers["X-MBX-APIKEY"])

	var sig string
	for _, kv := range first.SignedParams {
		if kv.Key == "signature" {
			sig = kv.Value
		}
	}
	assert.NotEmpty(t, sig)
}

func TestHmacSignerBinanceDifferentTimestampDifferentSignature(t *testing.T) {
	s, err := NewHmacSigner("apikey", "secret", HmacBinance, 0)
	require.NoError(t, err)

	first, err := s.SignRequest("GET", "/api/v3/order", "symbol=BTCUSDT", nil, 1000)
	require.NoError(t, err)
	second, err := s.SignRequest("GET", "/api/v3/order", "symbol=BTCUSDT", nil, 2000)
	require.NoError(t, err)

	assert.NotEqual(t, first.SignedParams, second.SignedParams)
}

func TestHmacSignerBybitHeadersDeterministic(t *testing.T) {
	s, err := NewHmacSigner("apikey", "secret", HmacBybit, 5000)
	require.NoError(t, err)

	first, err := s.SignRequest("GET", "/v5/order/create", "category=linear", nil, 1700000000000)
	require.NoError(t, err)
	second, err := s.SignRequest("GET", "/v5/order/create", "category=linear", nil, 1700000000000)
	require.NoError(t, err)

	assert.Equal(t, first.Headers, second.Headers)
	assert.Equal(t, "5000", first.Headers["X-BAPI-RECV-WINDOW"])
	assert.Equal(t, "apikey", first.Headers["X-BAPI-API-KEY"])
}

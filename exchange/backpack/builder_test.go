package backpack

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantagefx/exkernel/core/config"
)

func TestBuildWithoutCredentialsSucceeds(t *testing.T) {
	c, err := Build(config.ExchangeConfig{})
	require.NoError(t, err)
	assert.False(t, c.CanAuthenticate())
}

func TestBuildWithCredentialsWiresEd25519Signer(t *testing.T) {
	seed := make([]byte, 32)
	apiKey := config.NewSecretString("verify-key-id")
	secret := config.NewSecretString(base64.StdEncoding.EncodeToString(seed))
	c, err := Build(config.ExchangeConfig{ApiKey: apiKey, SecretKey: secret})
	require.NoError(t, err)
	assert.True(t, c.CanAuthenticate())
}

func TestConvertMarketAppliesDefaultPrecision(t *testing.T) {
	m, err := convertMarket(wireMarket{Symbol: "SOL_USDC", BaseSymbol: "SOL", QuoteSymbol: "USDC", OrderBookState: "Open"})
	require.NoError(t, err)
	assert.Equal(t, "SOL", m.Symbol.Base)
	assert.Equal(t, uint8(8), m.BasePrecision)
}

package paradex

import (
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

func TestBuildWithCredentialsWiresBearerSigner(t *testing.T) {
	apiKey := config.NewSecretString("paradex-account-address")
	secret := config.NewSecretString("c2VjcmV0LXNpZ25pbmcta2V5")
	c, err := Build(config.ExchangeConfig{ApiKey: apiKey, SecretKey: secret})
	require.NoError(t, err)
	assert.True(t, c.CanAuthenticate())
}

func TestConvertMarketParsesBaseAndQuote(t *testing.T) {
	m, err := convertMarket(wireMarket{Symbol: "BTC-USD-PERP", BaseCurrency: "BTC", QuoteCurrency: "USD", Status: "ACTIVE"})
	require.NoError(t, err)
	assert.Equal(t, "BTC", m.Symbol.Base)
	assert.Equal(t, "USD", m.Symbol.Quote)
}

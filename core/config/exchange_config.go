package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ExchangeConfig is the credential and endpoint surface every adapter
// Builder consumes. It never appears in a log line: ApiKey/SecretKey are
// SecretString, and String() below redacts both.
type ExchangeConfig struct {
	Exchange  string
	ApiKey    *SecretString
	SecretKey *SecretString
	Testnet   bool
	BaseURL   string // empty means "use the adapter's compiled-in default"
}

func (c ExchangeConfig) String() string {
	return "config.ExchangeConfig{Exchange: " + c.Exchange + ", ApiKey: [REDACTED], SecretKey: [REDACTED], Testnet: " +
		boolString(c.Testnet) + ", BaseURL: " + c.BaseURL + "}"
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// LoadExchangeConfig reads {EXCHANGE}_API_KEY, {EXCHANGE}_SECRET_KEY,
// {EXCHANGE}_TESTNET, and {EXCHANGE}_BASE_URL, where EXCHANGE is the
// upper-cased exchange name (e.g. "binance" -> BINANCE_API_KEY). It first
// loads a .env file from the working directory if one is present -- a
// missing .env is not an error, since production deployments set the
// environment directly. A missing or empty API key/secret key pair is also
// not an error: it produces a read-only ExchangeConfig whose ApiKey and
// SecretKey are nil, and authenticated calls fail later with AuthError via
// CanAuthenticate/RequireAuth rather than failing to load at all.
func LoadExchangeConfig(exchange string) (ExchangeConfig, error) {
	_ = godotenv.Load()

	prefix := strings.ToUpper(exchange)
	v := viper.New()
	v.SetEnvPrefix(prefix)
	v.AutomaticEnv()
	v.SetDefault("testnet", false)
	v.SetDefault("base_url", "")

	cfg := ExchangeConfig{
		Exchange: exchange,
		Testnet:  v.GetBool("testnet"),
		BaseURL:  v.GetString("base_url"),
	}
	if apiKey := v.GetString("api_key"); apiKey != "" {
		cfg.ApiKey = NewSecretString(apiKey)
	}
	if secretKey := v.GetString("secret_key"); secretKey != "" {
		cfg.SecretKey = NewSecretString(secretKey)
	}
	return cfg, nil
}

package binance

import (
	"github.com/vantagefx/exkernel/adapter/connector"
	"github.com/vantagefx/exkernel/core/config"
	"github.com/vantagefx/exkernel/core/kernel/rest"
	"github.com/vantagefx/exkernel/core/kernel/signer"
	"github.com/vantagefx/exkernel/core/kernel/ws"
)

const (
	defaultRestURL   = "https://api.binance.com"
	testnetRestURL   = "https://testnet.binance.vision"
	defaultStreamURL = "wss://stream.binance.com:9443/stream"
	testnetStreamURL = "wss://testnet.binance.vision/stream"
)

// Connector is the Binance Spot adapter: a generic connector.Connector
// instantiated for Codec's Message type, with Market/Trading/Account
// implemented directly on top of it.
type Connector struct {
	*connector.Connector[Message]
}

func restURL(cfg config.ExchangeConfig) string {
	if cfg.BaseURL != "" {
		return cfg.BaseURL
	}
	if cfg.Testnet {
		return testnetRestURL
	}
	return defaultRestURL
}

func streamURL(cfg config.ExchangeConfig) string {
	if cfg.Testnet {
		return testnetStreamURL
	}
	return defaultStreamURL
}

// Build wires a REST-only Binance connector: a signer is attached only
// when credentials are present, so a Build with an empty ExchangeConfig
// still succeeds and simply fails fast on the first authenticated call.
func Build(cfg config.ExchangeConfig) (*Connector, error) {
	restClient, err := buildRest(cfg)
	if err != nil {
		return nil, err
	}
	base, err := connector.NewBuilder[Message](cfg).
		WithRest(restClient).
		WithBaseURL(restURL(cfg)).
		WithWsURL(streamURL(cfg)).
		Build()
	if err != nil {
		return nil, err
	}
	return &Connector{Connector: base}, nil
}

// BuildWithWebSocket additionally opens a raw (non-reconnecting) WS
// session for streaming market data.
func BuildWithWebSocket(cfg config.ExchangeConfig) (*Connector, error) {
	restClient, err := buildRest(cfg)
	if err != nil {
		return nil, err
	}
	session := ws.NewGorillaSession[Message](streamURL(cfg), "binance", Codec{}, ws.DefaultConfig())
	base, err := connector.NewBuilder[Message](cfg).
		WithRest(restClient).
		WithWs(session).
		WithBaseURL(restURL(cfg)).
		WithWsURL(streamURL(cfg)).
		Build()
	if err != nil {
		return nil, err
	}
	return &Connector{Connector: base}, nil
}

// BuildWithReconnection wraps the raw WS session in ws.ReconnectSession so
// a dropped connection is transparently redialed and re-subscribed.
func BuildWithReconnection(cfg config.ExchangeConfig) (*Connector, error) {
	restClient, err := buildRest(cfg)
	if err != nil {
		return nil, err
	}
	raw := ws.NewGorillaSession[Message](streamURL(cfg), "binance", Codec{}, ws.DefaultConfig())
	session := ws.NewReconnectSession[Message](raw, "binance", 10, 0, 0, true)
	base, err := connector.NewBuilder[Message](cfg).
		WithRest(restClient).
		WithWs(session).
		WithBaseURL(restURL(cfg)).
		WithWsURL(streamURL(cfg)).
		Build()
	if err != nil {
		return nil, err
	}
	return &Connector{Connector: base}, nil
}

// restRegistry shares one *http.Client (and connection pool) across every
// Connector built for the same base URL + credential pair, rather than
// dialing a fresh one per Build call.
var restRegistry = rest.NewRegistry()

// buildRest returns a Clone() of the registry's cached handle: every
// Connector gets its own handle value sharing the one dialed *http.Client
// underneath, rather than every Connector built for the same config
// aliasing the exact same RestClient value.
func buildRest(cfg config.ExchangeConfig) (rest.RestClient, error) {
	signature := restRegistrySignature(cfg)
	shared, err := restRegistry.GetOrCreate(signature, func() (rest.RestClient, error) {
		restCfg := rest.Config{
			BaseURL:        restURL(cfg),
			ExchangeName:   "binance",
			TimeoutSeconds: 30,
			MaxRetries:     3,
		}

		builder := rest.NewBuilder(restCfg)
		if cfg.ApiKey != nil && !cfg.ApiKey.IsEmpty() && cfg.SecretKey != nil && !cfg.SecretKey.IsEmpty() {
			s, err := signer.NewHmacSigner(cfg.ApiKey.Expose(), cfg.SecretKey.Expose(), signer.HmacBinance, 0)
			if err != nil {
				return nil, err
			}
			builder = builder.WithSigner(s)
		}
		return builder.Build()
	})
	if err != nil {
		return nil, err
	}
	return shared.Clone(), nil
}

// restRegistrySignature keys the registry by base URL plus, when present,
// the API key; the secret key is never part of it.
func restRegistrySignature(cfg config.ExchangeConfig) string {
	sig := "binance|" + restURL(cfg)
	if cfg.ApiKey != nil && !cfg.ApiKey.IsEmpty() {
		sig += "|" + cfg.ApiKey.Expose()
	}
	return sig
}

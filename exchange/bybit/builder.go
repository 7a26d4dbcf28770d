package bybit

import (
	"github.com/vantagefx/exkernel/adapter/connector"
	"github.com/vantagefx/exkernel/core/config"
	"github.com/vantagefx/exkernel/core/kernel/rest"
	"github.com/vantagefx/exkernel/core/kernel/signer"
	"github.com/vantagefx/exkernel/core/kernel/ws"
)

const (
	categorySpot   = "spot"
	categoryLinear = "linear"

	defaultRestURL = "https://api.bybit.com"
	testnetRestURL = "https://api-testnet.bybit.com"

	spotStreamURL          = "wss://stream.bybit.com/v5/public/spot"
	spotTestnetStreamURL   = "wss://stream-testnet.bybit.com/v5/public/spot"
	linearStreamURL        = "wss://stream.bybit.com/v5/public/linear"
	linearTestnetStreamURL = "wss://stream-testnet.bybit.com/v5/public/linear"

	defaultRecvWindowMs = 5000
)

// Connector is the Bybit v5 adapter. Category selects spot or linear
// perpetual at build time; both share the same REST host and signing
// convention, differing only in the category query/body field and the
// public WebSocket path.
type Connector struct {
	*connector.Connector[Message]
	Category string
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

func streamURL(cfg config.ExchangeConfig, category string) string {
	if category == categoryLinear {
		if cfg.Testnet {
			return linearTestnetStreamURL
		}
		return linearStreamURL
	}
	if cfg.Testnet {
		return spotTestnetStreamURL
	}
	return spotStreamURL
}

// BuildSpot wires a REST-only Bybit spot connector.
func BuildSpot(cfg config.ExchangeConfig) (*Connector, error) {
	return build(cfg, categorySpot, false)
}

// BuildLinearPerpetual wires a REST-only Bybit USDT-margined linear
// perpetual connector (FundingRateSource-capable, unlike BuildSpot).
func BuildLinearPerpetual(cfg config.ExchangeConfig) (*Connector, error) {
	return build(cfg, categoryLinear, false)
}

// BuildSpotWithReconnection additionally opens a self-healing WS session
// for streaming spot market data.
func BuildSpotWithReconnection(cfg config.ExchangeConfig) (*Connector, error) {
	return build(cfg, categorySpot, true)
}

// BuildLinearPerpetualWithReconnection is BuildLinearPerpetual plus a
// self-healing WS session for the linear public stream.
func BuildLinearPerpetualWithReconnection(cfg config.ExchangeConfig) (*Connector, error) {
	return build(cfg, categoryLinear, true)
}

func build(cfg config.ExchangeConfig, category string, withWs bool) (*Connector, error) {
	restClient, err := buildRest(cfg)
	if err != nil {
		return nil, err
	}

	b := connector.NewBuilder[Message](cfg).
		WithRest(restClient).
		WithBaseURL(restURL(cfg)).
		WithWsURL(streamURL(cfg, category))

	if withWs {
		raw := ws.NewGorillaSession[Message](streamURL(cfg, category), "bybit-"+category, Codec{}, ws.DefaultConfig())
		session := ws.NewReconnectSession[Message](raw, "bybit-"+category, 10, 0, 0, true)
		b = b.WithWs(session)
	}

	base, err := b.Build()
	if err != nil {
		return nil, err
	}
	return &Connector{Connector: base, Category: category}, nil
}

// restRegistry shares one *http.Client across every Connector built for
// the same base URL + credential pair; buildRest hands back a Clone() of
// the cached handle so each Connector still owns its own RestClient value.
var restRegistry = rest.NewRegistry()

func buildRest(cfg config.ExchangeConfig) (rest.RestClient, error) {
	signature := "bybit|" + restURL(cfg)
	if cfg.ApiKey != nil && !cfg.ApiKey.IsEmpty() {
		signature += "|" + cfg.ApiKey.Expose()
	}

	shared, err := restRegistry.GetOrCreate(signature, func() (rest.RestClient, error) {
		restCfg := rest.Config{
			BaseURL:        restURL(cfg),
			ExchangeName:   "bybit",
			TimeoutSeconds: 30,
			MaxRetries:     3,
		}

		builder := rest.NewBuilder(restCfg)
		if cfg.ApiKey != nil && !cfg.ApiKey.IsEmpty() && cfg.SecretKey != nil && !cfg.SecretKey.IsEmpty() {
			s, err := signer.NewHmacSigner(cfg.ApiKey.Expose(), cfg.SecretKey.Expose(), signer.HmacBybit, defaultRecvWindowMs)
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

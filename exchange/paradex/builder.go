package paradex

import (
	"time"

	"github.com/vantagefx/exkernel/adapter/connector"
	"github.com/vantagefx/exkernel/core/config"
	"github.com/vantagefx/exkernel/core/kernel/rest"
	"github.com/vantagefx/exkernel/core/kernel/signer"
	"github.com/vantagefx/exkernel/core/kernel/ws"
)

const (
	defaultRestURL   = "https://api.paradex.trade/v1"
	defaultStreamURL = "wss://ws.paradex.trade/v1"

	bearerTTL = 30 * time.Second
)

// Connector is the Paradex adapter shell: enough wiring to prove the
// bearer-JWT signer variant and FundingRateSource compile and flow through
// the generic builder. Paradex's real StarkNet L2 signature, wrapped by its
// own JWT minting, is explicitly out of scope.
type Connector struct {
	*connector.Connector[Message]
}

func restURL(cfg config.ExchangeConfig) string {
	if cfg.BaseURL != "" {
		return cfg.BaseURL
	}
	return defaultRestURL
}

func streamURL(cfg config.ExchangeConfig) string {
	return defaultStreamURL
}

// Build wires a REST-only connector.
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

// BuildWithReconnection additionally opens a self-healing WS session.
func BuildWithReconnection(cfg config.ExchangeConfig) (*Connector, error) {
	restClient, err := buildRest(cfg)
	if err != nil {
		return nil, err
	}
	raw := ws.NewGorillaSession[Message](streamURL(cfg), "paradex", Codec{}, ws.DefaultConfig())
	session := ws.NewReconnectSession[Message](raw, "paradex", 10, 0, 0, true)
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

var restRegistry = rest.NewRegistry()

func buildRest(cfg config.ExchangeConfig) (rest.RestClient, error) {
	signature := "paradex|" + restURL(cfg)
	if cfg.ApiKey != nil && !cfg.ApiKey.IsEmpty() {
		signature += "|" + cfg.ApiKey.Expose()
	}

	shared, err := restRegistry.GetOrCreate(signature, func() (rest.RestClient, error) {
		restCfg := rest.Config{
			BaseURL:        restURL(cfg),
			ExchangeName:   "paradex",
			TimeoutSeconds: 30,
			MaxRetries:     3,
		}
		builder := rest.NewBuilder(restCfg)
		if cfg.ApiKey != nil && !cfg.ApiKey.IsEmpty() && cfg.SecretKey != nil && !cfg.SecretKey.IsEmpty() {
			s, err := signer.NewJwtSigner(cfg.ApiKey.Expose(), []byte(cfg.SecretKey.Expose()), bearerTTL)
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

package backpack

import (
	"github.com/vantagefx/exkernel/adapter/connector"
	"github.com/vantagefx/exkernel/core/config"
	"github.com/vantagefx/exkernel/core/kernel/rest"
	"github.com/vantagefx/exkernel/core/kernel/signer"
	"github.com/vantagefx/exkernel/core/kernel/ws"
)

const (
	defaultRestURL   = "https://api.backpack.exchange"
	defaultStreamURL = "wss://ws.backpack.exchange"

	defaultWindowMs = 5000
)

// Connector is the Backpack adapter shell: enough wiring to prove the
// Ed25519 signer variant compiles and flows through the generic builder.
// Backpack's real wire dialect is explicitly out of scope.
type Connector struct {
	*connector.Connector[Message]
}

func restURL(cfg config.ExchangeConfig) string {
	if cfg.BaseURL != "" {
		return cfg.BaseURL
	}
	return defaultRestURL
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
		WithWsURL(defaultStreamURL).
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
	raw := ws.NewGorillaSession[Message](defaultStreamURL, "backpack", Codec{}, ws.DefaultConfig())
	session := ws.NewReconnectSession[Message](raw, "backpack", 10, 0, 0, true)
	base, err := connector.NewBuilder[Message](cfg).
		WithRest(restClient).
		WithWs(session).
		WithBaseURL(restURL(cfg)).
		WithWsURL(defaultStreamURL).
		Build()
	if err != nil {
		return nil, err
	}
	return &Connector{Connector: base}, nil
}

var restRegistry = rest.NewRegistry()

// buildRest gates the Ed25519 signer on both ApiKey and SecretKey being
// present, matching connector.Connector.CanAuthenticate's guard, even
// though Ed25519Signer itself derives its verify key from SecretKey alone.
func buildRest(cfg config.ExchangeConfig) (rest.RestClient, error) {
	signature := "backpack|" + restURL(cfg)
	if cfg.ApiKey != nil && !cfg.ApiKey.IsEmpty() {
		signature += "|" + cfg.ApiKey.Expose()
	}

	shared, err := restRegistry.GetOrCreate(signature, func() (rest.RestClient, error) {
		restCfg := rest.Config{
			BaseURL:        restURL(cfg),
			ExchangeName:   "backpack",
			TimeoutSeconds: 30,
			MaxRetries:     3,
		}
		builder := rest.NewBuilder(restCfg)
		if cfg.ApiKey != nil && !cfg.ApiKey.IsEmpty() && cfg.SecretKey != nil && !cfg.SecretKey.IsEmpty() {
			s, err := signer.NewEd25519Signer(cfg.SecretKey.Expose(), defaultWindowMs)
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

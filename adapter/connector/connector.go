// Package connector assembles the generic composition every adapter is
// built from: a shared REST handle, an optional WebSocket session, and the
// exchange configuration that decided how they were signed. Individual
// exchange packages embed Connector[M] and add the trait implementations
// (MarketDataSource, OrderPlacer, AccountInfo, FundingRateSource) their
// venue actually supports.
package connector

import (
	"sync"

	"github.com/vantagefx/exkernel/core/config"
	"github.com/vantagefx/exkernel/core/kernel/rest"
	"github.com/vantagefx/exkernel/core/kernel/ws"
	"github.com/vantagefx/exkernel/core/types"
)

// Connector holds the pieces shared across an adapter's Market/Trading/
// Account components: one REST handle (cloned cheaply via rest.Registry),
// an optional WebSocket session for streaming, and the resolved
// configuration (testnet flag, base URL, credentials).
type Connector[M any] struct {
	Rest    rest.RestClient
	Ws      ws.WsSession[M]
	Config  config.ExchangeConfig
	BaseURL string
	WsURL   string

	subMu      sync.Mutex
	subscribed []string
}

// CanAuthenticate reports whether credentials were supplied, mirroring the
// guard every authenticated REST call makes before hitting the network.
func (c *Connector[M]) CanAuthenticate() bool {
	return c.Config.ApiKey != nil && !c.Config.ApiKey.IsEmpty() &&
		c.Config.SecretKey != nil && !c.Config.SecretKey.IsEmpty()
}

func (c *Connector[M]) GetWebSocketURL() string { return c.WsURL }

// requireAuth is the shared guard every OrderPlacer/AccountInfo method
// calls first, so a missing credential fails before any network I/O.
func (c *Connector[M]) requireAuth() error {
	if !c.CanAuthenticate() {
		return types.NewAuthError("missing API credentials for this operation")
	}
	return nil
}

// RequireAuth exposes requireAuth to sibling exchange packages, which live
// outside this package but still need the same fast-fail guard.
func (c *Connector[M]) RequireAuth() error { return c.requireAuth() }

// IsWebSocketConnected reports false when no session was ever configured.
func (c *Connector[M]) IsWebSocketConnected() bool {
	return c.Ws != nil && c.Ws.IsConnected()
}

// SubscribeIncremental subscribes to only the streams this Connector has
// not already subscribed to (via ws.DiffStreams), so a second
// SubscribeMarketData call for an overlapping symbol set doesn't resend
// subscriptions the session already has open.
func (c *Connector[M]) SubscribeIncremental(streams []string) error {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	added := ws.DiffStreams(streams, c.subscribed)
	if len(added) == 0 {
		return nil
	}
	if err := c.Ws.Subscribe(added); err != nil {
		return err
	}
	c.subscribed = append(c.subscribed, added...)
	return nil
}

// Builder wires a Connector[M] from a REST client, an optional WS session,
// and resolved config. Each exchange package's own Builder wraps this one
// with venue-specific defaults (signer construction, base URL selection).
type Builder[M any] struct {
	rest    rest.RestClient
	ws      ws.WsSession[M]
	cfg     config.ExchangeConfig
	baseURL string
	wsURL   string
}

func NewBuilder[M any](cfg config.ExchangeConfig) *Builder[M] {
	return &Builder[M]{cfg: cfg}
}

func (b *Builder[M]) WithRest(r rest.RestClient) *Builder[M] {
	b.rest = r
	return b
}

func (b *Builder[M]) WithWs(session ws.WsSession[M]) *Builder[M] {
	b.ws = session
	return b
}

func (b *Builder[M]) WithBaseURL(url string) *Builder[M] {
	b.baseURL = url
	return b
}

func (b *Builder[M]) WithWsURL(url string) *Builder[M] {
	b.wsURL = url
	return b
}

func (b *Builder[M]) Build() (*Connector[M], error) {
	if b.rest == nil {
		return nil, types.NewConfigurationError("connector requires a REST client")
	}
	return &Connector[M]{
		Rest:    b.rest,
		Ws:      b.ws,
		Config:  b.cfg,
		BaseURL: b.baseURL,
		WsURL:   b.wsURL,
	}, nil
}

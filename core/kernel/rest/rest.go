// Package rest defines the exchange-agnostic HTTP contract every REST
// implementation of a venue's spot/futures API is built on: typed JSON
// helpers for the common case, and a dynamic-value variant for the long
// tail of fields adapters don't want a struct for.
package rest

import (
	"context"
	"time"

	"github.com/bitly/go-simplejson"

	"github.com/vantagefx/exkernel/core/kernel/signer"
)

// RestClient is the unified HTTP surface every adapter's Market/Trading/
// Account component is built on. GetJSON/PostJSON/PutJSON/DeleteJSON
// unmarshal into a caller-supplied pointer; Get/Post/Put/Delete return a
// dynamic *simplejson.Json for responses not worth a struct.
type RestClient interface {
	GetJSON(ctx context.Context, endpoint string, query []signer.KV, authenticated bool, out interface{}) error
	PostJSON(ctx context.Context, endpoint string, body []byte, authenticated bool, out interface{}) error
	PutJSON(ctx context.Context, endpoint string, body []byte, authenticated bool, out interface{}) error
	DeleteJSON(ctx context.Context, endpoint string, query []signer.KV, authenticated bool, out interface{}) error

	Get(ctx context.Context, endpoint string, query []signer.KV, authenticated bool) (*simplejson.Json, error)
	Post(ctx context.Context, endpoint string, body []byte, authenticated bool) (*simplejson.Json, error)
	Put(ctx context.Context, endpoint string, body []byte, authenticated bool) (*simplejson.Json, error)
	Delete(ctx context.Context, endpoint string, query []signer.KV, authenticated bool) (*simplejson.Json, error)

	// SignedRequest exposes an arbitrary method for venues whose REST API
	// doesn't fit neatly into GET/POST/PUT/DELETE (e.g. Binance's
	// DELETE-with-body cancel-all).
	SignedRequest(ctx context.Context, method, endpoint string, query []signer.KV, body []byte) (*simplejson.Json, error)

	// Clone returns a lightweight handle sharing the same underlying
	// *http.Client and connection pool; the adapters hand each connector
	// built from one Registry entry its own clone.
	Clone() RestClient
}

// Config configures a RestClient. Zero values for TimeoutSeconds,
// UserAgent, RetryBaseDelay, and RetryMaxDelay are replaced with sane
// defaults in Builder.Build and New. MaxRetries is used as given: zero
// means a single attempt with no retry.
type Config struct {
	BaseURL       string
	ExchangeName  string
	TimeoutSeconds int
	MaxRetries    int
	UserAgent     string

	// RetryBaseDelay and RetryMaxDelay control the exponential backoff
	// applied between retry attempts, doubling each attempt and capping at
	// RetryMaxDelay, mirroring the ws reconnect wrapper's own backoff.
	RetryBaseDelay time.Duration
	RetryMaxDelay  time.Duration
}

func (c Config) withDefaults() Config {
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 30
	}
	if c.UserAgent == "" {
		c.UserAgent = "exkernel/1.0"
	}
	if c.RetryBaseDelay <= 0 {
		c.RetryBaseDelay = 500 * time.Millisecond
	}
	if c.RetryMaxDelay <= 0 {
		c.RetryMaxDelay = 10 * time.Second
	}
	return c
}

// Builder assembles a RestClient from a Config and an optional Signer.
type Builder struct {
	cfg    Config
	signer signer.Signer
}

func NewBuilder(cfg Config) *Builder {
	return &Builder{cfg: cfg}
}

func (b *Builder) WithSigner(s signer.Signer) *Builder {
	b.signer = s
	return b
}

// Build constructs the net/http-backed RestClient. Unlike New, Build does
// NOT default a missing signer to signer.NoopSigner{}: a Builder built
// without WithSigner leaves authenticated calls failing fast with an
// AuthError and no network round trip, instead of an unsigned request
// that the venue answers with a 401. Build itself never returns an error.
func (b *Builder) Build() (RestClient, error) {
	cfg := b.cfg.withDefaults()
	return newHTTPRestClient(cfg, b.signer), nil
}

// New builds a RestClient the way most adapters want it: a nil signer
// silently becomes signer.NoopSigner{}, so public-only adapters (or a
// component that only ever calls unauthenticated endpoints) don't have to
// construct one.
func New(cfg Config, s signer.Signer) RestClient {
	if s == nil {
		s = signer.NoopSigner{}
	}
	return newHTTPRestClient(cfg.withDefaults(), s)
}

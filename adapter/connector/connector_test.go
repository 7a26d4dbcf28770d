package connector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitly/go-simplejson"

	"github.com/vantagefx/exkernel/core/config"
	"github.com/vantagefx/exkernel/core/kernel/codec"
	"github.com/vantagefx/exkernel/core/kernel/rest"
	"github.com/vantagefx/exkernel/core/kernel/signer"
	"github.com/vantagefx/exkernel/core/types"
)

type noopRest struct{}

func (noopRest) GetJSON(context.Context, string, []signer.KV, bool, interface{}) error    { return nil }
func (noopRest) PostJSON(context.Context, string, []byte, bool, interface{}) error        { return nil }
func (noopRest) PutJSON(context.Context, string, []byte, bool, interface{}) error         { return nil }
func (noopRest) DeleteJSON(context.Context, string, []signer.KV, bool, interface{}) error { return nil }

func (noopRest) Get(context.Context, string, []signer.KV, bool) (*simplejson.Json, error) {
	return nil, nil
}
func (noopRest) Post(context.Context, string, []byte, bool) (*simplejson.Json, error) {
	return nil, nil
}
func (noopRest) Put(context.Context, string, []byte, bool) (*simplejson.Json, error) {
	return nil, nil
}
func (noopRest) Delete(context.Context, string, []signer.KV, bool) (*simplejson.Json, error) {
	return nil, nil
}
func (noopRest) SignedRequest(context.Context, string, string, []signer.KV, []byte) (*simplejson.Json, error) {
	return nil, nil
}
func (noopRest) Clone() rest.RestClient { return noopRest{} }

var _ rest.RestClient = noopRest{}

type fakeWsSession struct {
	subscribeCalls [][]string
}

func (f *fakeWsSession) Connect(context.Context) error { return nil }
func (f *fakeWsSession) SendRaw(codec.Frame) error      { return nil }
func (f *fakeWsSession) NextRaw(context.Context) (codec.Frame, bool, error) {
	return codec.Frame{}, true, nil
}
func (f *fakeWsSession) Close() error      { return nil }
func (f *fakeWsSession) IsConnected() bool { return true }
func (f *fakeWsSession) Subscribe(streams []string) error {
	f.subscribeCalls = append(f.subscribeCalls, append([]string(nil), streams...))
	return nil
}
func (f *fakeWsSession) Unsubscribe([]string) error { return nil }
func (f *fakeWsSession) NextMessage(context.Context) (string, bool, error) {
	return "", true, nil
}

func TestCanAuthenticateRequiresBothKeys(t *testing.T) {
	c := &Connector[string]{Config: config.ExchangeConfig{}}
	assert.False(t, c.CanAuthenticate())

	c.Config.ApiKey = config.NewSecretString("key")
	assert.False(t, c.CanAuthenticate())

	c.Config.SecretKey = config.NewSecretString("secret")
	assert.True(t, c.CanAuthenticate())
}

func TestCanAuthenticateRejectsEmptySecretString(t *testing.T) {
	c := &Connector[string]{Config: config.ExchangeConfig{
		ApiKey:    config.NewSecretString(""),
		SecretKey: config.NewSecretString(""),
	}}
	assert.False(t, c.CanAuthenticate())
}

func TestRequireAuthFailsWithoutCredentials(t *testing.T) {
	c := &Connector[string]{}
	err := c.RequireAuth()
	require.Error(t, err)
	assert.Equal(t, types.KindAuth, types.KindOf(err))
}

func TestRequireAuthSucceedsWithCredentials(t *testing.T) {
	c := &Connector[string]{Config: config.ExchangeConfig{
		ApiKey:    config.NewSecretString("key"),
		SecretKey: config.NewSecretString("secret"),
	}}
	require.NoError(t, c.RequireAuth())
}

func TestSubscribeIncrementalOnlySendsNewStreams(t *testing.T) {
	fake := &fakeWsSession{}
	c := &Connector[string]{Ws: fake}

	require.NoError(t, c.SubscribeIncremental([]string{"btcusdt@trade", "ethusdt@trade"}))
	require.NoError(t, c.SubscribeIncremental([]string{"ethusdt@trade", "bnbusdt@trade"}))

	require.Len(t, fake.subscribeCalls, 2)
	assert.ElementsMatch(t, []string{"btcusdt@trade", "ethusdt@trade"}, fake.subscribeCalls[0])
	assert.ElementsMatch(t, []string{"bnbusdt@trade"}, fake.subscribeCalls[1])
}

func TestSubscribeIncrementalNoOpWhenNothingNew(t *testing.T) {
	fake := &fakeWsSession{}
	c := &Connector[string]{Ws: fake}

	require.NoError(t, c.SubscribeIncremental([]string{"btcusdt@trade"}))
	require.NoError(t, c.SubscribeIncremental([]string{"btcusdt@trade"}))

	assert.Len(t, fake.subscribeCalls, 1)
}

func TestBuilderRequiresRestClient(t *testing.T) {
	_, err := NewBuilder[string](config.ExchangeConfig{}).Build()
	require.Error(t, err)
	assert.Equal(t, types.KindConfiguration, types.KindOf(err))
}

func TestBuilderAssemblesConnector(t *testing.T) {
	fake := &fakeWsSession{}
	c, err := NewBuilder[string](config.ExchangeConfig{Exchange: "test"}).
		WithRest(noopRest{}).
		WithWs(fake).
		WithBaseURL("https://example.invalid").
		WithWsURL("wss://example.invalid").
		Build()
	require.NoError(t, err)
	assert.Equal(t, "https://example.invalid", c.BaseURL)
	assert.Equal(t, "wss://example.invalid", c.WsURL)
	assert.True(t, c.IsWebSocketConnected())
}

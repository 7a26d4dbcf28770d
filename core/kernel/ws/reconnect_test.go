package ws

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantagefx/exkernel/core/kernel/codec"
	"github.com/vantagefx/exkernel/core/types"
)

// fakeSession is a WsSession[string] double whose Connect call can be
// scripted to fail a fixed number of times before succeeding (or to fail
// forever), and which records every Subscribe call so reconnect-driven
// resubscription can be asserted on directly.
type fakeSession struct {
	mu sync.Mutex

	connected     bool
	failNextN     int
	subscribeCalls [][]string
}

func (f *fakeSession) Connect(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNextN > 0 {
		f.failNextN--
		return types.NewNetworkError("dial failed", nil)
	}
	f.connected = true
	return nil
}

func (f *fakeSession) SendRaw(codec.Frame) error { return nil }

func (f *fakeSession) NextRaw(context.Context) (codec.Frame, bool, error) {
	return codec.Frame{}, true, nil
}

func (f *fakeSession) Close() error {
	f.mu.Lock()
	f.connected = false
	f.mu.Unlock()
	return nil
}

func (f *fakeSession) IsConnected() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.connected
}

func (f *fakeSession) Subscribe(streams []string) error {
	f.mu.Lock()
	f.subscribeCalls = append(f.subscribeCalls, append([]string(nil), streams...))
	f.mu.Unlock()
	return nil
}

func (f *fakeSession) Unsubscribe([]string) error { return nil }

func (f *fakeSession) NextMessage(context.Context) (string, bool, error) {
	return "", true, nil
}

func TestReconnectSessionSubscribeMergesAcrossCalls(t *testing.T) {
	inner := &fakeSession{connected: true}
	r := NewReconnectSession[string](inner, "test", 3, time.Millisecond, time.Millisecond, true)

	require.NoError(t, r.Subscribe([]string{"btcusdt@ticker"}))
	require.NoError(t, r.Subscribe([]string{"ethusdt@ticker"}))

	r.mu.Lock()
	streams := append([]string(nil), r.streams...)
	r.mu.Unlock()
	assert.ElementsMatch(t, []string{"btcusdt@ticker", "ethusdt@ticker"}, streams)
}

func TestReconnectSessionSubscribeDedupes(t *testing.T) {
	inner := &fakeSession{connected: true}
	r := NewReconnectSession[string](inner, "test", 3, time.Millisecond, time.Millisecond, true)

	require.NoError(t, r.Subscribe([]string{"btcusdt@ticker"}))
	require.NoError(t, r.Subscribe([]string{"btcusdt@ticker", "ethusdt@ticker"}))

	r.mu.Lock()
	streams := append([]string(nil), r.streams...)
	r.mu.Unlock()
	assert.ElementsMatch(t, []string{"btcusdt@ticker", "ethusdt@ticker"}, streams)
}

func TestReconnectSessionUnsubscribeSubtracts(t *testing.T) {
	inner := &fakeSession{connected: true}
	r := NewReconnectSession[string](inner, "test", 3, time.Millisecond, time.Millisecond, true)

	require.NoError(t, r.Subscribe([]string{"a", "b", "c"}))
	require.NoError(t, r.Unsubscribe([]string{"b"}))

	r.mu.Lock()
	streams := append([]string(nil), r.streams...)
	r.mu.Unlock()
	assert.ElementsMatch(t, []string{"a", "c"}, streams)
}

func TestReconnectSessionResubscribesFullTrackedSetAfterReconnect(t *testing.T) {
	inner := &fakeSession{connected: true}
	r := NewReconnectSession[string](inner, "test", 3, time.Millisecond, time.Millisecond, true)

	require.NoError(t, r.Subscribe([]string{"btcusdt@ticker"}))
	require.NoError(t, r.Subscribe([]string{"ethusdt@ticker"}))

	inner.mu.Lock()
	inner.connected = false
	inner.mu.Unlock()

	require.NoError(t, r.attemptReconnect(context.Background()))

	inner.mu.Lock()
	defer inner.mu.Unlock()
	require.NotEmpty(t, inner.subscribeCalls)
	last := inner.subscribeCalls[len(inner.subscribeCalls)-1]
	assert.ElementsMatch(t, []string{"btcusdt@ticker", "ethusdt@ticker"}, last)
}

func TestReconnectSessionTerminatesAfterMaxAttempts(t *testing.T) {
	inner := &fakeSession{failNextN: 100}
	r := NewReconnectSession[string](inner, "test", 3, time.Millisecond, time.Millisecond, false)

	err := r.attemptReconnect(context.Background())
	require.Error(t, err)
	assert.Equal(t, types.KindWebSocket, types.KindOf(err))
	assert.Equal(t, StateTerminated, r.State())
}

func TestReconnectSessionRecoversWithinMaxAttempts(t *testing.T) {
	inner := &fakeSession{failNextN: 2}
	r := NewReconnectSession[string](inner, "test", 5, time.Millisecond, time.Millisecond, false)

	require.NoError(t, r.attemptReconnect(context.Background()))
	assert.Equal(t, StateConnected, r.State())
}

func TestReconnectSessionNextMessageAfterCloseReturnsFalseNilErrorWithoutRedialing(t *testing.T) {
	inner := &fakeSession{connected: true}
	r := NewReconnectSession[string](inner, "test", 3, time.Millisecond, time.Millisecond, false)
	require.NoError(t, r.Close())

	msg, ok, err := r.NextMessage(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "", msg)
	assert.Equal(t, StateTerminated, r.State())
}

func TestReconnectSessionNextRawAfterCloseReturnsFalseNilErrorWithoutRedialing(t *testing.T) {
	inner := &fakeSession{connected: true}
	r := NewReconnectSession[string](inner, "test", 3, time.Millisecond, time.Millisecond, false)
	require.NoError(t, r.Close())

	frame, ok, err := r.NextRaw(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, codec.Frame{}, frame)
}

func TestReconnectSessionSendRawAfterCloseFailsWithoutRedialing(t *testing.T) {
	inner := &fakeSession{connected: true}
	r := NewReconnectSession[string](inner, "test", 3, time.Millisecond, time.Millisecond, false)
	require.NoError(t, r.Close())

	err := r.SendRaw(codec.Frame{})
	require.Error(t, err)
	assert.Equal(t, types.KindWebSocket, types.KindOf(err))
}

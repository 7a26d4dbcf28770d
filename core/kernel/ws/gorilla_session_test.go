package ws

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantagefx/exkernel/core/kernel/codec"
)

// fakeCodec drops any frame whose payload is "ping", mirroring a venue that
// ships heartbeat frames inside ordinary text frames rather than as
// WebSocket control frames.
type fakeCodec struct{}

func (fakeCodec) EncodeSubscription([]string) (codec.Frame, error)   { return codec.Frame{}, nil }
func (fakeCodec) EncodeUnsubscription([]string) (codec.Frame, error) { return codec.Frame{}, nil }

func (fakeCodec) DecodeMessage(frame codec.Frame) (string, bool, error) {
	if string(frame.Payload) == "ping" {
		return "", false, nil
	}
	return string(frame.Payload), true, nil
}

func newTestGorillaSession() *GorillaSession[string] {
	s := NewGorillaSession[string]("wss://example.invalid", "test", fakeCodec{}, DefaultConfig())
	s.readCh = make(chan frameResult, 4)
	return s
}

func TestGorillaSessionNextMessageSkipsDroppedFrames(t *testing.T) {
	s := newTestGorillaSession()
	s.readCh <- frameResult{frame: codec.Frame{Payload: []byte("ping")}}
	s.readCh <- frameResult{frame: codec.Frame{Payload: []byte("trade")}}

	msg, ok, err := s.NextMessage(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "trade", msg)
}

func TestGorillaSessionNextMessageAfterCleanCloseReturnsFalseNilError(t *testing.T) {
	s := newTestGorillaSession()
	close(s.readCh)

	msg, ok, err := s.NextMessage(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "", msg)
}

func TestGorillaSessionNextRawAfterCleanCloseReturnsFalseNilError(t *testing.T) {
	s := newTestGorillaSession()
	close(s.readCh)

	frame, ok, err := s.NextRaw(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, codec.Frame{}, frame)
}

// TestGorillaSessionCloseYieldsCleanEndOfStream exercises the real Close()
// code path against a real connection rather than a directly-closed readCh:
// the server never sends a close frame back, so readLoop's blocked
// ReadMessage fails with a local "use of closed network connection" error
// that gorilla's own IsCloseError does not classify as a close. A deliberate
// Close() must still surface as (_, false, nil), matching a close frame from
// the peer, per the "next_message() after close() yields None" contract.
func TestGorillaSessionCloseYieldsCleanEndOfStream(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		// Hold the connection open without ever writing a close frame back,
		// so the client's Close() races the network rather than completing
		// a clean handshake.
		select {}
	}))
	defer srv.Close()

	wsURL := "ws" + srv.URL[len("http"):]
	s := NewGorillaSession[string](wsURL, "test", fakeCodec{}, DefaultConfig())
	require.NoError(t, s.Connect(context.Background()))

	require.NoError(t, s.Close())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	msg, ok, err := s.NextMessage(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "", msg)
}

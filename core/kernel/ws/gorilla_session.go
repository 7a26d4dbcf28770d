package ws

import (
	"context"
	"crypto/tls"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vantagefx/exkernel/core/kernel/codec"
	"github.com/vantagefx/exkernel/core/log"
	"github.com/vantagefx/exkernel/core/types"
)

// Config tunes GorillaSession's dial and heartbeat behavior.
type Config struct {
	ConnectTimeout   time.Duration
	PingInterval     time.Duration // 0 disables the client-initiated ping ticker
	MessageBufferLen int
}

func DefaultConfig() Config {
	return Config{
		ConnectTimeout:   10 * time.Second,
		PingInterval:     30 * time.Second,
		MessageBufferLen: 256,
	}
}

type frameResult struct {
	frame codec.Frame
	err   error
}

// GorillaSession is the gorilla/websocket-backed WsSession. Ping frames
// received from the peer are answered with a pong automatically (mirroring
// the transport-level auto-reply spec.md requires) and never reach
// NextRaw/NextMessage; gorilla handles control frames through its ping,
// pong and close handlers and never returns them from ReadMessage, so the
// read loop below only ever forwards data frames.
type GorillaSession[M any] struct {
	url    string
	name   string
	codec  codec.WsCodec[M]
	config Config

	mu        sync.Mutex
	conn      *websocket.Conn
	connected atomic.Bool
	closed    atomic.Bool
	readCh    chan frameResult
	closeOnce sync.Once
	stopPing  chan struct{}
}

func NewGorillaSession[M any](url, name string, c codec.WsCodec[M], config Config) *GorillaSession[M] {
	return &GorillaSession[M]{url: url, name: name, codec: c, config: config}
}

func (s *GorillaSession[M]) Connect(ctx context.Context) error {
	dialer := *websocket.DefaultDialer
	dialer.HandshakeTimeout = s.config.ConnectTimeout
	dialer.TLSClientConfig = &tls.Config{}

	conn, _, err := dialer.DialContext(ctx, s.url, nil)
	if err != nil {
		return types.NewNetworkError("websocket connect failed: "+err.Error(), err)
	}

	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()
	s.connected.Store(true)
	s.closed.Store(false)

	conn.SetPongHandler(func(string) error { return nil })

	s.readCh = make(chan frameResult, s.config.MessageBufferLen)
	s.stopPing = make(chan struct{})
	s.closeOnce = sync.Once{}

	go s.readLoop(conn)
	if s.config.PingInterval > 0 {
		go s.pingLoop(conn, s.stopPing)
	}

	log.Wss.Infof("%s connected to %s", s.name, s.url)
	return nil
}

func (s *GorillaSession[M]) readLoop(conn *websocket.Conn) {
	for {
		msgType, payload, err := conn.ReadMessage()
		if err != nil {
			s.connected.Store(false)
			// A deliberate Close() races this read against the peer's close
			// handshake: conn.Close() usually wins, and ReadMessage reports a
			// generic "use of closed network connection" error rather than a
			// classifiable close frame. s.closed distinguishes that expected
			// local teardown from a real transport failure so NextRaw always
			// reports a deliberate close as (_, false, nil).
			if !s.closed.Load() && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.readCh <- frameResult{err: types.NewWebSocketError("websocket read failed: " + err.Error())}
			}
			close(s.readCh)
			return
		}
		s.readCh <- frameResult{frame: codec.Frame{Type: msgType, Payload: payload}}
	}
}

func (s *GorillaSession[M]) pingLoop(conn *websocket.Conn, stop chan struct{}) {
	ticker := time.NewTicker(s.config.PingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			deadline := time.Now().Add(s.config.PingInterval)
			s.mu.Lock()
			err := conn.WriteControl(websocket.PingMessage, nil, deadline)
			s.mu.Unlock()
			if err != nil {
				log.Wss.Warnf("%s ping failed: %v", s.name, err)
				s.connected.Store(false)
				return
			}
		}
	}
}

func (s *GorillaSession[M]) SendRaw(frame codec.Frame) error {
	if !s.IsConnected() {
		return types.NewWebSocketError("websocket not connected")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.conn.WriteMessage(frame.Type, frame.Payload); err != nil {
		s.connected.Store(false)
		return types.NewWebSocketError("failed to send websocket frame: " + err.Error())
	}
	return nil
}

func (s *GorillaSession[M]) NextRaw(ctx context.Context) (codec.Frame, bool, error) {
	select {
	case <-ctx.Done():
		return codec.Frame{}, false, types.NewWebSocketError("context cancelled waiting for frame")
	case res, ok := <-s.readCh:
		if !ok {
			return codec.Frame{}, false, nil
		}
		if res.err != nil {
			return codec.Frame{}, false, res.err
		}
		return res.frame, true, nil
	}
}

func (s *GorillaSession[M]) Close() error {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		s.connected.Store(false)
		if s.stopPing != nil {
			close(s.stopPing)
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.conn != nil {
			_ = s.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(time.Second))
			_ = s.conn.Close()
		}
	})
	return nil
}

func (s *GorillaSession[M]) IsConnected() bool { return s.connected.Load() }

func (s *GorillaSession[M]) Subscribe(streams []string) error {
	if len(streams) == 0 {
		return nil
	}
	frame, err := s.codec.EncodeSubscription(streams)
	if err != nil {
		return err
	}
	return s.SendRaw(frame)
}

func (s *GorillaSession[M]) Unsubscribe(streams []string) error {
	if len(streams) == 0 {
		return nil
	}
	frame, err := s.codec.EncodeUnsubscription(streams)
	if err != nil {
		return err
	}
	return s.SendRaw(frame)
}

func (s *GorillaSession[M]) NextMessage(ctx context.Context) (M, bool, error) {
	var zero M
	for {
		frame, ok, err := s.NextRaw(ctx)
		if err != nil {
			return zero, false, err
		}
		if !ok {
			return zero, false, nil
		}
		msg, keep, err := s.codec.DecodeMessage(frame)
		if err != nil {
			return zero, false, err
		}
		if !keep {
			continue
		}
		return msg, true, nil
	}
}

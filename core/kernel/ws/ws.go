// Package ws defines the transport-layer WebSocket session contract and a
// gorilla/websocket-backed implementation, plus a ReconnectSession
// decorator adding automatic reconnection and resubscription.
package ws

import (
	"context"

	"github.com/vantagefx/exkernel/core/kernel/codec"
)

// State is the ReconnectSession lifecycle. A bare Session (not wrapped in
// ReconnectSession) never reports Reconnecting: it either IsConnected or
// it isn't.
type State int

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
	StateReconnecting
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "Disconnected"
	case StateConnecting:
		return "Connecting"
	case StateConnected:
		return "Connected"
	case StateReconnecting:
		return "Reconnecting"
	case StateTerminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}

// WsSession is pure transport: connect, push frames, pull frames, close.
// Ping/pong control frames are answered at this layer and never surface
// through NextMessage; a Close frame from the peer ends the read side and
// is reported as (zero, false) from NextMessage, not an error.
type WsSession[M any] interface {
	Connect(ctx context.Context) error
	SendRaw(frame codec.Frame) error
	NextRaw(ctx context.Context) (codec.Frame, bool, error)
	Close() error
	IsConnected() bool

	Subscribe(streams []string) error
	Unsubscribe(streams []string) error

	// NextMessage pulls and decodes the next data frame, transparently
	// skipping control frames and codec-filtered frames. ok=false with a
	// nil error means the peer closed the connection cleanly.
	NextMessage(ctx context.Context) (M, bool, error)
}

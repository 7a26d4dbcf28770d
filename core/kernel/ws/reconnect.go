package ws

import (
	"context"
	"sync"
	"time"

	"github.com/vantagefx/exkernel/core/kernel/codec"
	"github.com/vantagefx/exkernel/core/log"
	"github.com/vantagefx/exkernel/core/types"
)

// ReconnectSession wraps a WsSession with automatic reconnection: on any
// transport failure it redials with doubling backoff (capped at
// maxBackoff), and, when auto-resubscribe is enabled, replays every stream
// name last passed to Subscribe once the new connection is up. After
// maxAttempts consecutive failures it gives up and reports StateTerminated;
// callers must build a fresh ReconnectSession to try again.
type ReconnectSession[M any] struct {
	inner       WsSession[M]
	maxAttempts int
	baseDelay   time.Duration
	maxDelay    time.Duration
	autoResub   bool
	name        string

	mu      sync.Mutex
	state   State
	streams []string
}

func NewReconnectSession[M any](inner WsSession[M], name string, maxAttempts int, baseDelay, maxDelay time.Duration, autoResubscribe bool) *ReconnectSession[M] {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	if baseDelay <= 0 {
		baseDelay = time.Second
	}
	if maxDelay <= 0 {
		maxDelay = 60 * time.Second
	}
	return &ReconnectSession[M]{
		inner:       inner,
		maxAttempts: maxAttempts,
		baseDelay:   baseDelay,
		maxDelay:    maxDelay,
		autoResub:   autoResubscribe,
		name:        name,
		state:       StateDisconnected,
	}
}

func (r *ReconnectSession[M]) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *ReconnectSession[M]) setState(s State) {
	r.mu.Lock()
	r.state = s
	r.mu.Unlock()
}

func (r *ReconnectSession[M]) Connect(ctx context.Context) error {
	r.setState(StateConnecting)
	if err := r.inner.Connect(ctx); err != nil {
		r.setState(StateDisconnected)
		return err
	}
	r.setState(StateConnected)
	return nil
}

// attemptReconnect redials with exponential backoff, doubling each attempt
// and capping at maxDelay, and replays the last-subscribed stream set once
// the connection is back if auto-resubscribe is enabled.
func (r *ReconnectSession[M]) attemptReconnect(ctx context.Context) error {
	r.setState(StateReconnecting)
	delay := r.baseDelay

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		if err := r.inner.Connect(ctx); err == nil {
			r.mu.Lock()
			streams := append([]string(nil), r.streams...)
			r.mu.Unlock()
			if r.autoResub && len(streams) > 0 {
				if err := r.inner.Subscribe(streams); err != nil {
					log.Wss.Warnf("%s failed to resubscribe after reconnect: %v", r.name, err)
				}
			}
			r.setState(StateConnected)
			return nil
		} else {
			log.Wss.Errorf("%s reconnect attempt %d/%d failed: %v", r.name, attempt, r.maxAttempts, err)
		}

		if attempt < r.maxAttempts {
			select {
			case <-ctx.Done():
				r.setState(StateTerminated)
				return types.NewWebSocketError("context cancelled during reconnect")
			case <-time.After(delay):
			}
			delay *= 2
			if delay > r.maxDelay {
				delay = r.maxDelay
			}
		}
	}

	r.setState(StateTerminated)
	return types.NewWebSocketError("failed to reconnect after max attempts")
}

func (r *ReconnectSession[M]) SendRaw(frame codec.Frame) error {
	if r.State() == StateTerminated {
		return types.NewWebSocketError("session closed")
	}
	if !r.inner.IsConnected() {
		if err := r.attemptReconnect(context.Background()); err != nil {
			return err
		}
	}
	return r.inner.SendRaw(frame)
}

// NextRaw keeps the logical stream alive across transport failures: a
// clean close or a read error both trigger a reconnect attempt rather than
// surfacing end-of-stream, since a caller of ReconnectSession expects it to
// look like one continuous connection. A deliberate Close() is the one
// exception: it leaves the state Terminated for good, so every subsequent
// call reports end-of-stream instead of resurrecting a session the caller
// already tore down.
func (r *ReconnectSession[M]) NextRaw(ctx context.Context) (codec.Frame, bool, error) {
	for {
		if r.State() == StateTerminated {
			return codec.Frame{}, false, nil
		}
		if !r.inner.IsConnected() {
			if err := r.attemptReconnect(ctx); err != nil {
				return codec.Frame{}, false, err
			}
		}
		frame, ok, err := r.inner.NextRaw(ctx)
		if err != nil || !ok {
			if rErr := r.attemptReconnect(ctx); rErr != nil {
				return codec.Frame{}, false, rErr
			}
			continue
		}
		return frame, true, nil
	}
}

func (r *ReconnectSession[M]) Close() error {
	r.setState(StateTerminated)
	return r.inner.Close()
}

func (r *ReconnectSession[M]) IsConnected() bool { return r.inner.IsConnected() }

// Subscribe merges streams into the tracked set rather than replacing it,
// so a later reconnect replays every stream subscribed so far, not just
// the most recent call's set.
func (r *ReconnectSession[M]) Subscribe(streams []string) error {
	r.mu.Lock()
	have := make(map[string]bool, len(r.streams))
	for _, s := range r.streams {
		have[s] = true
	}
	for _, s := range streams {
		if !have[s] {
			have[s] = true
			r.streams = append(r.streams, s)
		}
	}
	r.mu.Unlock()
	return r.inner.Subscribe(streams)
}

func (r *ReconnectSession[M]) Unsubscribe(streams []string) error {
	toRemove := make(map[string]bool, len(streams))
	for _, s := range streams {
		toRemove[s] = true
	}
	r.mu.Lock()
	kept := r.streams[:0:0]
	for _, s := range r.streams {
		if !toRemove[s] {
			kept = append(kept, s)
		}
	}
	r.streams = kept
	r.mu.Unlock()
	return r.inner.Unsubscribe(streams)
}

func (r *ReconnectSession[M]) NextMessage(ctx context.Context) (M, bool, error) {
	var zero M
	for {
		if r.State() == StateTerminated {
			return zero, false, nil
		}
		if !r.inner.IsConnected() {
			if err := r.attemptReconnect(ctx); err != nil {
				return zero, false, err
			}
		}
		msg, ok, err := r.inner.NextMessage(ctx)
		if err != nil {
			if rErr := r.attemptReconnect(ctx); rErr != nil {
				return zero, false, rErr
			}
			continue
		}
		if !ok {
			if rErr := r.attemptReconnect(ctx); rErr != nil {
				return zero, false, rErr
			}
			continue
		}
		return msg, true, nil
	}
}

package rest

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantagefx/exkernel/core/types"
)

// attemptCounter is read after the client call returns, so the mutex only
// needs to guard against the accept goroutine still draining its last
// connection at that instant.
type attemptCounter struct {
	mu    sync.Mutex
	count int
}

func (c *attemptCounter) inc() {
	c.mu.Lock()
	c.count++
	c.mu.Unlock()
}

func (c *attemptCounter) get() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// deadListener accepts a connection and immediately closes it without
// writing a response, so the client observes a network-shaped failure
// (the same failure mode the retry loop is meant to recover from) on
// every attempt, letting the test count attempts precisely.
func deadListener(t *testing.T) (string, *attemptCounter) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	counter := &attemptCounter{}
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			counter.inc()
			conn.Close()
		}
	}()
	return "http://" + ln.Addr().String(), counter
}

func TestMaxRetriesZeroMeansSingleAttempt(t *testing.T) {
	baseURL, attempts := deadListener(t)

	client := New(Config{
		BaseURL:        baseURL,
		MaxRetries:     0,
		RetryBaseDelay: time.Millisecond,
		RetryMaxDelay:  time.Millisecond,
	}, nil)

	_, err := client.Get(context.Background(), "/x", nil, false)
	require.Error(t, err)
	assert.Equal(t, types.KindNetwork, types.KindOf(err))
	assert.Equal(t, 1, attempts.get())
}

func TestRetriesExhaustRetryBudgetOnTransportFailure(t *testing.T) {
	baseURL, attempts := deadListener(t)

	client := New(Config{
		BaseURL:        baseURL,
		MaxRetries:     2,
		RetryBaseDelay: time.Millisecond,
		RetryMaxDelay:  time.Millisecond,
	}, nil)

	_, err := client.Get(context.Background(), "/x", nil, false)
	require.Error(t, err)
	assert.Equal(t, types.KindNetwork, types.KindOf(err))
	assert.Equal(t, 3, attempts.get())
}

func TestSignedRequestWithoutSignerFailsAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client, err := NewBuilder(Config{BaseURL: srv.URL}).Build()
	require.NoError(t, err)

	_, err = client.Get(context.Background(), "/x", nil, true)
	require.Error(t, err)
	assert.Equal(t, types.KindAuth, types.KindOf(err))
}

func TestGetJSONSucceedsOnFirstTry(t *testing.T) {
	var attempts int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL, MaxRetries: 3}, nil)

	var out struct {
		Ok bool `json:"ok"`
	}
	require.NoError(t, client.GetJSON(context.Background(), "/x", nil, false, &out))
	assert.True(t, out.Ok)
	assert.Equal(t, 1, attempts)
}

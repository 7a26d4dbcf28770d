package rest

import (
	"sync"

	cmap "github.com/orcaman/concurrent-map/v2"
)

// Registry caches one RestClient per credential signature so that
// connectors built for the same base URL and account share a
// single underlying *http.Client and connection pool instead of each
// dialing its own. Keyed on an opaque signature the caller derives from
// its credentials (e.g. exchange name + api key), never on the secret
// itself.
type Registry struct {
	handles cmap.ConcurrentMap[string, RestClient]
	mu      sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{handles: cmap.New[RestClient]()}
}

// GetOrCreate returns the cached client for signature, building it via
// build (only once, even under concurrent callers racing the same
// signature) if absent.
func (r *Registry) GetOrCreate(signature string, build func() (RestClient, error)) (RestClient, error) {
	if handle, ok := r.handles.Get(signature); ok {
		return handle, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if handle, ok := r.handles.Get(signature); ok {
		return handle, nil
	}
	handle, err := build()
	if err != nil {
		return nil, err
	}
	r.handles.Set(signature, handle)
	return handle, nil
}

// Drop evicts a cached handle, e.g. after credential rotation.
func (r *Registry) Drop(signature string) {
	r.handles.Remove(signature)
}

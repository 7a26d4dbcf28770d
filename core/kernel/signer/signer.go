// Package signer implements the request-authentication contract shared by
// every REST client: turning an unsigned request into the headers and
// query parameters a venue expects to see on the wire.
package signer

import "github.com/vantagefx/exkernel/core/types"

// SignatureResult carries the headers and (possibly re-ordered/augmented)
// query parameters a Signer wants attached to the outbound request.
type SignatureResult struct {
	Headers      map[string]string
	SignedParams []KV
}

// KV preserves query-parameter order, which HMAC signing depends on.
type KV struct {
	Key   string
	Value string
}

// Signer authenticates one request. Implementations must be safe for
// concurrent use: every clone of a REST client shares its signer, and
// the connectors holding those clones may sign concurrently.
type Signer interface {
	// SignRequest signs method+endpoint+queryString+body at timestampMs
	// (Unix milliseconds) and returns the headers/params to attach.
	SignRequest(method, endpoint, queryString string, body []byte, timestampMs int64) (SignatureResult, error)
}

// NoopSigner satisfies Signer for unauthenticated requests. rest.New falls
// back to it when given a nil signer, so public endpoints never need a
// caller-supplied signer; rest.Builder.Build does not.
type NoopSigner struct{}

func (NoopSigner) SignRequest(_, _, queryString string, _ []byte, _ int64) (SignatureResult, error) {
	return SignatureResult{Headers: map[string]string{}, SignedParams: parseQueryString(queryString)}, nil
}

func parseQueryString(qs string) []KV {
	if qs == "" {
		return nil
	}
	var out []KV
	start := 0
	for i := 0; i <= len(qs); i++ {
		if i == len(qs) || qs[i] == '&' {
			if i > start {
				pair := qs[start:i]
				out = append(out, splitPair(pair))
			}
			start = i + 1
		}
	}
	return out
}

func splitPair(pair string) KV {
	for i := 0; i < len(pair); i++ {
		if pair[i] == '=' {
			return KV{Key: pair[:i], Value: pair[i+1:]}
		}
	}
	return KV{Key: pair}
}

// requireNonEmpty is the shared guard every credentialed signer applies:
// spec.md forbids constructing a signer with blank credentials.
func requireNonEmpty(field, value string) error {
	if value == "" {
		return types.NewAuthError(field + " must not be empty")
	}
	return nil
}

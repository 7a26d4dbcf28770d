package signer

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vantagefx/exkernel/core/types"
)

// JwtSigner mints a short-lived bearer token per request rather than
// hashing the request itself, matching venues (Hyperliquid, Paradex) whose
// REST layer authenticates off an Authorization header instead of a
// per-request signature. Every call mints a fresh token stamped at
// timestampMs so a captured header cannot be replayed past its own
// lifetime.
type JwtSigner struct {
	apiKey     string
	signingKey []byte
	ttl        time.Duration
}

// NewJwtSigner builds a bearer signer keyed by signingKey (the venue's
// account secret, HMAC-SHA256 signed per the golang-jwt convention) with
// tokens valid for ttl from issuance.
func NewJwtSigner(apiKey string, signingKey []byte, ttl time.Duration) (*JwtSigner, error) {
	if err := requireNonEmpty("api key", apiKey); err != nil {
		return nil, err
	}
	if len(signingKey) == 0 {
		return nil, types.NewAuthError("signing key must not be empty")
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &JwtSigner{apiKey: apiKey, signingKey: signingKey, ttl: ttl}, nil
}

func (s *JwtSigner) SignRequest(_, endpoint, queryString string, _ []byte, timestampMs int64) (SignatureResult, error) {
	issuedAt := time.UnixMilli(timestampMs)
	claims := jwt.MapClaims{
		"sub": s.apiKey,
		"iat": issuedAt.Unix(),
		"exp": issuedAt.Add(s.ttl).Unix(),
		"aud": endpoint,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return SignatureResult{}, types.NewAuthError("failed to sign bearer token: " + err.Error())
	}

	return SignatureResult{
		Headers:      map[string]string{"Authorization": "Bearer " + signed},
		SignedParams: parseQueryString(queryString),
	}, nil
}

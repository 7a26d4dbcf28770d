package signer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJwtSignerRejectsEmptyCredentials(t *testing.T) {
	_, err := NewJwtSigner("", []byte("secret"), time.Second)
	require.Error(t, err)

	_, err = NewJwtSigner("apikey", nil, time.Second)
	require.Error(t, err)
}

func TestJwtSignerProducesBearerHeader(t *testing.T) {
	s, err := NewJwtSigner("apikey", []byte("secret"), time.Minute)
	require.NoError(t, err)

	result, err := s.SignRequest("GET", "/v1/account", "", nil, 1700000000000)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.Headers["Authorization"], "Bearer "))
}

func TestJwtSignerTokensDifferAcrossCalls(t *testing.T) {
	s, err := NewJwtSigner("apikey", []byte("secret"), time.Minute)
	require.NoError(t, err)

	first, err := s.SignRequest("GET", "/v1/account", "", nil, 1000)
	require.NoError(t, err)
	second, err := s.SignRequest("GET", "/v1/account", "", nil, 2000)
	require.NoError(t, err)

	assert.NotEqual(t, first.Headers["Authorization"], second.Headers["Authorization"])
}

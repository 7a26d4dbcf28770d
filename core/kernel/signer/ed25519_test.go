package signer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zeroSeedBase64 is the base64 encoding of a 32-byte all-zero Ed25519
// seed, used only to exercise the canonical-message assembly; it is not a
// real credential.
const zeroSeedBase64 = "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA="

func TestNewEd25519SignerRejectsEmptyKey(t *testing.T) {
	_, err := NewEd25519Signer("", 5000)
	require.Error(t, err)
}

func TestNewEd25519SignerRejectsBadLength(t *testing.T) {
	_, err := NewEd25519Signer("dGVzdA==", 5000)
	require.Error(t, err)
}

func TestEd25519SignerDeterministic(t *testing.T) {
	s, err := NewEd25519Signer(zeroSeedBase64, 5000)
	require.NoError(t, err)

	first, err := s.SignRequest("GET", "/api/v1/account", "", nil, 1700000000000)
	require.NoError(t, err)
	second, err := s.SignRequest("GET", "/api/v1/account", "", nil, 1700000000000)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotEmpty(t, first.Headers["X-Signature"])
	assert.Equal(t, "5000", first.Headers["X-Window"])
}

func TestEd25519SignerParamsChangeSignature(t *testing.T) {
	s, err := NewEd25519Signer(zeroSeedBase64, 5000)
	require.NoError(t, err)

	withoutParams, err := s.SignRequest("GET", "/api/v1/account", "", nil, 1700000000000)
	require.NoError(t, err)

	withParams, err := s.SignRequest("GET", "/api/v1/order", "symbol=BTC_USDC", nil, 1700000000000)
	require.NoError(t, err)

	assert.NotEqual(t, withoutParams.Headers["X-Signature"], withParams.Headers["X-Signature"])
}

func TestEd25519SignerSortsQueryParamsByKey(t *testing.T) {
	s, err := NewEd25519Signer(zeroSeedBase64, 5000)
	require.NoError(t, err)

	inOrder, err := s.SignRequest("GET", "/api/v1/order", "symbol=BTC_USDC&side=Bid", nil, 1700000000000)
	require.NoError(t, err)
	outOfOrder, err := s.SignRequest("GET", "/api/v1/order", "side=Bid&symbol=BTC_USDC", nil, 1700000000000)
	require.NoError(t, err)

	assert.Equal(t, inOrder.Headers["X-Signature"], outOfOrder.Headers["X-Signature"])
}

func TestEd25519SignerUsesRealInstructionNames(t *testing.T) {
	assert.Equal(t, "account", instructionFor("/api/v1/account"))
	assert.Equal(t, "positions", instructionFor("/api/v1/positions"))
	assert.Equal(t, "orderExecute", instructionFor("/api/v1/order"))
}

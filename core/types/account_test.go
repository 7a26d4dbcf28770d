package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBalanceValidateRejectsNegativeFree(t *testing.T) {
	b := Balance{Asset: "USDT", Free: mustTestQuantity(t, "-1"), Locked: mustTestQuantity(t, "0")}
	require.Error(t, b.Validate())
}

func TestBalanceValidateRejectsNegativeLocked(t *testing.T) {
	b := Balance{Asset: "USDT", Free: mustTestQuantity(t, "0"), Locked: mustTestQuantity(t, "-1")}
	require.Error(t, b.Validate())
}

func TestBalanceValidateAcceptsNonNegativeSplit(t *testing.T) {
	b := Balance{Asset: "USDT", Free: mustTestQuantity(t, "10"), Locked: mustTestQuantity(t, "5")}
	require.NoError(t, b.Validate())
}

func TestBalanceValidateAcceptsZero(t *testing.T) {
	b := Balance{Asset: "USDT", Free: mustTestQuantity(t, "0"), Locked: mustTestQuantity(t, "0")}
	require.NoError(t, b.Validate())
}

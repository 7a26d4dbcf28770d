package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceQuantityVolumeRoundTrip(t *testing.T) {
	cases := []string{"0", "1", "0.00000001", "123456.789", "-4.5"}
	for _, s := range cases {
		p, err := ParsePrice(s)
		require.NoError(t, err)
		assert.Equal(t, s, p.String())

		q, err := ParseQuantity(s)
		require.NoError(t, err)
		assert.Equal(t, s, q.String())

		v, err := ParseVolume(s)
		require.NoError(t, err)
		assert.Equal(t, s, v.String())
	}
}

func TestParsePriceRejectsGarbage(t *testing.T) {
	_, err := ParsePrice("not-a-number")
	require.Error(t, err)
	assert.Equal(t, KindDeserialization, KindOf(err))
}

func TestPriceJSONRoundTrip(t *testing.T) {
	p, err := ParsePrice("42.5")
	require.NoError(t, err)

	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, `"42.5"`, string(b))

	var out Price
	require.NoError(t, json.Unmarshal(b, &out))
	assert.True(t, p.Equal(out))
}

func TestPriceComparisons(t *testing.T) {
	low, err := ParsePrice("1")
	require.NoError(t, err)
	high, err := ParsePrice("2")
	require.NoError(t, err)

	assert.True(t, low.LessThan(high))
	assert.True(t, high.GreaterThan(low))
	assert.False(t, low.Equal(high))
}

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKlineIntervalWireRoundTrip(t *testing.T) {
	intervals := []KlineInterval{
		Interval1m, Interval3m, Interval5m, Interval15m, Interval30m,
		Interval1h, Interval2h, Interval4h, Interval6h, Interval8h,
		Interval12h, Interval1d, Interval3d, Interval1w, Interval1M,
	}
	seen := map[string]bool{}
	for _, iv := range intervals {
		wire := iv.ToWireString()
		assert.False(t, seen[wire], "wire form %q reused by a second interval", wire)
		seen[wire] = true

		parsed, err := ParseKlineInterval(wire)
		require.NoError(t, err)
		assert.Equal(t, iv, parsed)
		assert.Greater(t, iv.ToSeconds(), int64(0))
	}
}

func TestParseKlineIntervalRejectsUnknown(t *testing.T) {
	_, err := ParseKlineInterval("7m")
	require.Error(t, err)
	assert.Equal(t, KindInvalidParameters, KindOf(err))
}

func validKline(t *testing.T) Kline {
	return Kline{
		Symbol:    mustTestSymbol(t, "BTCUSDT"),
		OpenTime:  1000,
		CloseTime: 2000,
		Interval:  Interval1m,
		Open:      mustTestPrice(t, "100"),
		High:      mustTestPrice(t, "110"),
		Low:       mustTestPrice(t, "90"),
		Close:     mustTestPrice(t, "105"),
		Volume:    mustTestVolume(t, "50"),
	}
}

func TestKlineValidateAcceptsWellFormedCandle(t *testing.T) {
	require.NoError(t, validKline(t).Validate())
}

func TestKlineValidateLowMustBeBelowMinOpenClose(t *testing.T) {
	k := validKline(t)
	k.Low = mustTestPrice(t, "101")
	require.Error(t, k.Validate())
}

func TestKlineValidateHighMustBeAboveMaxOpenClose(t *testing.T) {
	k := validKline(t)
	k.High = mustTestPrice(t, "104")
	require.Error(t, k.Validate())
}

func TestKlineValidateOpenTimeMustPrecedeCloseTime(t *testing.T) {
	k := validKline(t)
	k.CloseTime = k.OpenTime
	require.Error(t, k.Validate())
}

func mustTestVolume(t *testing.T, s string) Volume {
	v, err := ParseVolume(s)
	require.NoError(t, err)
	return v
}

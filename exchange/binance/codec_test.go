package binance

import (
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantagefx/exkernel/core/kernel/codec"
	"github.com/vantagefx/exkernel/core/types"
)

func TestEncodeSubscriptionFrame(t *testing.T) {
	frame, err := Codec{}.EncodeSubscription([]string{"btcusdt@ticker", "ethusdt@trade"})
	require.NoError(t, err)
	assert.Equal(t, websocket.TextMessage, frame.Type)
	assert.Contains(t, string(frame.Payload), `"method":"SUBSCRIBE"`)
	assert.Contains(t, string(frame.Payload), "btcusdt@ticker")
}

func TestDecodeMessageCombinedStreamTicker(t *testing.T) {
	payload := []byte(`{"stream":"btcusdt@ticker","data":{"s":"BTCUSDT","c":"50000.00","P":"1.5","p":"750.00","h":"51000.00","l":"49000.00","v":"1000","q":"50000000","O":1000,"C":2000,"n":5000}}`)
	msg, keep, err := Codec{}.DecodeMessage(codec.Frame{Type: websocket.TextMessage, Payload: payload})
	require.NoError(t, err)
	require.True(t, keep)
	assert.Equal(t, MsgTicker, msg.Kind)
	assert.Equal(t, "BTCUSDT", msg.Ticker.Symbol)
}

func TestDecodeMessageRawEventDepth(t *testing.T) {
	payload := []byte(`{"e":"depthUpdate","s":"ETHUSDT","U":1,"u":2,"b":[["3000.00","1.0"]],"a":[["3001.00","2.0"]]}`)
	msg, keep, err := Codec{}.DecodeMessage(codec.Frame{Type: websocket.TextMessage, Payload: payload})
	require.NoError(t, err)
	require.True(t, keep)
	assert.Equal(t, MsgOrderBook, msg.Kind)
	assert.Equal(t, "ETHUSDT", msg.OrderBook.Symbol)
}

func TestDecodeMessageSubscriptionAckIsFiltered(t *testing.T) {
	payload := []byte(`{"result":null,"id":1}`)
	_, keep, err := Codec{}.DecodeMessage(codec.Frame{Type: websocket.TextMessage, Payload: payload})
	require.NoError(t, err)
	assert.False(t, keep)
}

func TestBuildStreamsCrossProduct(t *testing.T) {
	streams := buildStreams([]string{"BTCUSDT"}, []types.SubscriptionType{
		types.NewTickerSubscription(),
		types.NewKlinesSubscription(types.Interval1m),
	})
	assert.ElementsMatch(t, []string{"btcusdt@ticker", "btcusdt@kline_1m"}, streams)
}

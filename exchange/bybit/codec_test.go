package bybit

import (
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antihax/optional"

	"github.com/vantagefx/exkernel/core/kernel/codec"
	"github.com/vantagefx/exkernel/core/types"
)

func TestEncodeSubscriptionFrame(t *testing.T) {
	frame, err := Codec{}.EncodeSubscription([]string{"tickers.BTCUSDT", "publicTrade.ETHUSDT"})
	require.NoError(t, err)
	assert.Equal(t, websocket.TextMessage, frame.Type)
	assert.Contains(t, string(frame.Payload), `"op":"subscribe"`)
	assert.Contains(t, string(frame.Payload), "tickers.BTCUSDT")
}

func TestDecodeMessagePing(t *testing.T) {
	payload := []byte(`{"op":"ping","ts":123}`)
	msg, keep, err := Codec{}.DecodeMessage(codec.Frame{Type: websocket.TextMessage, Payload: payload})
	require.NoError(t, err)
	require.True(t, keep)
	assert.Equal(t, MsgPing, msg.Kind)
}

func TestDecodeMessageSubscriptionAckIsFiltered(t *testing.T) {
	payload := []byte(`{"success":true,"ret_msg":"","conn_id":"abc","req_id":""}`)
	_, keep, err := Codec{}.DecodeMessage(codec.Frame{Type: websocket.TextMessage, Payload: payload})
	require.NoError(t, err)
	assert.False(t, keep)
}

func TestDecodeMessageTickerTopic(t *testing.T) {
	payload := []byte(`{"topic":"tickers.BTCUSDT","ts":123,"data":{"symbol":"BTCUSDT","lastPrice":"50000.00"}}`)
	msg, keep, err := Codec{}.DecodeMessage(codec.Frame{Type: websocket.TextMessage, Payload: payload})
	require.NoError(t, err)
	require.True(t, keep)
	assert.Equal(t, MsgTicker, msg.Kind)
	assert.Equal(t, "BTCUSDT", msg.Ticker.Symbol)
}

func TestDecodeMessageOrderBookTopic(t *testing.T) {
	payload := []byte(`{"topic":"orderbook.1.ETHUSDT","ts":123,"data":{"s":"ETHUSDT","b":[["3000.00","1.0"]],"a":[["3001.00","2.0"]],"u":5}}`)
	msg, keep, err := Codec{}.DecodeMessage(codec.Frame{Type: websocket.TextMessage, Payload: payload})
	require.NoError(t, err)
	require.True(t, keep)
	assert.Equal(t, MsgOrderBook, msg.Kind)
	assert.Equal(t, "ETHUSDT", msg.OrderBook.Symbol)
}

func TestBuildStreamsCrossProduct(t *testing.T) {
	streams := buildStreams([]string{"BTCUSDT"}, []types.SubscriptionType{
		types.NewTickerSubscription(),
		types.NewOrderBookSubscription(optional.NewInt64(50)),
	})
	assert.ElementsMatch(t, []string{"tickers.BTCUSDT", "orderbook.50.BTCUSDT"}, streams)
}

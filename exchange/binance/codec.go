package binance

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/vantagefx/exkernel/core/kernel/codec"
	"github.com/vantagefx/exkernel/core/types"
)

// MessageKind tags which variant a decoded Message carries.
type MessageKind int

const (
	MsgUnknown MessageKind = iota
	MsgTicker
	MsgOrderBook
	MsgTrade
	MsgKline
)

// Message is the tagged union BinanceCodec.DecodeMessage produces; it is
// the M type parameter every generic kernel piece (WsSession, Connector,
// ReconnectSession) is instantiated with for this venue.
type Message struct {
	Kind      MessageKind
	Ticker    wireTicker
	OrderBook wireDepth
	Trade     wireTrade
	Kline     wireKlineEvent
}

// Codec implements core/kernel/codec.WsCodec[Message] for Binance's
// combined-stream WebSocket wire format: {"method":"SUBSCRIBE","params":
// [...],"id":1} to (un)subscribe, and either {"stream":...,"data":...}
// (combined streams) or a bare event object tagged by "e" (raw streams)
// on the way down.
type Codec struct{}

func (Codec) EncodeSubscription(streams []string) (codec.Frame, error) {
	return encodeMethodFrame("SUBSCRIBE", streams)
}

func (Codec) EncodeUnsubscription(streams []string) (codec.Frame, error) {
	return encodeMethodFrame("UNSUBSCRIBE", streams)
}

func encodeMethodFrame(method string, streams []string) (codec.Frame, error) {
	payload, err := json.Marshal(struct {
		Method string   `json:"method"`
		Params []string `json:"params"`
		ID     int      `json:"id"`
	}{Method: method, Params: streams, ID: 1})
	if err != nil {
		return codec.Frame{}, types.NewSerializationError("failed to encode " + method + " frame: " + err.Error())
	}
	return codec.Frame{Type: websocket.TextMessage, Payload: payload}, nil
}

func (c Codec) DecodeMessage(frame codec.Frame) (Message, bool, error) {
	if frame.Type != websocket.TextMessage && frame.Type != websocket.BinaryMessage {
		return Message{}, false, nil
	}

	var env wireEnvelope
	if err := json.Unmarshal(frame.Payload, &env); err != nil {
		return Message{}, false, types.NewDeserializationError("failed to parse websocket frame: " + err.Error())
	}

	if env.Stream != "" && env.Data != nil {
		raw, err := json.Marshal(env.Data)
		if err != nil {
			return Message{}, false, types.NewDeserializationError("failed to re-encode stream payload: " + err.Error())
		}
		return c.decodeByStream(env.Stream, raw)
	}

	if env.Event != "" {
		return c.decodeByEvent(env.Event, frame.Payload)
	}

	// Subscription acks and error frames carry "result"/"error" and no
	// market-data payload; the caller sees them filtered out (keep=false).
	if env.Result != nil || env.Error != nil {
		return Message{}, false, nil
	}

	return Message{Kind: MsgUnknown}, true, nil
}

func (Codec) decodeByStream(stream string, raw []byte) (Message, bool, error) {
	switch {
	case strings.Contains(stream, "@ticker"):
		var t wireTicker
		if err := json.Unmarshal(raw, &t); err != nil {
			return Message{}, false, types.NewDeserializationError("failed to parse ticker: " + err.Error())
		}
		return Message{Kind: MsgTicker, Ticker: t}, true, nil
	case strings.Contains(stream, "@depth"):
		var d wireDepth
		if err := json.Unmarshal(raw, &d); err != nil {
			return Message{}, false, types.NewDeserializationError("failed to parse depth: " + err.Error())
		}
		return Message{Kind: MsgOrderBook, OrderBook: d}, true, nil
	case strings.Contains(stream, "@trade"):
		var t wireTrade
		if err := json.Unmarshal(raw, &t); err != nil {
			return Message{}, false, types.NewDeserializationError("failed to parse trade: " + err.Error())
		}
		return Message{Kind: MsgTrade, Trade: t}, true, nil
	case strings.Contains(stream, "@kline"):
		var k wireKlineEvent
		if err := json.Unmarshal(raw, &k); err != nil {
			return Message{}, false, types.NewDeserializationError("failed to parse kline: " + err.Error())
		}
		return Message{Kind: MsgKline, Kline: k}, true, nil
	default:
		return Message{Kind: MsgUnknown}, true, nil
	}
}

func (c Codec) decodeByEvent(event string, raw []byte) (Message, bool, error) {
	switch event {
	case "24hrTicker":
		var t wireTicker
		if err := json.Unmarshal(raw, &t); err != nil {
			return Message{}, false, types.NewDeserializationError("failed to parse ticker: " + err.Error())
		}
		return Message{Kind: MsgTicker, Ticker: t}, true, nil
	case "depthUpdate":
		var d wireDepth
		if err := json.Unmarshal(raw, &d); err != nil {
			return Message{}, false, types.NewDeserializationError("failed to parse depth: " + err.Error())
		}
		return Message{Kind: MsgOrderBook, OrderBook: d}, true, nil
	case "trade":
		var t wireTrade
		if err := json.Unmarshal(raw, &t); err != nil {
			return Message{}, false, types.NewDeserializationError("failed to parse trade: " + err.Error())
		}
		return Message{Kind: MsgTrade, Trade: t}, true, nil
	case "kline":
		var k wireKlineEvent
		if err := json.Unmarshal(raw, &k); err != nil {
			return Message{}, false, types.NewDeserializationError("failed to parse kline: " + err.Error())
		}
		return Message{Kind: MsgKline, Kline: k}, true, nil
	default:
		return Message{Kind: MsgUnknown}, true, nil
	}
}

// buildStreams turns a symbol/subscription-type cross product into the
// lowercase stream identifiers Binance's combined-stream endpoint expects,
// e.g. "btcusdt@ticker", "btcusdt@depth20@100ms", "btcusdt@kline_1m".
func buildStreams(symbols []string, subs []types.SubscriptionType) []string {
	streams := make([]string, 0, len(symbols)*len(subs))
	for _, symbol := range symbols {
		lower := strings.ToLower(symbol)
		for _, sub := range subs {
			switch sub.Kind {
			case types.SubTicker:
				streams = append(streams, lower+"@ticker")
			case types.SubOrderBook:
				if sub.Depth.IsSet() {
					streams = append(streams, lower+"@depth"+strconv.FormatInt(sub.Depth.Value(), 10)+"@100ms")
				} else {
					streams = append(streams, lower+"@depth@100ms")
				}
			case types.SubTrades:
				streams = append(streams, lower+"@trade")
			case types.SubKlines:
				streams = append(streams, lower+"@kline_"+sub.Interval.ToWireString())
			}
		}
	}
	return streams
}

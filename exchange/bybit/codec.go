package bybit

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/vantagefx/exkernel/core/kernel/codec"
	"github.com/vantagefx/exkernel/core/types"
)

// MessageKind tags which payload a decoded Message carries. MsgPing is not
// market data at all: Bybit's keepalive rides the same text-frame channel
// as everything else, so the codec must recognize and surface it rather
// than mis-decode it as an unknown topic push.
type MessageKind int

const (
	MsgUnknown MessageKind = iota
	MsgPing
	MsgTicker
	MsgOrderBook
	MsgTrade
	MsgKline
)

type Message struct {
	Kind      MessageKind
	Symbol    string
	Ticker    wireTicker
	OrderBook wireOrderBook
	Trade     wireTrade
	Kline     wireKlineWs
}

// Codec implements codec.WsCodec[Message] for Bybit v5's public streams.
type Codec struct{}

func (Codec) EncodeSubscription(streams []string) (codec.Frame, error) {
	return encodeOpFrame("subscribe", streams)
}

func (Codec) EncodeUnsubscription(streams []string) (codec.Frame, error) {
	return encodeOpFrame("unsubscribe", streams)
}

func encodeOpFrame(op string, streams []string) (codec.Frame, error) {
	payload, err := json.Marshal(wireOpFrame{Op: op, Args: streams})
	if err != nil {
		return codec.Frame{}, types.NewSerializationError("failed to encode " + op + " frame: " + err.Error())
	}
	return codec.Frame{Type: websocket.TextMessage, Payload: payload}, nil
}

// EncodePong builds the {"op":"pong"} frame Bybit expects in reply to its
// application-layer ping. It isn't part of codec.WsCodec because sending it
// requires the session's SendRaw, which DecodeMessage (a pure function)
// can't call itself -- see market.go's subscription loop.
func (Codec) EncodePong() codec.Frame {
	payload, _ := json.Marshal(wireOpFrame{Op: "pong"})
	return codec.Frame{Type: websocket.TextMessage, Payload: payload}
}

// DecodeMessage recognizes three text-frame shapes: an application-layer
// ping ({"op":"ping",...}), a subscribe/unsubscribe ack ({"success":...},
// filtered), and a topic push ({"topic":...,"data":...}) routed by prefix.
func (Codec) DecodeMessage(frame codec.Frame) (Message, bool, error) {
	if frame.Type != websocket.TextMessage && frame.Type != websocket.BinaryMessage {
		return Message{}, false, nil
	}

	raw := string(frame.Payload)
	if strings.Contains(raw, `"op":"ping"`) || strings.Contains(raw, `"op": "ping"`) {
		return Message{Kind: MsgPing}, true, nil
	}

	var op wireOpFrame
	if err := json.Unmarshal(frame.Payload, &op); err == nil && op.Success != nil {
		return Message{}, false, nil
	}

	var topicFrame struct {
		Topic string          `json:"topic"`
		Data  json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(frame.Payload, &topicFrame); err != nil {
		return Message{}, false, types.NewDeserializationError("failed to parse bybit frame: " + err.Error())
	}
	if topicFrame.Topic == "" {
		return Message{}, false, nil
	}

	switch {
	case strings.HasPrefix(topicFrame.Topic, "tickers."):
		var t wireTicker
		if err := json.Unmarshal(topicFrame.Data, &t); err != nil {
			return Message{}, false, types.NewDeserializationError("failed to parse ticker: " + err.Error())
		}
		return Message{Kind: MsgTicker, Symbol: t.Symbol, Ticker: t}, true, nil

	case strings.HasPrefix(topicFrame.Topic, "orderbook."):
		var ob wireOrderBook
		if err := json.Unmarshal(topicFrame.Data, &ob); err != nil {
			return Message{}, false, types.NewDeserializationError("failed to parse order book: " + err.Error())
		}
		return Message{Kind: MsgOrderBook, Symbol: ob.Symbol, OrderBook: ob}, true, nil

	case strings.HasPrefix(topicFrame.Topic, "publicTrade."):
		var trades []wireTrade
		if err := json.Unmarshal(topicFrame.Data, &trades); err != nil || len(trades) == 0 {
			return Message{}, false, types.NewDeserializationError("failed to parse trade")
		}
		t := trades[0]
		return Message{Kind: MsgTrade, Symbol: t.Symbol, Trade: t}, true, nil

	case strings.HasPrefix(topicFrame.Topic, "kline."):
		var klines []wireKlineWs
		if err := json.Unmarshal(topicFrame.Data, &klines); err != nil || len(klines) == 0 {
			return Message{}, false, types.NewDeserializationError("failed to parse kline")
		}
		symbol := topicFrame.Topic[strings.LastIndex(topicFrame.Topic, ".")+1:]
		return Message{Kind: MsgKline, Symbol: symbol, Kline: klines[0]}, true, nil

	default:
		return Message{Kind: MsgUnknown}, true, nil
	}
}

// buildStreams cross-products symbols x subscription kinds into Bybit's
// dot-separated topic identifiers.
func buildStreams(symbols []string, subs []types.SubscriptionType) []string {
	var streams []string
	for _, symbol := range symbols {
		for _, sub := range subs {
			switch sub.Kind {
			case types.SubTicker:
				streams = append(streams, "tickers."+symbol)
			case types.SubOrderBook:
				depth := int64(1)
				if sub.Depth.IsSet() {
					depth = sub.Depth.Value()
				}
				streams = append(streams, "orderbook."+strconv.FormatInt(depth, 10)+"."+symbol)
			case types.SubTrades:
				streams = append(streams, "publicTrade."+symbol)
			case types.SubKlines:
				streams = append(streams, "kline."+sub.Interval.ToWireString()+"."+symbol)
			}
		}
	}
	return streams
}

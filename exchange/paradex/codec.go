package paradex

import (
	"encoding/json"
	"strings"

	"github.com/vantagefx/exkernel/core/kernel/codec"
	"github.com/vantagefx/exkernel/core/types"
)

type MessageKind int

const (
	MsgUnknown MessageKind = iota
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
	Kline     wireKline
}

// Codec implements codec.WsCodec[Message] for Paradex's JSON-RPC-flavored
// {"jsonrpc":"2.0","method":"subscribe","params":{"channel":...}} frame.
type Codec struct{}

type subscribeFrame struct {
	JsonRPC string       `json:"jsonrpc"`
	Method  string       `json:"method"`
	Params  subscribeArg `json:"params"`
}

type subscribeArg struct {
	Channel string `json:"channel"`
}

type pushFrame struct {
	Channel string          `json:"channel"`
	Data    json.RawMessage `json:"data"`
}

func (Codec) EncodeSubscription(streams []string) (codec.Frame, error) {
	return encodeSub("subscribe", streams)
}

func (Codec) EncodeUnsubscription(streams []string) (codec.Frame, error) {
	return encodeSub("unsubscribe", streams)
}

func encodeSub(method string, streams []string) (codec.Frame, error) {
	frames := make([]subscribeFrame, 0, len(streams))
	for _, ch := range streams {
		frames = append(frames, subscribeFrame{JsonRPC: "2.0", Method: method, Params: subscribeArg{Channel: ch}})
	}
	payload, err := json.Marshal(frames)
	if err != nil {
		return codec.Frame{}, err
	}
	return codec.Frame{Type: 1, Payload: payload}, nil
}

func (Codec) DecodeMessage(frame codec.Frame) (Message, bool, error) {
	var push pushFrame
	if err := json.Unmarshal(frame.Payload, &push); err != nil {
		return Message{}, false, nil
	}
	switch {
	case strings.HasPrefix(push.Channel, "ticker."):
		var t wireTicker
		if err := json.Unmarshal(push.Data, &t); err != nil {
			return Message{}, false, err
		}
		return Message{Kind: MsgTicker, Symbol: t.Symbol, Ticker: t}, true, nil
	case strings.HasPrefix(push.Channel, "order_book."):
		var ob wireOrderBook
		if err := json.Unmarshal(push.Data, &ob); err != nil {
			return Message{}, false, err
		}
		return Message{Kind: MsgOrderBook, Symbol: ob.Symbol, OrderBook: ob}, true, nil
	case strings.HasPrefix(push.Channel, "trades."):
		var tr wireTrade
		if err := json.Unmarshal(push.Data, &tr); err != nil {
			return Message{}, false, err
		}
		return Message{Kind: MsgTrade, Symbol: tr.Symbol, Trade: tr}, true, nil
	case strings.HasPrefix(push.Channel, "klines."):
		var k wireKline
		if err := json.Unmarshal(push.Data, &k); err != nil {
			return Message{}, false, err
		}
		return Message{Kind: MsgKline, Symbol: k.Symbol, Kline: k}, true, nil
	default:
		return Message{}, false, nil
	}
}

func buildStreams(symbols []string, subs []types.SubscriptionType) []string {
	streams := make([]string, 0, len(symbols)*len(subs))
	for _, symbol := range symbols {
		for _, sub := range subs {
			switch sub.Kind {
			case types.SubTicker:
				streams = append(streams, "ticker."+symbol)
			case types.SubOrderBook:
				streams = append(streams, "order_book."+symbol)
			case types.SubTrades:
				streams = append(streams, "trades."+symbol)
			case types.SubKlines:
				streams = append(streams, "klines."+symbol+"."+sub.Interval.ToWireString())
			}
		}
	}
	return streams
}

package backpack

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

// Codec implements codec.WsCodec[Message] for Backpack's {"method":
// "SUBSCRIBE"|"UNSUBSCRIBE", "params": [...]} subscription convention and
// its {"stream": ..., "data": ...} push envelope.
type Codec struct{}

type subFrame struct {
	Method string   `json:"method"`
	Params []string `json:"params"`
}

type pushEnvelope struct {
	Stream string          `json:"stream"`
	Data   json.RawMessage `json:"data"`
}

func (Codec) EncodeSubscription(streams []string) (codec.Frame, error) {
	return encodeSub("SUBSCRIBE", streams)
}

func (Codec) EncodeUnsubscription(streams []string) (codec.Frame, error) {
	return encodeSub("UNSUBSCRIBE", streams)
}

func encodeSub(method string, streams []string) (codec.Frame, error) {
	payload, err := json.Marshal(subFrame{Method: method, Params: streams})
	if err != nil {
		return codec.Frame{}, err
	}
	return codec.Frame{Type: 1, Payload: payload}, nil
}

func (Codec) DecodeMessage(frame codec.Frame) (Message, bool, error) {
	var env pushEnvelope
	if err := json.Unmarshal(frame.Payload, &env); err != nil {
		return Message{}, false, nil
	}
	switch {
	case strings.HasPrefix(env.Stream, "ticker."):
		var t wireTicker
		if err := json.Unmarshal(env.Data, &t); err != nil {
			return Message{}, false, err
		}
		return Message{Kind: MsgTicker, Symbol: t.Symbol, Ticker: t}, true, nil
	case strings.HasPrefix(env.Stream, "depth."):
		var ob wireOrderBook
		if err := json.Unmarshal(env.Data, &ob); err != nil {
			return Message{}, false, err
		}
		return Message{Kind: MsgOrderBook, Symbol: ob.Symbol, OrderBook: ob}, true, nil
	case strings.HasPrefix(env.Stream, "trade."):
		var tr wireTrade
		if err := json.Unmarshal(env.Data, &tr); err != nil {
			return Message{}, false, err
		}
		return Message{Kind: MsgTrade, Symbol: tr.Symbol, Trade: tr}, true, nil
	case strings.HasPrefix(env.Stream, "kline."):
		var k wireKline
		if err := json.Unmarshal(env.Data, &k); err != nil {
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
				streams = append(streams, "depth."+symbol)
			case types.SubTrades:
				streams = append(streams, "trade."+symbol)
			case types.SubKlines:
				streams = append(streams, "kline."+symbol+"."+sub.Interval.ToWireString())
			}
		}
	}
	return streams
}

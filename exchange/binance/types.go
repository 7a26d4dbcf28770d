// Package binance implements the connector kernel's Binance Spot adapter:
// wire types, a WebSocket codec, and the Market/Trading/Account
// capabilities built on the generic REST and WS transports.
package binance

import "encoding/json"

// wireMarket is one entry of GET /api/v3/exchangeInfo's "symbols" array.
type wireMarket struct {
	Symbol             string       `json:"symbol"`
	BaseAsset          string       `json:"baseAsset"`
	QuoteAsset         string       `json:"quoteAsset"`
	Status             string       `json:"status"`
	BaseAssetPrecision int          `json:"baseAssetPrecision"`
	QuotePrecision     int          `json:"quotePrecision"`
	Filters            []wireFilter `json:"filters"`
}

type wireFilter struct {
	FilterType string `json:"filterType"`
	MinPrice   string `json:"minPrice,omitempty"`
	MaxPrice   string `json:"maxPrice,omitempty"`
	MinQty     string `json:"minQty,omitempty"`
	MaxQty     string `json:"maxQty,omitempty"`
}

type wireExchangeInfo struct {
	Symbols []wireMarket `json:"symbols"`
}

type wireOrderResponse struct {
	OrderID       int64  `json:"orderId"`
	ClientOrderID string `json:"origClientOrderId"`
	Symbol        string `json:"symbol"`
	Side          string `json:"side"`
	Type          string `json:"type"`
	Quantity      string `json:"origQty"`
	Price         string `json:"price"`
	Status        string `json:"status"`
	TransactTime  int64  `json:"transactTime"`
}

type wireBalance struct {
	Asset  string `json:"asset"`
	Free   string `json:"free"`
	Locked string `json:"locked"`
}

type wireAccountInfo struct {
	Balances []wireBalance `json:"balances"`
}

// wireTicker is the payload of a "@ticker" (24hrTicker) stream, and also
// the combined-stream "data" field for the same event.
type wireTicker struct {
	Symbol             string `json:"s"`
	LastPrice          string `json:"c"`
	PriceChangePercent string `json:"P"`
	PriceChange        string `json:"p"`
	HighPrice          string `json:"h"`
	LowPrice           string `json:"l"`
	Volume             string `json:"v"`
	QuoteVolume        string `json:"q"`
	OpenTime           int64  `json:"O"`
	CloseTime          int64  `json:"C"`
	Count              int64  `json:"n"`
}

// wireDepth is a "@depth" partial book depth update.
type wireDepth struct {
	Symbol        string     `json:"s"`
	FinalUpdateID int64      `json:"u"`
	Bids          [][]string `json:"b"`
	Asks          [][]string `json:"a"`
}

// wireTrade is a "@trade" aggregated trade print.
type wireTrade struct {
	Symbol       string `json:"s"`
	ID           int64  `json:"t"`
	Price        string `json:"p"`
	Quantity     string `json:"q"`
	Time         int64  `json:"T"`
	IsBuyerMaker bool   `json:"m"`
}

// wireKlineEvent wraps the nested "k" object a "@kline" stream sends.
type wireKlineEvent struct {
	Symbol string        `json:"s"`
	Kline  wireKlineData `json:"k"`
}

type wireKlineData struct {
	OpenTime        int64  `json:"t"`
	CloseTime       int64  `json:"T"`
	Interval        string `json:"i"`
	OpenPrice       string `json:"o"`
	HighPrice       string `json:"h"`
	LowPrice        string `json:"l"`
	ClosePrice      string `json:"c"`
	Volume          string `json:"v"`
	NumberOfTrades  int64  `json:"n"`
	IsFinal         bool   `json:"x"`
}

// wireRestKline is one element of GET /api/v3/klines's array-of-arrays
// response. Binance ships each candle as a positional JSON array rather
// than an object, so it is decoded into []interface{} and indexed by hand
// (see decodeRestKline in converters.go) instead of via struct tags.
type wireRestKline = []interface{}

// wireEnvelope inspects a raw frame just enough to route it: combined
// streams wrap the real payload in {"stream": "...", "data": {...}}, while
// a raw single-stream subscription (or an error/ack) carries either the
// Binance event-type tag "e" or a "result"/"error" field directly.
type wireEnvelope struct {
	Stream string                 `json:"stream"`
	Data   map[string]interface{} `json:"data"`
	Event  string                 `json:"e"`
	Result json.RawMessage        `json:"result"`
	Error  json.RawMessage        `json:"error"`
}

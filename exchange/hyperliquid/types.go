// Package hyperliquid is a lightweight adapter shell proving the bearer
// JWT signer and the FundingRateSource trait wire through the generic
// connector builder. Hyperliquid's real wire dialect (JSON actions hashed
// via msgpack and signed with an Ethereum-style secp256k1 signature over a single
// /info and /exchange endpoint pair) is out of scope here; this package
// models a plain REST/WS surface shaped like the other adapters instead.
package hyperliquid

type wireMarket struct {
	Symbol        string `json:"symbol"`
	Base          string `json:"base"`
	Quote         string `json:"quote"`
	Status        string `json:"status"`
	BasePrecision int    `json:"basePrecision"`
	QuotePrecision int   `json:"quotePrecision"`
	MinQty        string `json:"minQty"`
	MaxQty        string `json:"maxQty"`
}

type wireTicker struct {
	Symbol    string `json:"symbol"`
	LastPrice string `json:"lastPrice"`
	HighPrice string `json:"highPrice"`
	LowPrice  string `json:"lowPrice"`
	Volume    string `json:"volume"`
}

type wireOrderBook struct {
	Symbol string     `json:"symbol"`
	Bids   [][]string `json:"bids"`
	Asks   [][]string `json:"asks"`
	SeqNum int64      `json:"seqNum"`
}

type wireTrade struct {
	Symbol    string `json:"symbol"`
	TradeID   string `json:"tradeId"`
	Price     string `json:"price"`
	Size      string `json:"size"`
	Timestamp int64  `json:"timestamp"`
	Side      string `json:"side"`
}

type wireKline struct {
	Symbol    string `json:"symbol"`
	OpenTime  int64  `json:"openTime"`
	CloseTime int64  `json:"closeTime"`
	Interval  string `json:"interval"`
	Open      string `json:"open"`
	High      string `json:"high"`
	Low       string `json:"low"`
	Close     string `json:"close"`
	Volume    string `json:"volume"`
	Final     bool   `json:"final"`
}

type wireOrderRequest struct {
	Symbol      string `json:"symbol"`
	Side        string `json:"side"`
	OrderType   string `json:"orderType"`
	Qty         string `json:"qty"`
	Price       string `json:"price,omitempty"`
	TimeInForce string `json:"timeInForce,omitempty"`
	ClientID    string `json:"clientId,omitempty"`
	ReduceOnly  bool   `json:"reduceOnly,omitempty"`
}

type wireOrderResponse struct {
	OrderID   string `json:"orderId"`
	ClientID  string `json:"clientId"`
	Symbol    string `json:"symbol"`
	Side      string `json:"side"`
	OrderType string `json:"orderType"`
	Qty       string `json:"qty"`
	Price     string `json:"price"`
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
}

type wireCancelRequest struct {
	Symbol  string `json:"symbol"`
	OrderID string `json:"orderId"`
}

type wireBalance struct {
	Coin      string `json:"coin"`
	Total     string `json:"total"`
	Available string `json:"available"`
}

type wirePosition struct {
	Symbol        string `json:"symbol"`
	Side          string `json:"side"`
	Size          string `json:"size"`
	EntryPrice    string `json:"entryPrice"`
	UnrealizedPnl string `json:"unrealizedPnl"`
	Leverage      int32  `json:"leverage"`
}

type wireFundingRate struct {
	Symbol          string `json:"symbol"`
	FundingRate     string `json:"fundingRate"`
	MarkPrice       string `json:"markPrice"`
	NextFundingTime int64  `json:"nextFundingTime"`
}

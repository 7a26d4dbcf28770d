// Package bybit implements the Bybit v5 adapter (spot and linear
// perpetual, selected by Category at Build time) on top of the generic
// connector kernel.
package bybit

import "encoding/json"

// wireEnvelope is Bybit v5's REST response envelope: every endpoint
// answers {retCode, retMsg, result}, so decoding always happens in two
// steps -- unwrap the envelope, then decode Result into the shape the
// caller expects.
type wireEnvelope struct {
	RetCode int             `json:"retCode"`
	RetMsg  string          `json:"retMsg"`
	Result  json.RawMessage `json:"result"`
}

type wireInstrumentsInfo struct {
	List []wireMarket `json:"list"`
}

type wireMarket struct {
	Symbol        string          `json:"symbol"`
	BaseCoin      string          `json:"baseCoin"`
	QuoteCoin     string          `json:"quoteCoin"`
	Status        string          `json:"status"`
	LotSizeFilter wireLotSize     `json:"lotSizeFilter"`
	PriceFilter   wirePriceFilter `json:"priceFilter"`
}

type wireLotSize struct {
	BasePrecision  string `json:"basePrecision"`
	QuotePrecision string `json:"quotePrecision"`
	MinOrderQty    string `json:"minOrderQty"`
	MaxOrderQty    string `json:"maxOrderQty"`
}

type wirePriceFilter struct {
	TickSize string `json:"tickSize"`
}

type wireAccountResult struct {
	List []wireAccountList `json:"list"`
}

type wireAccountList struct {
	Coin []wireBalance `json:"coin"`
}

type wireBalance struct {
	Coin           string `json:"coin"`
	WalletBalance  string `json:"walletBalance"`
	Equity         string `json:"equity"`
	AvailableToWithdraw string `json:"availableToWithdraw"`
	Locked         string `json:"locked"`
}

type wireOrderRequest struct {
	Category    string `json:"category"`
	Symbol      string `json:"symbol"`
	Side        string `json:"side"`
	OrderType   string `json:"orderType"`
	Qty         string `json:"qty"`
	Price       string `json:"price,omitempty"`
	TimeInForce string `json:"timeInForce,omitempty"`
	StopPrice   string `json:"triggerPrice,omitempty"`
	OrderLinkID string `json:"orderLinkId,omitempty"`
}

// wireOrderCreateResult is Bybit v5's order-create acknowledgement.
type wireOrderCreateResult struct {
	OrderID     string `json:"orderId"`
	OrderLinkID string `json:"orderLinkId"`
	Symbol      string `json:"symbol"`
	Side        string `json:"side"`
	OrderType   string `json:"orderType"`
	Qty         string `json:"qty"`
	Price       string `json:"price"`
	OrderStatus string `json:"orderStatus"`
	CreatedTime string `json:"createdTime"`
}

type wireCancelRequest struct {
	Category string `json:"category"`
	Symbol   string `json:"symbol"`
	OrderID  string `json:"orderId"`
}

type wirePosition struct {
	Symbol         string `json:"symbol"`
	Side           string `json:"side"`
	Size           string `json:"size"`
	AvgPrice       string `json:"avgPrice"`
	UnrealisedPnl  string `json:"unrealisedPnl"`
	LiqPrice       string `json:"liqPrice"`
	Leverage       string `json:"leverage"`
}

type wireKlineResult struct {
	List [][]string `json:"list"`
}

type wireFundingResult struct {
	List []wireTicker `json:"list"`
}

// wireTicker doubles as both the WS tickers.* payload and (its FundingRate/
// MarkPrice/IndexPrice fields) the REST /v5/market/tickers?category=linear
// funding snapshot, mirroring how Bybit itself reuses the ticker shape for
// both.
type wireTicker struct {
	Symbol           string `json:"symbol"`
	LastPrice        string `json:"lastPrice"`
	HighPrice24h     string `json:"highPrice24h"`
	LowPrice24h      string `json:"lowPrice24h"`
	PrevPrice24h     string `json:"prevPrice24h"`
	Volume24h        string `json:"volume24h"`
	Turnover24h      string `json:"turnover24h"`
	Price24hPcnt     string `json:"price24hPcnt"`
	FundingRate      string `json:"fundingRate"`
	NextFundingTime  string `json:"nextFundingTime"`
	MarkPrice        string `json:"markPrice"`
	IndexPrice       string `json:"indexPrice"`
}

type wireOrderBook struct {
	Symbol string     `json:"s"`
	Bids   [][]string `json:"b"`
	Asks   [][]string `json:"a"`
	UpdateID int64    `json:"u"`
}

type wireTrade struct {
	Symbol    string `json:"s"`
	Side      string `json:"S"`
	Price     string `json:"p"`
	Size      string `json:"v"`
	Timestamp int64  `json:"T"`
	TradeID   string `json:"i"`
}

type wireKlineWs struct {
	Start     int64  `json:"start"`
	End       int64  `json:"end"`
	Interval  string `json:"interval"`
	Open      string `json:"open"`
	Close     string `json:"close"`
	High      string `json:"high"`
	Low       string `json:"low"`
	Volume    string `json:"volume"`
	Turnover  string `json:"turnover"`
	Confirm   bool   `json:"confirm"`
}

// wireOpFrame recognizes {"op": "ping"|"pong"|"subscribe", ...} control
// frames, which arrive as ordinary JSON text rather than WS protocol
// control frames.
type wireOpFrame struct {
	Op      string   `json:"op"`
	Args    []string `json:"args"`
	ReqID   string   `json:"req_id,omitempty"`
	Success *bool    `json:"success,omitempty"`
}

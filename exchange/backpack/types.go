// Package backpack is a lightweight adapter shell proving the Ed25519
// signer variant and the FundingRateSource trait wire through the generic
// connector builder. Backpack's real wire dialect is out of scope; this
// package models a plain REST/WS surface shaped like the other adapters.
package backpack

type wireMarket struct {
	Symbol         string `json:"symbol"`
	BaseSymbol     string `json:"baseSymbol"`
	QuoteSymbol    string `json:"quoteSymbol"`
	OrderBookState string `json:"orderBookState"`
	MinQty         string `json:"minQty"`
	MaxQty         string `json:"maxQty"`
	MinPrice       string `json:"minPrice"`
	MaxPrice       string `json:"maxPrice"`
}

type wireTicker struct {
	Symbol    string `json:"symbol"`
	LastPrice string `json:"lastPrice"`
	HighPrice string `json:"highPrice"`
	LowPrice  string `json:"lowPrice"`
	Volume    string `json:"volume"`
}

type wireOrderBook struct {
	Symbol       string     `json:"symbol"`
	Bids         [][]string `json:"bids"`
	Asks         [][]string `json:"asks"`
	LastUpdateID int64      `json:"lastUpdateId"`
}

type wireTrade struct {
	Symbol       string `json:"symbol"`
	TradeID      string `json:"tradeId"`
	Price        string `json:"price"`
	Quantity     string `json:"quantity"`
	Timestamp    int64  `json:"timestamp"`
	IsBuyerMaker bool   `json:"isBuyerMaker"`
}

type wireKline struct {
	Symbol string `json:"symbol"`
	Start  string `json:"start"`
	End    string `json:"end"`
	Open   string `json:"open"`
	High   string `json:"high"`
	Low    string `json:"low"`
	Close  string `json:"close"`
	Volume string `json:"volume"`
}

type wireOrderRequest struct {
	Symbol        string `json:"symbol"`
	Side          string `json:"side"`
	OrderType     string `json:"orderType"`
	Quantity      string `json:"quantity"`
	Price         string `json:"price,omitempty"`
	TimeInForce   string `json:"timeInForce,omitempty"`
	ClientOrderID string `json:"clientId,omitempty"`
}

type wireOrderResponse struct {
	OrderID       string `json:"orderId"`
	ClientOrderID string `json:"clientId"`
	Symbol        string `json:"symbol"`
	Side          string `json:"side"`
	OrderType     string `json:"orderType"`
	Quantity      string `json:"quantity"`
	Price         string `json:"price"`
	Status        string `json:"status"`
	Timestamp     int64  `json:"timestamp"`
}

type wireCancelRequest struct {
	Symbol  string `json:"symbol"`
	OrderID string `json:"orderId"`
}

type wireBalance struct {
	Asset  string `json:"asset"`
	Free   string `json:"free"`
	Locked string `json:"locked"`
}

type wirePosition struct {
	Symbol        string `json:"symbol"`
	Side          string `json:"side"`
	Size          string `json:"size"`
	EntryPrice    string `json:"entryPrice"`
	UnrealizedPnl string `json:"unrealizedPnl"`
	Leverage      string `json:"leverage"`
}

type wireFundingRate struct {
	Symbol          string `json:"symbol"`
	FundingRate     string `json:"fundingRate"`
	FundingTime     int64  `json:"fundingTime"`
	NextFundingTime int64  `json:"nextFundingTime"`
}

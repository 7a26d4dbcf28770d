// Package paradex is a lightweight adapter shell proving the JWT bearer
// signer variant and the FundingRateSource trait wire through the generic
// connector builder. Paradex's real StarkNet-signature wire dialect is out
// of scope; this package models a plain REST/WS surface shaped like the
// other adapters.
package paradex

type wireMarket struct {
	Symbol        string `json:"symbol"`
	BaseCurrency  string `json:"base_currency"`
	QuoteCurrency string `json:"quote_currency"`
	Status        string `json:"status"`
	MinOrderSize  string `json:"min_order_size"`
	PriceTickSize string `json:"price_tick_size"`
}

type wireTicker struct {
	Symbol    string `json:"symbol"`
	LastPrice string `json:"last_price"`
	HighPrice string `json:"high_price"`
	LowPrice  string `json:"low_price"`
	Volume    string `json:"volume"`
}

type wireOrderBook struct {
	Symbol   string     `json:"symbol"`
	Bids     [][]string `json:"bids"`
	Asks     [][]string `json:"asks"`
	UpdateID int64      `json:"update_id"`
}

type wireTrade struct {
	Symbol    string `json:"symbol"`
	TradeID   string `json:"trade_id"`
	Price     string `json:"price"`
	Size      string `json:"size"`
	Timestamp int64  `json:"timestamp"`
	Side      string `json:"side"`
}

type wireKline struct {
	Symbol    string `json:"symbol"`
	OpenTime  int64  `json:"open_time"`
	CloseTime int64  `json:"close_time"`
	Open      string `json:"open"`
	High      string `json:"high"`
	Low       string `json:"low"`
	Close     string `json:"close"`
	Volume    string `json:"volume"`
}

type wireOrderRequest struct {
	Market        string `json:"market"`
	Side          string `json:"side"`
	Type          string `json:"type"`
	Size          string `json:"size"`
	Price         string `json:"price,omitempty"`
	TimeInForce   string `json:"instruction,omitempty"`
	ClientOrderID string `json:"client_id,omitempty"`
}

type wireOrderResponse struct {
	OrderID       string `json:"id"`
	ClientOrderID string `json:"client_id"`
	Market        string `json:"market"`
	Side          string `json:"side"`
	Type          string `json:"type"`
	Size          string `json:"size"`
	Price         string `json:"price"`
	Status        string `json:"status"`
	CreatedAt     int64  `json:"created_at"`
}

type wireCancelRequest struct {
	Market  string `json:"market"`
	OrderID string `json:"id"`
}

type wireBalance struct {
	Token string `json:"token"`
	Size  string `json:"size"`
}

type wirePosition struct {
	Market        string `json:"market"`
	Side          string `json:"side"`
	Size          string `json:"size"`
	AverageEntry  string `json:"average_entry_price"`
	UnrealizedPnl string `json:"unrealized_pnl"`
	Leverage      string `json:"leverage"`
}

type wireFundingRate struct {
	Market         string `json:"market"`
	FundingRate    string `json:"funding_rate"`
	FundingPremium string `json:"funding_premium"`
	CreatedAt      int64  `json:"created_at"`
}

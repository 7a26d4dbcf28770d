package types

import "github.com/antihax/optional"

// Timestamp is signed integer milliseconds since the Unix epoch.
type Timestamp int64

// Market describes one tradable symbol and its trading rules.
type Market struct {
	Symbol         Symbol
	Status         string
	BasePrecision  uint8
	QuotePrecision uint8
	MinQty         optional.Interface // Quantity, when present
	MaxQty         optional.Interface // Quantity, when present
	MinPrice       optional.Interface // Price, when present
	MaxPrice       optional.Interface // Price, when present
}

// Validate checks the invariants spec.md places on Market: precisions
// bounded at 18, and min/max bounds ordered when both are present.
func (m Market) Validate() error {
	if m.BasePrecision > 18 || m.QuotePrecision > 18 {
		return NewInvalidParameters("market precision must be <= 18")
	}
	if m.MinQty.IsSet() && m.MaxQty.IsSet() {
		minQ := m.MinQty.Value().(Quantity)
		maxQ := m.MaxQty.Value().(Quantity)
		if maxQ.LessThan(minQ) {
			return NewInvalidParameters("market min_qty must be <= max_qty")
		}
	}
	if m.MinPrice.IsSet() && m.MaxPrice.IsSet() {
		minP := m.MinPrice.Value().(Price)
		maxP := m.MaxPrice.Value().(Price)
		if maxP.LessThan(minP) {
			return NewInvalidParameters("market min_price must be <= max_price")
		}
	}
	return nil
}

// OrderBookLevel is a single price/quantity rung of a book side.
type OrderBookLevel struct {
	Price    Price
	Quantity Quantity
}

// OrderBook is a symbol's current bid/ask ladder. Bids must be ordered
// strictly descending by price; asks strictly ascending; the best bid must
// be below the best ask when both sides are non-empty.
type OrderBook struct {
	Symbol       Symbol
	Bids         []OrderBookLevel
	Asks         []OrderBookLevel
	LastUpdateID int64
}

func (b OrderBook) Validate() error {
	for i := 1; i < len(b.Bids); i++ {
		if !b.Bids[i-1].Price.GreaterThan(b.Bids[i].Price) {
			return NewInvalidParameters("order book bids must be strictly descending")
		}
	}
	for i := 1; i < len(b.Asks); i++ {
		if !b.Asks[i].Price.GreaterThan(b.Asks[i-1].Price) {
			return NewInvalidParameters("order book asks must be strictly ascending")
		}
	}
	if len(b.Bids) > 0 && len(b.Asks) > 0 {
		if !b.Bids[0].Price.LessThan(b.Asks[0].Price) {
			return NewInvalidParameters("order book best bid must be below best ask")
		}
	}
	return nil
}

// BestBid and BestAsk return the top-of-book level, ok=false if that side
// is empty.
func (b OrderBook) BestBid() (OrderBookLevel, bool) {
	if len(b.Bids) == 0 {
		return OrderBookLevel{}, false
	}
	return b.Bids[0], true
}

func (b OrderBook) BestAsk() (OrderBookLevel, bool) {
	if len(b.Asks) == 0 {
		return OrderBookLevel{}, false
	}
	return b.Asks[0], true
}

// Ticker is a 24h rolling aggregate for one symbol.
type Ticker struct {
	Symbol             Symbol
	LastPrice          Price
	PriceChange        Price
	PriceChangePercent string
	HighPrice          Price
	LowPrice           Price
	Volume             Volume
	QuoteVolume        Volume
	OpenTime           Timestamp
	CloseTime          Timestamp
	Count              int64
}

// Trade is a single executed print.
type Trade struct {
	ID           string
	Symbol       Symbol
	Price        Price
	Quantity     Quantity
	Timestamp    Timestamp
	IsBuyerMaker bool
}

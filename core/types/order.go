package types

import (
	"github.com/antihax/optional"
	"github.com/google/uuid"
)

type OrderSide int

const (
	Buy OrderSide = iota
	Sell
)

func (s OrderSide) String() string {
	if s == Buy {
		return "BUY"
	}
	return "SELL"
}

type OrderType int

const (
	MarketOrder OrderType = iota
	Limit
	StopLoss
	StopLossLimit
	TakeProfit
	TakeProfitLimit
)

func (t OrderType) String() string {
	switch t {
	case MarketOrder:
		return "MARKET"
	case Limit:
		return "LIMIT"
	case StopLoss:
		return "STOP_LOSS"
	case StopLossLimit:
		return "STOP_LOSS_LIMIT"
	case TakeProfit:
		return "TAKE_PROFIT"
	case TakeProfitLimit:
		return "TAKE_PROFIT_LIMIT"
	default:
		return "UNKNOWN"
	}
}

// requiresPrice is true for every order type that must carry a limit price.
func (t OrderType) requiresPrice() bool {
	switch t {
	case Limit, StopLossLimit, TakeProfitLimit:
		return true
	default:
		return false
	}
}

// requiresStopPrice is true for every stop/take-profit family order type.
func (t OrderType) requiresStopPrice() bool {
	switch t {
	case StopLoss, StopLossLimit, TakeProfit, TakeProfitLimit:
		return true
	default:
		return false
	}
}

type TimeInForce int

const (
	GTC TimeInForce = iota
	IOC
	FOK
)

func (t TimeInForce) String() string {
	switch t {
	case GTC:
		return "GTC"
	case IOC:
		return "IOC"
	case FOK:
		return "FOK"
	default:
		return "GTC"
	}
}

// OrderRequest is the caller-supplied intent to place an order.
type OrderRequest struct {
	Symbol        Symbol
	Side          OrderSide
	OrderType     OrderType
	Quantity      Quantity
	Price         optional.Interface // Price, required for Limit-family types
	TimeInForce   optional.Interface // TimeInForce, when present
	StopPrice     optional.Interface // Price, required for stop-family types
	ClientOrderID string
}

// Validate enforces spec.md's OrderRequest constraints without touching the
// network: Limit-family types require Price, stop-family types require
// StopPrice, quantity must be positive, and price (when present) must be
// positive.
func (r OrderRequest) Validate() error {
	if !r.Quantity.IsPositive() {
		return NewInvalidParameters("order quantity must be > 0")
	}
	price, hasPrice := GetPrice(r.Price)
	if r.OrderType.requiresPrice() && !hasPrice {
		return NewInvalidParameters("order type " + r.OrderType.String() + " requires a price")
	}
	if hasPrice && !price.IsPositive() {
		return NewInvalidParameters("order price must be > 0 when present")
	}
	if r.OrderType.requiresStopPrice() {
		if stopPrice, ok := GetPrice(r.StopPrice); !ok {
			return NewInvalidParameters("order type " + r.OrderType.String() + " requires a stop price")
		} else if !stopPrice.IsPositive() {
			return NewInvalidParameters("order stop price must be > 0 when present")
		}
	}
	return nil
}

// EnsureClientOrderID returns r with a generated ClientOrderID when the
// caller left one empty, so every adapter can rely on client-order-ID
// idempotency without each venue rolling its own ID generation.
func (r OrderRequest) EnsureClientOrderID() OrderRequest {
	if r.ClientOrderID == "" {
		r.ClientOrderID = uuid.NewString()
	}
	return r
}

// OrderResponse is the venue's acknowledgement of a placed order.
type OrderResponse struct {
	OrderID       string
	ClientOrderID string
	Symbol        Symbol
	Side          OrderSide
	OrderType     OrderType
	Quantity      Quantity
	Price         optional.Interface // Price, when present
	Status        string
	Timestamp     Timestamp
}

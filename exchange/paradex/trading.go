package paradex

import (
	"context"
	"encoding/json"

	"github.com/vantagefx/exkernel/core/traits"
	"github.com/vantagefx/exkernel/core/types"
)

// PlaceOrder posts /v1/orders. Paradex's real auth wraps a StarkNet L2
// signature inside a JWT (see ParadexAuth in the reference client); this
// shell reuses the generic signer.JwtSigner, which mints a plain bearer
// token per call rather than deriving it from an L2 signature, so -- as
// with Hyperliquid -- the order body itself carries no signature material.
func (c *Connector) PlaceOrder(ctx context.Context, order types.OrderRequest) (types.OrderResponse, error) {
	if err := c.RequireAuth(); err != nil {
		return types.OrderResponse{}, err
	}
	if err := order.Validate(); err != nil {
		return types.OrderResponse{}, err
	}
	order = order.EnsureClientOrderID()

	req := wireOrderRequest{
		Market:        order.Symbol.String(),
		Side:          convertOrderSide(order.Side),
		Type:          convertOrderType(order.OrderType),
		Size:          order.Quantity.String(),
		ClientOrderID: order.ClientOrderID,
	}
	if price, ok := types.GetPrice(order.Price); ok {
		req.Price = price.String()
		tif := types.GTC
		if order.TimeInForce.IsSet() {
			if tifVal, ok := order.TimeInForce.Value().(types.TimeInForce); ok {
				tif = tifVal
			}
		}
		req.TimeInForce = convertTimeInForce(tif)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return types.OrderResponse{}, types.NewSerializationError("failed to encode paradex order: " + err.Error())
	}

	var resp wireOrderResponse
	if err := c.Rest.PostJSON(ctx, "/v1/orders", body, true, &resp); err != nil {
		return types.OrderResponse{}, err
	}
	return convertOrderResponse(resp, order)
}

func convertOrderSide(s types.OrderSide) string {
	if s == types.Buy {
		return "BUY"
	}
	return "SELL"
}

func convertOrderType(t types.OrderType) string {
	if t == types.MarketOrder {
		return "MARKET"
	}
	return "LIMIT"
}

func convertTimeInForce(t types.TimeInForce) string {
	switch t {
	case types.IOC:
		return "IOC"
	case types.FOK:
		return "FOK"
	default:
		return "GTC"
	}
}

// CancelOrder posts /v1/orders/cancel.
func (c *Connector) CancelOrder(ctx context.Context, symbol, orderID string) error {
	if err := c.RequireAuth(); err != nil {
		return err
	}
	body, err := json.Marshal(wireCancelRequest{Market: symbol, OrderID: orderID})
	if err != nil {
		return types.NewSerializationError("failed to encode paradex cancel request: " + err.Error())
	}
	var ack struct{}
	return c.Rest.PostJSON(ctx, "/v1/orders/cancel", body, true, &ack)
}

// ModifyOrder: the lightweight shell does not model Paradex's edit action.
func (c *Connector) ModifyOrder(ctx context.Context, orderID string, order types.OrderRequest) (types.OrderResponse, error) {
	return traits.UnsupportedModifyOrder(ctx, orderID, order)
}

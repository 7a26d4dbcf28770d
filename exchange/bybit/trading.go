package bybit

import (
	"context"
	"encoding/json"

	"github.com/vantagefx/exkernel/core/traits"
	"github.com/vantagefx/exkernel/core/types"
)

// PlaceOrder posts /v5/order/create. Unlike Binance, Bybit v5 signs over
// the raw JSON body (via HmacBybit's signBybit), so PostJSON -- which
// always sends its reqBody unsigned-query-wise -- is exactly the right
// primitive here, in contrast to binance.PlaceOrder's use of SignedRequest.
func (c *Connector) PlaceOrder(ctx context.Context, order types.OrderRequest) (types.OrderResponse, error) {
	if err := c.RequireAuth(); err != nil {
		return types.OrderResponse{}, err
	}
	if err := order.Validate(); err != nil {
		return types.OrderResponse{}, err
	}
	order = order.EnsureClientOrderID()

	req := wireOrderRequest{
		Category:  c.Category,
		Symbol:    order.Symbol.String(),
		Side:      convertOrderSide(order.Side),
		OrderType: convertOrderType(order.OrderType),
		Qty:       order.Quantity.String(),
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
	if stopPrice, ok := types.GetPrice(order.StopPrice); ok {
		req.StopPrice = stopPrice.String()
	}
	if order.ClientOrderID != "" {
		req.OrderLinkID = order.ClientOrderID
	}

	body, err := json.Marshal(req)
	if err != nil {
		return types.OrderResponse{}, types.NewSerializationError("failed to encode order request: " + err.Error())
	}

	var env wireEnvelope
	if err := c.Rest.PostJSON(ctx, "/v5/order/create", body, true, &env); err != nil {
		return types.OrderResponse{}, err
	}
	if err := checkRetCode(env); err != nil {
		return types.OrderResponse{}, err
	}

	var result wireOrderCreateResult
	if err := json.Unmarshal(env.Result, &result); err != nil {
		return types.OrderResponse{}, types.NewDeserializationError("failed to parse order create result: " + err.Error())
	}

	return convertOrderCreateResult(result, order)
}

// CancelOrder posts /v5/order/cancel with a signed JSON body.
func (c *Connector) CancelOrder(ctx context.Context, symbol, orderID string) error {
	if err := c.RequireAuth(); err != nil {
		return err
	}
	body, err := json.Marshal(wireCancelRequest{Category: c.Category, Symbol: symbol, OrderID: orderID})
	if err != nil {
		return types.NewSerializationError("failed to encode cancel request: " + err.Error())
	}
	var env wireEnvelope
	if err := c.Rest.PostJSON(ctx, "/v5/order/cancel", body, true, &env); err != nil {
		return err
	}
	return checkRetCode(env)
}

// ModifyOrder: Bybit v5 does support /v5/order/amend, but qty/price
// amendment isn't part of the OrderRequest.Validate() contract this kernel
// exposes, so it's treated as unsupported like Binance's spot venue.
func (c *Connector) ModifyOrder(ctx context.Context, orderID string, order types.OrderRequest) (types.OrderResponse, error) {
	return traits.UnsupportedModifyOrder(ctx, orderID, order)
}

package backpack

import (
	"context"
	"encoding/json"

	"github.com/vantagefx/exkernel/core/traits"
	"github.com/vantagefx/exkernel/core/types"
)

// PlaceOrder posts /api/v1/order. The signer.Ed25519Signer signs the JSON
// body's fields (or the query string when there is no body), sorted by key,
// inside Backpack's instruction=...&<params>&timestamp=...&window=...
// canonical message, so PostJSON's body-based primitive is the right fit
// here, same as Bybit's HMAC variant.
func (c *Connector) PlaceOrder(ctx context.Context, order types.OrderRequest) (types.OrderResponse, error) {
	if err := c.RequireAuth(); err != nil {
		return types.OrderResponse{}, err
	}
	if err := order.Validate(); err != nil {
		return types.OrderResponse{}, err
	}
	order = order.EnsureClientOrderID()

	req := wireOrderRequest{
		Symbol:        order.Symbol.String(),
		Side:          convertOrderSide(order.Side),
		OrderType:     convertOrderType(order.OrderType),
		Quantity:      order.Quantity.String(),
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
		return types.OrderResponse{}, types.NewSerializationError("failed to encode backpack order: " + err.Error())
	}

	var resp wireOrderResponse
	if err := c.Rest.PostJSON(ctx, "/api/v1/order", body, true, &resp); err != nil {
		return types.OrderResponse{}, err
	}
	return convertOrderResponse(resp, order)
}

func convertOrderSide(s types.OrderSide) string {
	if s == types.Buy {
		return "Bid"
	}
	return "Ask"
}

func convertOrderType(t types.OrderType) string {
	if t == types.MarketOrder {
		return "Market"
	}
	return "Limit"
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

// CancelOrder posts /api/v1/order/cancel with a signed JSON body.
func (c *Connector) CancelOrder(ctx context.Context, symbol, orderID string) error {
	if err := c.RequireAuth(); err != nil {
		return err
	}
	body, err := json.Marshal(wireCancelRequest{Symbol: symbol, OrderID: orderID})
	if err != nil {
		return types.NewSerializationError("failed to encode backpack cancel request: " + err.Error())
	}
	var ack struct{}
	return c.Rest.PostJSON(ctx, "/api/v1/order/cancel", body, true, &ack)
}

// ModifyOrder: the lightweight shell does not model an in-place amend.
func (c *Connector) ModifyOrder(ctx context.Context, orderID string, order types.OrderRequest) (types.OrderResponse, error) {
	return traits.UnsupportedModifyOrder(ctx, orderID, order)
}

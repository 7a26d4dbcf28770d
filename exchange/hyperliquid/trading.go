package hyperliquid

import (
	"context"
	"encoding/json"

	"github.com/vantagefx/exkernel/core/traits"
	"github.com/vantagefx/exkernel/core/types"
)

// PlaceOrder posts /v1/order. Unlike Binance/Bybit's HMAC signature over
// the request itself, Hyperliquid's bearer signer (signer.JwtSigner) signs
// nothing order-specific -- it mints a fresh short-lived token per call and
// attaches it as an Authorization header, so PostJSON's ordinary body
// marshalling is all that's needed here.
func (c *Connector) PlaceOrder(ctx context.Context, order types.OrderRequest) (types.OrderResponse, error) {
	if err := c.RequireAuth(); err != nil {
		return types.OrderResponse{}, err
	}
	if err := order.Validate(); err != nil {
		return types.OrderResponse{}, err
	}
	order = order.EnsureClientOrderID()

	req := wireOrderRequest{
		Symbol:    order.Symbol.String(),
		Side:      convertOrderSide(order.Side),
		OrderType: convertOrderType(order.OrderType),
		Qty:       order.Quantity.String(),
		ClientID:  order.ClientOrderID,
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
		return types.OrderResponse{}, types.NewSerializationError("failed to encode hyperliquid order: " + err.Error())
	}

	var resp wireOrderResponse
	if err := c.Rest.PostJSON(ctx, "/v1/order", body, true, &resp); err != nil {
		return types.OrderResponse{}, err
	}
	return convertOrderResponse(resp, order)
}

func convertOrderSide(s types.OrderSide) string {
	if s == types.Buy {
		return "buy"
	}
	return "sell"
}

func convertOrderType(t types.OrderType) string {
	if t == types.MarketOrder {
		return "market"
	}
	return "limit"
}

func convertTimeInForce(t types.TimeInForce) string {
	switch t {
	case types.IOC:
		return "ioc"
	case types.FOK:
		return "fok"
	default:
		return "gtc"
	}
}

// CancelOrder posts /v1/order/cancel.
func (c *Connector) CancelOrder(ctx context.Context, symbol, orderID string) error {
	if err := c.RequireAuth(); err != nil {
		return err
	}
	body, err := json.Marshal(wireCancelRequest{Symbol: symbol, OrderID: orderID})
	if err != nil {
		return types.NewSerializationError("failed to encode hyperliquid cancel request: " + err.Error())
	}
	var ack struct{}
	return c.Rest.PostJSON(ctx, "/v1/order/cancel", body, true, &ack)
}

// ModifyOrder: the lightweight shell does not model Hyperliquid's
// modify-in-place action.
func (c *Connector) ModifyOrder(ctx context.Context, orderID string, order types.OrderRequest) (types.OrderResponse, error) {
	return traits.UnsupportedModifyOrder(ctx, orderID, order)
}

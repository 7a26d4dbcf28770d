package binance

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/vantagefx/exkernel/core/kernel/signer"
	"github.com/vantagefx/exkernel/core/traits"
	"github.com/vantagefx/exkernel/core/types"
)

// PlaceOrder signs and posts /api/v3/order. Limit-family types carry price
// and time-in-force (defaulting to GTC); stop-family types carry
// stopPrice; both are validated up front by order.Validate() before this
// method ever builds a request. SignedRequest is used (rather than
// PostJSON) because Binance's order endpoint is authenticated by query
// string, not request body, and only SignedRequest exposes the query
// parameter the kernel's HMAC signer needs to hash.
func (c *Connector) PlaceOrder(ctx context.Context, order types.OrderRequest) (types.OrderResponse, error) {
	if err := c.RequireAuth(); err != nil {
		return types.OrderResponse{}, err
	}
	if err := order.Validate(); err != nil {
		return types.OrderResponse{}, err
	}
	order = order.EnsureClientOrderID()

	query := []signer.KV{
		{Key: "symbol", Value: order.Symbol.String()},
		{Key: "side", Value: convertOrderSide(order.Side)},
		{Key: "type", Value: convertOrderType(order.OrderType)},
		{Key: "quantity", Value: order.Quantity.String()},
	}

	if price, ok := types.GetPrice(order.Price); ok {
		query = append(query, signer.KV{Key: "price", Value: price.String()})
		tif := types.GTC
		if order.TimeInForce.IsSet() {
			if tifVal, ok := order.TimeInForce.Value().(types.TimeInForce); ok {
				tif = tifVal
			}
		}
		query = append(query, signer.KV{Key: "timeInForce", Value: convertTimeInForce(tif)})
	}
	if stopPrice, ok := types.GetPrice(order.StopPrice); ok {
		query = append(query, signer.KV{Key: "stopPrice", Value: stopPrice.String()})
	}
	if order.ClientOrderID != "" {
		query = append(query, signer.KV{Key: "newClientOrderId", Value: order.ClientOrderID})
	}

	result, err := c.Rest.SignedRequest(ctx, "POST", "/api/v3/order", query, nil)
	if err != nil {
		return types.OrderResponse{}, err
	}
	raw, err := result.Encode()
	if err != nil {
		return types.OrderResponse{}, types.NewDeserializationError("failed to re-encode order response: " + err.Error())
	}
	var resp wireOrderResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return types.OrderResponse{}, types.NewDeserializationError("failed to parse order response: " + err.Error())
	}

	return convertOrderResponse(resp, order)
}

func convertOrderResponse(resp wireOrderResponse, order types.OrderRequest) (types.OrderResponse, error) {
	symbol, err := types.ParseSymbol(resp.Symbol)
	if err != nil {
		return types.OrderResponse{}, err
	}
	qty, err := types.ParseQuantity(resp.Quantity)
	if err != nil {
		return types.OrderResponse{}, err
	}
	out := types.OrderResponse{
		OrderID:       strconv.FormatInt(resp.OrderID, 10),
		ClientOrderID: resp.ClientOrderID,
		Symbol:        symbol,
		Side:          order.Side,
		OrderType:     order.OrderType,
		Quantity:      qty,
		Status:        resp.Status,
		Timestamp:     types.Timestamp(resp.TransactTime),
	}
	if resp.Price != "" {
		if price, err := types.ParsePrice(resp.Price); err == nil {
			out.Price = types.SomePrice(price)
		}
	}
	return out, nil
}

// CancelOrder signs and issues DELETE /api/v3/order.
func (c *Connector) CancelOrder(ctx context.Context, symbol, orderID string) error {
	if err := c.RequireAuth(); err != nil {
		return err
	}
	query := []signer.KV{
		{Key: "symbol", Value: strings.ToUpper(symbol)},
		{Key: "orderId", Value: orderID},
	}
	_, err := c.Rest.Delete(ctx, "/api/v3/order", query, true)
	return err
}

// ModifyOrder: Binance Spot has no in-place order-modification endpoint.
func (c *Connector) ModifyOrder(ctx context.Context, orderID string, order types.OrderRequest) (types.OrderResponse, error) {
	return traits.UnsupportedModifyOrder(ctx, orderID, order)
}

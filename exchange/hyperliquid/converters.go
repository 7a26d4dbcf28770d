package hyperliquid

import (
	"github.com/antihax/optional"

	"github.com/vantagefx/exkernel/core/types"
)

func convertMarket(m wireMarket) (types.Market, error) {
	symbol, err := types.NewSymbol(m.Base, m.Quote)
	if err != nil {
		return types.Market{}, err
	}
	market := types.Market{
		Symbol:         symbol,
		Status:         m.Status,
		BasePrecision:  clampPrecision(m.BasePrecision),
		QuotePrecision: clampPrecision(m.QuotePrecision),
	}
	if minQty, err := types.ParseQuantity(m.MinQty); err == nil {
		market.MinQty = types.SomeQuantity(minQty)
	}
	if maxQty, err := types.ParseQuantity(m.MaxQty); err == nil {
		market.MaxQty = types.SomeQuantity(maxQty)
	}
	if err := market.Validate(); err != nil {
		return types.Market{}, err
	}
	return market, nil
}

func clampPrecision(p int) uint8 {
	if p < 0 || p > 18 {
		return 0
	}
	return uint8(p)
}

func convertTicker(t wireTicker) (types.MarketDataType, error) {
	symbol, err := types.ParseSymbol(t.Symbol)
	if err != nil {
		return types.MarketDataType{}, err
	}
	last, err := types.ParsePrice(t.LastPrice)
	if err != nil {
		return types.MarketDataType{}, err
	}
	high, err := types.ParsePrice(orDefault(t.HighPrice, "0"))
	if err != nil {
		return types.MarketDataType{}, err
	}
	low, err := types.ParsePrice(orDefault(t.LowPrice, "0"))
	if err != nil {
		return types.MarketDataType{}, err
	}
	volume, err := types.ParseVolume(orDefault(t.Volume, "0"))
	if err != nil {
		return types.MarketDataType{}, err
	}
	return types.NewTickerData(types.Ticker{
		Symbol:    symbol,
		LastPrice: last,
		HighPrice: high,
		LowPrice:  low,
		Volume:    volume,
	}), nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func convertOrderBook(ob wireOrderBook) (types.MarketDataType, error) {
	symbol, err := types.ParseSymbol(ob.Symbol)
	if err != nil {
		return types.MarketDataType{}, err
	}
	bids, err := convertLevels(ob.Bids)
	if err != nil {
		return types.MarketDataType{}, err
	}
	asks, err := convertLevels(ob.Asks)
	if err != nil {
		return types.MarketDataType{}, err
	}
	book := types.OrderBook{
		Symbol:       symbol,
		Bids:         bids,
		Asks:         asks,
		LastUpdateID: ob.SeqNum,
	}
	if err := book.Validate(); err != nil {
		return types.MarketDataType{}, err
	}
	return types.NewOrderBookData(book), nil
}

func convertLevels(raw [][]string) ([]types.OrderBookLevel, error) {
	levels := make([]types.OrderBookLevel, 0, len(raw))
	for _, level := range raw {
		if len(level) != 2 {
			continue
		}
		price, err := types.ParsePrice(level[0])
		if err != nil {
			continue
		}
		qty, err := types.ParseQuantity(level[1])
		if err != nil {
			continue
		}
		levels = append(levels, types.OrderBookLevel{Price: price, Quantity: qty})
	}
	return levels, nil
}

func convertTrade(t wireTrade) (types.MarketDataType, error) {
	symbol, err := types.ParseSymbol(t.Symbol)
	if err != nil {
		return types.MarketDataType{}, err
	}
	price, err := types.ParsePrice(t.Price)
	if err != nil {
		return types.MarketDataType{}, err
	}
	qty, err := types.ParseQuantity(t.Size)
	if err != nil {
		return types.MarketDataType{}, err
	}
	return types.NewTradeData(types.Trade{
		ID:           t.TradeID,
		Symbol:       symbol,
		Price:        price,
		Quantity:     qty,
		Timestamp:    types.Timestamp(t.Timestamp),
		IsBuyerMaker: t.Side == "sell",
	}), nil
}

func convertKline(k wireKline) (types.MarketDataType, error) {
	symbol, err := types.ParseSymbol(k.Symbol)
	if err != nil {
		return types.MarketDataType{}, err
	}
	interval, err := types.ParseKlineInterval(k.Interval)
	if err != nil {
		interval = types.Interval1m
	}
	open, err := types.ParsePrice(k.Open)
	if err != nil {
		return types.MarketDataType{}, err
	}
	high, err := types.ParsePrice(k.High)
	if err != nil {
		return types.MarketDataType{}, err
	}
	low, err := types.ParsePrice(k.Low)
	if err != nil {
		return types.MarketDataType{}, err
	}
	close, err := types.ParsePrice(k.Close)
	if err != nil {
		return types.MarketDataType{}, err
	}
	volume, err := types.ParseVolume(k.Volume)
	if err != nil {
		return types.MarketDataType{}, err
	}
	kline := types.Kline{
		Symbol:    symbol,
		OpenTime:  types.Timestamp(k.OpenTime),
		CloseTime: types.Timestamp(k.CloseTime),
		Interval:  interval,
		Open:      open,
		High:      high,
		Low:       low,
		Close:     close,
		Volume:    volume,
		FinalBar:  k.Final,
	}
	if err := kline.Validate(); err != nil {
		return types.MarketDataType{}, err
	}
	return types.NewKlineData(kline), nil
}

func convertOrderResponse(resp wireOrderResponse, order types.OrderRequest) (types.OrderResponse, error) {
	out := types.OrderResponse{
		OrderID:       resp.OrderID,
		ClientOrderID: resp.ClientID,
		Symbol:        order.Symbol,
		Side:          order.Side,
		OrderType:     order.OrderType,
		Quantity:      order.Quantity,
		Price:         order.Price,
		Status:        orDefault(resp.Status, "New"),
		Timestamp:     types.Timestamp(resp.Timestamp),
	}
	if resp.Symbol != "" {
		if symbol, err := types.ParseSymbol(resp.Symbol); err == nil {
			out.Symbol = symbol
		}
	}
	if resp.Qty != "" {
		if qty, err := types.ParseQuantity(resp.Qty); err == nil {
			out.Quantity = qty
		}
	}
	if resp.Price != "" {
		if price, err := types.ParsePrice(resp.Price); err == nil {
			out.Price = types.SomePrice(price)
		}
	}
	return out, nil
}

func convertPosition(p wirePosition) (types.Position, error) {
	symbol, err := types.ParseSymbol(p.Symbol)
	if err != nil {
		return types.Position{}, err
	}
	entry, err := types.ParsePrice(orDefault(p.EntryPrice, "0"))
	if err != nil {
		return types.Position{}, err
	}
	amount, err := types.ParseQuantity(orDefault(p.Size, "0"))
	if err != nil {
		return types.Position{}, err
	}
	pnl, err := types.ParsePrice(orDefault(p.UnrealizedPnl, "0"))
	if err != nil {
		return types.Position{}, err
	}
	return types.Position{
		Symbol:         symbol,
		PositionSide:   p.Side,
		EntryPrice:     entry,
		PositionAmount: amount,
		UnrealizedPnL:  pnl,
		Leverage:       p.Leverage,
	}, nil
}

func convertFundingRate(f wireFundingRate) (types.FundingRate, error) {
	symbol, err := types.ParseSymbol(f.Symbol)
	if err != nil {
		return types.FundingRate{}, err
	}
	fr := types.FundingRate{Symbol: symbol}
	if rate, err := types.ParsePrice(f.FundingRate); err == nil {
		fr.FundingRate = types.SomePrice(rate)
	}
	if mark, err := types.ParsePrice(f.MarkPrice); err == nil {
		fr.MarkPrice = types.SomePrice(mark)
	}
	if f.NextFundingTime > 0 {
		fr.NextFundingTime = optional.NewInt64(f.NextFundingTime)
	}
	return fr, nil
}

package binance

import (
	"strconv"

	"github.com/vantagefx/exkernel/core/types"
)

// convertMarket applies Binance's LOT_SIZE/PRICE_FILTER filter list onto
// the exchange-agnostic Market shape; filters Binance doesn't send for a
// symbol simply leave the corresponding bound unset.
func convertMarket(m wireMarket) (types.Market, error) {
	symbol, err := types.NewSymbol(m.BaseAsset, m.QuoteAsset)
	if err != nil {
		return types.Market{}, err
	}

	out := types.Market{
		Symbol:         symbol,
		Status:         m.Status,
		BasePrecision:  uint8(m.BaseAssetPrecision),
		QuotePrecision: uint8(m.QuotePrecision),
	}

	for _, f := range m.Filters {
		switch f.FilterType {
		case "LOT_SIZE":
			if f.MinQty != "" {
				q, err := types.ParseQuantity(f.MinQty)
				if err != nil {
					return types.Market{}, err
				}
				out.MinQty = types.SomeQuantity(q)
			}
			if f.MaxQty != "" {
				q, err := types.ParseQuantity(f.MaxQty)
				if err != nil {
					return types.Market{}, err
				}
				out.MaxQty = types.SomeQuantity(q)
			}
		case "PRICE_FILTER":
			if f.MinPrice != "" {
				p, err := types.ParsePrice(f.MinPrice)
				if err != nil {
					return types.Market{}, err
				}
				out.MinPrice = types.SomePrice(p)
			}
			if f.MaxPrice != "" {
				p, err := types.ParsePrice(f.MaxPrice)
				if err != nil {
					return types.Market{}, err
				}
				out.MaxPrice = types.SomePrice(p)
			}
		}
	}

	if err := out.Validate(); err != nil {
		return types.Market{}, err
	}
	return out, nil
}

func convertOrderSide(s types.OrderSide) string { return s.String() }
func convertOrderType(t types.OrderType) string { return t.String() }
func convertTimeInForce(t types.TimeInForce) string { return t.String() }

// convertTicker turns a wireTicker (shared by combined-stream "@ticker"
// frames and the raw "24hrTicker" event) into types.Ticker.
func convertTicker(t wireTicker) (types.MarketDataType, error) {
	symbol, err := types.ParseSymbol(t.Symbol)
	if err != nil {
		return types.MarketDataType{}, err
	}
	last, err := types.ParsePrice(t.LastPrice)
	if err != nil {
		return types.MarketDataType{}, err
	}
	change, err := types.ParsePrice(t.PriceChange)
	if err != nil {
		return types.MarketDataType{}, err
	}
	high, err := types.ParsePrice(t.HighPrice)
	if err != nil {
		return types.MarketDataType{}, err
	}
	low, err := types.ParsePrice(t.LowPrice)
	if err != nil {
		return types.MarketDataType{}, err
	}
	volume, err := types.ParseVolume(t.Volume)
	if err != nil {
		return types.MarketDataType{}, err
	}
	quoteVolume, err := types.ParseVolume(t.QuoteVolume)
	if err != nil {
		return types.MarketDataType{}, err
	}
	return types.NewTickerData(types.Ticker{
		Symbol:             symbol,
		LastPrice:          last,
		PriceChange:        change,
		PriceChangePercent: t.PriceChangePercent,
		HighPrice:          high,
		LowPrice:           low,
		Volume:             volume,
		QuoteVolume:        quoteVolume,
		OpenTime:           types.Timestamp(t.OpenTime),
		CloseTime:          types.Timestamp(t.CloseTime),
		Count:              t.Count,
	}), nil
}

func convertDepth(d wireDepth) (types.MarketDataType, error) {
	symbol, err := types.ParseSymbol(d.Symbol)
	if err != nil {
		return types.MarketDataType{}, err
	}
	bids, err := convertLevels(d.Bids)
	if err != nil {
		return types.MarketDataType{}, err
	}
	asks, err := convertLevels(d.Asks)
	if err != nil {
		return types.MarketDataType{}, err
	}
	ob := types.OrderBook{
		Symbol:       symbol,
		Bids:         bids,
		Asks:         asks,
		LastUpdateID: d.FinalUpdateID,
	}
	if err := ob.Validate(); err != nil {
		return types.MarketDataType{}, err
	}
	return types.NewOrderBookData(ob), nil
}

func convertLevels(raw [][]string) ([]types.OrderBookLevel, error) {
	levels := make([]types.OrderBookLevel, 0, len(raw))
	for _, pair := range raw {
		if len(pair) != 2 {
			continue
		}
		price, err := types.ParsePrice(pair[0])
		if err != nil {
			return nil, err
		}
		qty, err := types.ParseQuantity(pair[1])
		if err != nil {
			return nil, err
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
	qty, err := types.ParseQuantity(t.Quantity)
	if err != nil {
		return types.MarketDataType{}, err
	}
	return types.NewTradeData(types.Trade{
		ID:           strconv.FormatInt(t.ID, 10),
		Symbol:       symbol,
		Price:        price,
		Quantity:     qty,
		Timestamp:    types.Timestamp(t.Time),
		IsBuyerMaker: t.IsBuyerMaker,
	}), nil
}

func convertKlineEvent(k wireKlineEvent) (types.MarketDataType, error) {
	symbol, err := types.ParseSymbol(k.Symbol)
	if err != nil {
		return types.MarketDataType{}, err
	}
	kline, err := buildKline(symbol, k.Kline.Interval, k.Kline.OpenTime, k.Kline.CloseTime,
		k.Kline.OpenPrice, k.Kline.HighPrice, k.Kline.LowPrice, k.Kline.ClosePrice,
		k.Kline.Volume, k.Kline.NumberOfTrades, k.Kline.IsFinal)
	if err != nil {
		return types.MarketDataType{}, err
	}
	return types.NewKlineData(kline), nil
}

func buildKline(symbol types.Symbol, wireInterval string, openTime, closeTime int64,
	openPrice, highPrice, lowPrice, closePrice, volume string, trades int64, final bool) (types.Kline, error) {
	interval, err := types.ParseKlineInterval(wireInterval)
	if err != nil {
		return types.Kline{}, err
	}
	open, err := types.ParsePrice(openPrice)
	if err != nil {
		return types.Kline{}, err
	}
	high, err := types.ParsePrice(highPrice)
	if err != nil {
		return types.Kline{}, err
	}
	low, err := types.ParsePrice(lowPrice)
	if err != nil {
		return types.Kline{}, err
	}
	closePx, err := types.ParsePrice(closePrice)
	if err != nil {
		return types.Kline{}, err
	}
	vol, err := types.ParseVolume(volume)
	if err != nil {
		return types.Kline{}, err
	}
	kline := types.Kline{
		Symbol:         symbol,
		OpenTime:       types.Timestamp(openTime),
		CloseTime:      types.Timestamp(closeTime),
		Interval:       interval,
		Open:           open,
		High:           high,
		Low:            low,
		Close:          closePx,
		Volume:         vol,
		NumberOfTrades: trades,
		FinalBar:       final,
	}
	if err := kline.Validate(); err != nil {
		return types.Kline{}, err
	}
	return kline, nil
}

// decodeRestKline converts one positional array from GET /api/v3/klines --
// Binance ships each candle as [openTime, open, high, low, close, volume,
// closeTime, quoteVolume, trades, ...] rather than an object.
func decodeRestKline(symbol types.Symbol, interval types.KlineInterval, raw wireRestKline) (types.Kline, error) {
	if len(raw) < 9 {
		return types.Kline{}, types.NewDeserializationError("kline array too short")
	}
	asInt64 := func(v interface{}) int64 {
		f, _ := v.(float64)
		return int64(f)
	}
	asString := func(v interface{}) string {
		s, _ := v.(string)
		return s
	}
	return buildKline(symbol, interval.ToWireString(),
		asInt64(raw[0]), asInt64(raw[6]),
		asString(raw[1]), asString(raw[2]), asString(raw[3]), asString(raw[4]), asString(raw[5]),
		asInt64(raw[8]), true)
}

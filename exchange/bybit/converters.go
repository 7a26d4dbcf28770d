package bybit

import (
	"strconv"

	"github.com/antihax/optional"

	"github.com/vantagefx/exkernel/core/types"
)

func convertMarket(m wireMarket) (types.Market, error) {
	symbol, err := types.NewSymbol(m.BaseCoin, m.QuoteCoin)
	if err != nil {
		return types.Market{}, err
	}

	market := types.Market{Symbol: symbol, Status: m.Status}

	if minQty, err := types.ParseQuantity(m.LotSizeFilter.MinOrderQty); err == nil {
		market.MinQty = types.SomeQuantity(minQty)
	}
	if maxQty, err := types.ParseQuantity(m.LotSizeFilter.MaxOrderQty); err == nil {
		market.MaxQty = types.SomeQuantity(maxQty)
	}
	if m.LotSizeFilter.BasePrecision != "" {
		prec, _ := strconv.Atoi(m.LotSizeFilter.BasePrecision)
		market.BasePrecision = precisionFromString(m.LotSizeFilter.BasePrecision, prec)
	}
	if m.LotSizeFilter.QuotePrecision != "" {
		prec, _ := strconv.Atoi(m.LotSizeFilter.QuotePrecision)
		market.QuotePrecision = precisionFromString(m.LotSizeFilter.QuotePrecision, prec)
	}
	if err := market.Validate(); err != nil {
		return types.Market{}, err
	}
	return market, nil
}

// precisionFromString handles Bybit reporting basePrecision as a decimal
// step ("0.0001") rather than a digit count: when the parsed value looks
// like a step size rather than a small integer, count digits after the
// point instead.
func precisionFromString(raw string, asInt int) uint8 {
	if dot := indexOf(raw, '.'); dot >= 0 {
		return uint8(len(raw) - dot - 1)
	}
	if asInt < 0 || asInt > 18 {
		return 0
	}
	return uint8(asInt)
}

func intToStr(v int64) string { return strconv.FormatInt(v, 10) }

func parseIntOrZero(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func indexOf(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

func convertOrderSide(s types.OrderSide) string {
	if s == types.Buy {
		return "Buy"
	}
	return "Sell"
}

func convertOrderType(t types.OrderType) string {
	switch t {
	case types.MarketOrder:
		return "Market"
	default:
		return "Limit"
	}
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

func convertTicker(t wireTicker) (types.MarketDataType, error) {
	symbol, err := types.ParseSymbol(t.Symbol)
	if err != nil {
		return types.MarketDataType{}, err
	}
	last, err := types.ParsePrice(t.LastPrice)
	if err != nil {
		return types.MarketDataType{}, err
	}
	high, err := types.ParsePrice(orDefault(t.HighPrice24h, "0"))
	if err != nil {
		return types.MarketDataType{}, err
	}
	low, err := types.ParsePrice(orDefault(t.LowPrice24h, "0"))
	if err != nil {
		return types.MarketDataType{}, err
	}
	volume, err := types.ParseVolume(orDefault(t.Volume24h, "0"))
	if err != nil {
		return types.MarketDataType{}, err
	}
	turnover, err := types.ParseVolume(orDefault(t.Turnover24h, "0"))
	if err != nil {
		return types.MarketDataType{}, err
	}

	return types.NewTickerData(types.Ticker{
		Symbol:             symbol,
		LastPrice:          last,
		PriceChangePercent: t.Price24hPcnt,
		HighPrice:          high,
		LowPrice:           low,
		Volume:             volume,
		QuoteVolume:        turnover,
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
		LastUpdateID: ob.UpdateID,
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
		IsBuyerMaker: t.Side == "Sell",
	}), nil
}

func convertKlineWs(symbol string, k wireKlineWs) (types.MarketDataType, error) {
	sym, err := types.ParseSymbol(symbol)
	if err != nil {
		return types.MarketDataType{}, err
	}
	interval, err := types.ParseKlineInterval(k.Interval)
	if err != nil {
		interval = types.Interval1m
	}
	kline, err := buildKline(sym, interval, k.Start, k.End, k.Open, k.High, k.Low, k.Close, k.Volume, k.Confirm)
	if err != nil {
		return types.MarketDataType{}, err
	}
	return types.NewKlineData(kline), nil
}

func buildKline(symbol types.Symbol, interval types.KlineInterval, openTime, closeTime int64, open, high, low, close, volume string, final bool) (types.Kline, error) {
	o, err := types.ParsePrice(open)
	if err != nil {
		return types.Kline{}, err
	}
	h, err := types.ParsePrice(high)
	if err != nil {
		return types.Kline{}, err
	}
	l, err := types.ParsePrice(low)
	if err != nil {
		return types.Kline{}, err
	}
	c, err := types.ParsePrice(close)
	if err != nil {
		return types.Kline{}, err
	}
	v, err := types.ParseVolume(volume)
	if err != nil {
		return types.Kline{}, err
	}
	kline := types.Kline{
		Symbol:    symbol,
		OpenTime:  types.Timestamp(openTime),
		CloseTime: types.Timestamp(closeTime),
		Interval:  interval,
		Open:      o,
		High:      h,
		Low:       l,
		Close:     c,
		Volume:    v,
		FinalBar:  final,
	}
	if err := kline.Validate(); err != nil {
		return types.Kline{}, err
	}
	return kline, nil
}

// decodeRestKline parses Bybit's positional REST kline row:
// [start, open, high, low, close, volume, turnover].
func decodeRestKline(symbol types.Symbol, interval types.KlineInterval, row []string) (types.Kline, error) {
	if len(row) < 6 {
		return types.Kline{}, types.NewDeserializationError("bybit kline row too short")
	}
	start, err := strconv.ParseInt(row[0], 10, 64)
	if err != nil {
		return types.Kline{}, types.NewDeserializationError("bad kline start time: " + err.Error())
	}
	closeTime := start + interval.ToSeconds()*1000
	return buildKline(symbol, interval, start, closeTime, row[1], row[2], row[3], row[4], row[5], true)
}

// convertOrderCreateResult falls back to the placed order's own fields
// whenever Bybit's ack omits one -- some deployments echo the full order,
// others return only the order id pair.
func convertOrderCreateResult(result wireOrderCreateResult, order types.OrderRequest) (types.OrderResponse, error) {
	out := types.OrderResponse{
		OrderID:       result.OrderID,
		ClientOrderID: result.OrderLinkID,
		Symbol:        order.Symbol,
		Side:          order.Side,
		OrderType:     order.OrderType,
		Quantity:      order.Quantity,
		Price:         order.Price,
		Status:        "New",
	}
	if result.Symbol != "" {
		if symbol, err := types.ParseSymbol(result.Symbol); err == nil {
			out.Symbol = symbol
		}
	}
	if result.Qty != "" {
		if qty, err := types.ParseQuantity(result.Qty); err == nil {
			out.Quantity = qty
		}
	}
	if result.Price != "" {
		if price, err := types.ParsePrice(result.Price); err == nil {
			out.Price = types.SomePrice(price)
		}
	}
	if result.OrderStatus != "" {
		out.Status = result.OrderStatus
	}
	if result.CreatedTime != "" {
		out.Timestamp = types.Timestamp(parseIntOrZero(result.CreatedTime))
	}
	return out, nil
}

func convertPosition(p wirePosition) (types.Position, error) {
	symbol, err := types.ParseSymbol(p.Symbol)
	if err != nil {
		return types.Position{}, err
	}
	entry, err := types.ParsePrice(orDefault(p.AvgPrice, "0"))
	if err != nil {
		return types.Position{}, err
	}
	amount, err := types.ParseQuantity(orDefault(p.Size, "0"))
	if err != nil {
		return types.Position{}, err
	}
	pnl, err := types.ParsePrice(orDefault(p.UnrealisedPnl, "0"))
	if err != nil {
		return types.Position{}, err
	}
	pos := types.Position{
		Symbol:         symbol,
		PositionSide:   p.Side,
		EntryPrice:     entry,
		PositionAmount: amount,
		UnrealizedPnL:  pnl,
	}
	if leverage, err := strconv.Atoi(p.Leverage); err == nil {
		pos.Leverage = int32(leverage)
	}
	if liq, err := types.ParsePrice(p.LiqPrice); err == nil && !liq.IsZero() {
		pos.LiquidationPrice = types.SomePrice(liq)
	}
	return pos, nil
}

func convertFundingRate(t wireTicker) (types.FundingRate, error) {
	symbol, err := types.ParseSymbol(t.Symbol)
	if err != nil {
		return types.FundingRate{}, err
	}
	fr := types.FundingRate{Symbol: symbol}
	if rate, err := types.ParsePrice(t.FundingRate); err == nil {
		fr.FundingRate = types.SomePrice(rate)
	}
	if mark, err := types.ParsePrice(t.MarkPrice); err == nil {
		fr.MarkPrice = types.SomePrice(mark)
	}
	if index, err := types.ParsePrice(t.IndexPrice); err == nil {
		fr.IndexPrice = types.SomePrice(index)
	}
	if nextTime, err := strconv.ParseInt(t.NextFundingTime, 10, 64); err == nil {
		fr.NextFundingTime = optional.NewInt64(nextTime)
	}
	return fr, nil
}

package types

// KlineInterval is the closed set of candle widths every venue must be
// able to express in its own wire vocabulary via ToWireString.
type KlineInterval int

const (
	Interval1m KlineInterval = iota
	Interval3m
	Interval5m
	Interval15m
	Interval30m
	Interval1h
	Interval2h
	Interval4h
	Interval6h
	Interval8h
	Interval12h
	Interval1d
	Interval3d
	Interval1w
	Interval1M
)

var intervalSeconds = map[KlineInterval]int64{
	Interval1m:  60,
	Interval3m:  3 * 60,
	Interval5m:  5 * 60,
	Interval15m: 15 * 60,
	Interval30m: 30 * 60,
	Interval1h:  3600,
	Interval2h:  2 * 3600,
	Interval4h:  4 * 3600,
	Interval6h:  6 * 3600,
	Interval8h:  8 * 3600,
	Interval12h: 12 * 3600,
	Interval1d:  24 * 3600,
	Interval3d:  3 * 24 * 3600,
	Interval1w:  7 * 24 * 3600,
	Interval1M:  30 * 24 * 3600,
}

var intervalWire = map[KlineInterval]string{
	Interval1m:  "1m",
	Interval3m:  "3m",
	Interval5m:  "5m",
	Interval15m: "15m",
	Interval30m: "30m",
	Interval1h:  "1h",
	Interval2h:  "2h",
	Interval4h:  "4h",
	Interval6h:  "6h",
	Interval8h:  "8h",
	Interval12h: "12h",
	Interval1d:  "1d",
	Interval3d:  "3d",
	Interval1w:  "1w",
	Interval1M:  "1M",
}

var wireToInterval = func() map[string]KlineInterval {
	m := make(map[string]KlineInterval, len(intervalWire))
	for k, v := range intervalWire {
		m[v] = k
	}
	return m
}()

// ToSeconds returns the interval's width in seconds. Total over the closed
// set; there is no interval for which this returns an undefined value.
func (i KlineInterval) ToSeconds() int64 { return intervalSeconds[i] }

// ToWireString returns the exchange-agnostic canonical form (e.g. "1h").
// Injective within the closed set: distinct intervals never share a string.
func (i KlineInterval) ToWireString() string { return intervalWire[i] }

// ParseKlineInterval is the inverse of ToWireString.
func ParseKlineInterval(s string) (KlineInterval, error) {
	if iv, ok := wireToInterval[s]; ok {
		return iv, nil
	}
	return 0, NewInvalidParameters("unknown kline interval: " + s)
}

// Kline is one candlestick.
type Kline struct {
	Symbol           Symbol
	OpenTime         Timestamp
	CloseTime        Timestamp
	Interval         KlineInterval
	Open             Price
	High             Price
	Low              Price
	Close            Price
	Volume           Volume
	NumberOfTrades   int64
	FinalBar         bool
}

// Validate enforces low <= min(open,close) <= max(open,close) <= high and
// open_time < close_time.
func (k Kline) Validate() error {
	minOC := k.Open
	maxOC := k.Open
	if k.Close.LessThan(minOC) {
		minOC = k.Close
	}
	if k.Close.GreaterThan(maxOC) {
		maxOC = k.Close
	}
	if k.Low.GreaterThan(minOC) {
		return NewInvalidParameters("kline low must be <= min(open, close)")
	}
	if maxOC.GreaterThan(k.High) {
		return NewInvalidParameters("kline max(open, close) must be <= high")
	}
	if k.OpenTime >= k.CloseTime {
		return NewInvalidParameters("kline open_time must be < close_time")
	}
	return nil
}

package types

import (
	"github.com/shopspring/decimal"
)

// Price, Quantity, and Volume are distinct arbitrary-precision decimal
// scalars. Keeping them as separate types (rather than a shared alias)
// prevents accidentally comparing a price to a quantity at compile time,
// while all three share the same underlying decimal.Decimal so arithmetic
// stays exact end to end (never binary floating point).

type Price struct{ d decimal.Decimal }

type Quantity struct{ d decimal.Decimal }

type Volume struct{ d decimal.Decimal }

func NewPrice(d decimal.Decimal) Price       { return Price{d: d} }
func NewQuantity(d decimal.Decimal) Quantity { return Quantity{d: d} }
func NewVolume(d decimal.Decimal) Volume     { return Volume{d: d} }

func ParsePrice(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, NewDeserializationError("invalid price: " + err.Error())
	}
	return Price{d: d}, nil
}

func ParseQuantity(s string) (Quantity, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Quantity{}, NewDeserializationError("invalid quantity: " + err.Error())
	}
	return Quantity{d: d}, nil
}

func ParseVolume(s string) (Volume, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Volume{}, NewDeserializationError("invalid volume: " + err.Error())
	}
	return Volume{d: d}, nil
}

func (p Price) Decimal() decimal.Decimal    { return p.d }
func (q Quantity) Decimal() decimal.Decimal { return q.d }
func (v Volume) Decimal() decimal.Decimal   { return v.d }

func (p Price) String() string    { return p.d.String() }
func (q Quantity) String() string { return q.d.String() }
func (v Volume) String() string   { return v.d.String() }

func (p Price) IsZero() bool    { return p.d.IsZero() }
func (q Quantity) IsZero() bool { return q.d.IsZero() }

func (p Price) IsPositive() bool    { return p.d.IsPositive() }
func (q Quantity) IsPositive() bool { return q.d.IsPositive() }

func (p Price) LessThan(o Price) bool       { return p.d.LessThan(o.d) }
func (p Price) GreaterThan(o Price) bool    { return p.d.GreaterThan(o.d) }
func (p Price) Equal(o Price) bool          { return p.d.Equal(o.d) }
func (q Quantity) LessThan(o Quantity) bool { return q.d.LessThan(o.d) }
func (q Quantity) Equal(o Quantity) bool    { return q.d.Equal(o.d) }

func (p Price) Add(o Price) Price      { return Price{d: p.d.Add(o.d)} }
func (p Price) Sub(o Price) Price      { return Price{d: p.d.Sub(o.d)} }
func (q Quantity) Add(o Quantity) Quantity { return Quantity{d: q.d.Add(o.d)} }
func (q Quantity) Sub(o Quantity) Quantity { return Quantity{d: q.d.Sub(o.d)} }

// MarshalJSON / UnmarshalJSON serialize scalars as wire strings, per the
// "Textual form is canonical" data-model requirement.

func (p Price) MarshalJSON() ([]byte, error)  { return marshalDecimalString(p.d) }
func (q Quantity) MarshalJSON() ([]byte, error) { return marshalDecimalString(q.d) }
func (v Volume) MarshalJSON() ([]byte, error)  { return marshalDecimalString(v.d) }

func (p *Price) UnmarshalJSON(b []byte) error {
	d, err := unmarshalDecimalString(b)
	if err != nil {
		return err
	}
	p.d = d
	return nil
}

func (q *Quantity) UnmarshalJSON(b []byte) error {
	d, err := unmarshalDecimalString(b)
	if err != nil {
		return err
	}
	q.d = d
	return nil
}

func (v *Volume) UnmarshalJSON(b []byte) error {
	d, err := unmarshalDecimalString(b)
	if err != nil {
		return err
	}
	v.d = d
	return nil
}

func marshalDecimalString(d decimal.Decimal) ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func unmarshalDecimalString(b []byte) (decimal.Decimal, error) {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" || s == "null" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

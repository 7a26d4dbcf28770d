package types

import "github.com/antihax/optional"

// SomePrice / SomeQuantity wrap a scalar into the optional.Interface carrier
// used throughout the domain model for fields spec.md marks with "?".
func SomePrice(p Price) optional.Interface       { return optional.NewInterface(p) }
func SomeQuantity(q Quantity) optional.Interface { return optional.NewInterface(q) }

// GetPrice / GetQuantity unwrap an optional field set with SomePrice /
// SomeQuantity. ok is false when the field was never set.
func GetPrice(o optional.Interface) (Price, bool) {
	if !o.IsSet() {
		return Price{}, false
	}
	p, ok := o.Value().(Price)
	return p, ok
}

func GetQuantity(o optional.Interface) (Quantity, bool) {
	if !o.IsSet() {
		return Quantity{}, false
	}
	q, ok := o.Value().(Quantity)
	return q, ok
}

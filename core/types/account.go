package types

import "github.com/antihax/optional"

// Balance is one asset's free/locked split within an account.
type Balance struct {
	Asset  string
	Free   Quantity
	Locked Quantity
}

func (b Balance) Validate() error {
	if b.Free.Decimal().IsNegative() {
		return NewInvalidParameters("balance free must be >= 0")
	}
	if b.Locked.Decimal().IsNegative() {
		return NewInvalidParameters("balance locked must be >= 0")
	}
	return nil
}

// Position is a perpetual venue's open position for one symbol. Spot
// adapters never produce this type; AccountInfo.GetPositions returns an
// empty sequence for them.
type Position struct {
	Symbol           Symbol
	PositionSide     string
	EntryPrice       Price
	PositionAmount   Quantity
	UnrealizedPnL    Price
	LiquidationPrice optional.Interface // Price, when present
	Leverage         int32
}

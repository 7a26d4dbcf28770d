package types

import "github.com/antihax/optional"

// FundingRate is a perpetual venue's funding snapshot for one symbol.
// Optional fields follow the venue's willingness to disclose them; a spot
// adapter never produces this type at all (see FundingRateSource).
type FundingRate struct {
	Symbol               Symbol
	FundingRate          optional.Interface // Price, when present
	PreviousFundingRate  optional.Interface // Price, when present
	NextFundingRate      optional.Interface // Price, when present
	FundingTime          optional.Int64
	NextFundingTime      optional.Int64
	MarkPrice            optional.Interface // Price, when present
	IndexPrice           optional.Interface // Price, when present
	Timestamp            Timestamp
}

package response

import (
	"github.com/shopspring/decimal"

	"equiprent/internal/usecase/queries"
)

type QuoteResponse struct {
	Base              decimal.Decimal `json:"base"`
	DurationDiscount  decimal.Decimal `json:"durationDiscount"`
	VIPDiscount       decimal.Decimal `json:"vipDiscount"`
	LatenessSurcharge decimal.Decimal `json:"latenessSurcharge"`
	Final             decimal.Decimal `json:"final"`
}

func FromQuoteView(rm *queries.QuoteView) *QuoteResponse {
	return &QuoteResponse{
		Base:              rm.Base,
		DurationDiscount:  rm.DurationDiscount,
		VIPDiscount:       rm.VIPDiscount,
		LatenessSurcharge: rm.LatenessSurcharge,
		Final:             rm.Final,
	}
}

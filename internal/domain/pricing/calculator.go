// Package pricing implements the cumulative tariff rules. Everything here is
// a pure function over decimals: the single piece of history it needs (was
// the customer's last completed rental returned late) is resolved by the
// caller and passed in.
package pricing

import (
	"github.com/shopspring/decimal"

	"equiprent/internal/domain/contract"
	"equiprent/internal/domain/customer"
	"equiprent/internal/domain/item"
)

var (
	durationDiscountRate  = decimal.RequireFromString("0.10")
	vipDiscountRate       = decimal.RequireFromString("0.15")
	latenessSurchargeRate = decimal.RequireFromString("0.05")
)

// Rentals longer than this many days earn the duration discount.
const durationDiscountThresholdDays = 7

// History is the slice of customer history the tariff depends on.
type History struct {
	// LastReturnLate is true when the customer's most recently completed
	// contract, ordered by actual-return date, came back after its due date.
	LastReturnLate bool
}

type Breakdown struct {
	Base              decimal.Decimal
	DurationDiscount  decimal.Decimal
	VIPDiscount       decimal.Decimal
	LatenessSurcharge decimal.Decimal
	Final             decimal.Decimal
}

// BasePrice is the sum of the items' daily rates multiplied by the inclusive
// day count. An empty item list prices at zero.
func BasePrice(items []*item.Item, period contract.Period) decimal.Decimal {
	if len(items) == 0 {
		return decimal.Zero
	}

	dailyTotal := decimal.Zero
	for _, it := range items {
		dailyTotal = dailyTotal.Add(it.DailyRate())
	}

	return dailyTotal.Mul(decimal.NewFromInt(int64(period.Days())))
}

// DurationDiscount is 10% of base for rentals strictly longer than 7 days.
func DurationDiscount(base decimal.Decimal, period contract.Period) decimal.Decimal {
	if period.Days() > durationDiscountThresholdDays {
		return base.Mul(durationDiscountRate)
	}
	return decimal.Zero
}

// VIPDiscount is 15% of base for VIP customers. It stacks with the duration
// discount: both apply to the same base, they do not compound.
func VIPDiscount(base decimal.Decimal, cust *customer.Customer) decimal.Decimal {
	if cust.IsVIP() {
		return base.Mul(vipDiscountRate)
	}
	return decimal.Zero
}

// LatenessSurcharge is 5% of base when the customer's last completed rental
// came back late.
func LatenessSurcharge(base decimal.Decimal, history History) decimal.Decimal {
	if history.LastReturnLate {
		return base.Mul(latenessSurchargeRate)
	}
	return decimal.Zero
}

// FinalPrice applies every rule and floors the result at zero.
func FinalPrice(items []*item.Item, cust *customer.Customer, period contract.Period, history History) Breakdown {
	base := BasePrice(items, period)
	duration := DurationDiscount(base, period)
	vip := VIPDiscount(base, cust)
	surcharge := LatenessSurcharge(base, history)

	final := base.Sub(duration).Sub(vip).Add(surcharge)
	if final.IsNegative() {
		final = decimal.Zero
	}

	return Breakdown{
		Base:              base,
		DurationDiscount:  duration,
		VIPDiscount:       vip,
		LatenessSurcharge: surcharge,
		Final:             final,
	}
}

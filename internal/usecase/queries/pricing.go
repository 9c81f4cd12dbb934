package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"equiprent/internal/domain/contract"
	"equiprent/internal/domain/customer"
	"equiprent/internal/domain/item"
	"equiprent/internal/domain/pricing"
	"equiprent/internal/domain/rental"
	"equiprent/internal/pkg/clock"
	"equiprent/internal/pkg/errs"
)

// PricingQueries serves the read-only price preview shown to an operator
// before they commit a rental. It prices whatever the snapshot contains; no
// availability check and no locks, so the quote carries no reservation.
type PricingQueries interface {
	QuoteBreakdown(ctx context.Context, customerID uuid.UUID, itemIDs []uuid.UUID, start, end time.Time) (*QuoteView, error)
}

// QuoteSnapshot is a consistent read of everything the tariff needs.
type QuoteSnapshot struct {
	Customer      *customer.Customer
	Items         []*item.Item
	LastCompleted *contract.Contract
}

type PricingReads interface {
	Snapshot(ctx context.Context, customerID uuid.UUID, itemIDs []uuid.UUID) (*QuoteSnapshot, error)
}

type pricingQueriesImpl struct {
	reads PricingReads
	clock clock.Clock
}

func NewPricingQueries(reads PricingReads, clk clock.Clock) PricingQueries {
	return &pricingQueriesImpl{reads: reads, clock: clk}
}

func (q *pricingQueriesImpl) QuoteBreakdown(ctx context.Context, customerID uuid.UUID, itemIDs []uuid.UUID, start, end time.Time) (*QuoteView, error) {
	start = clock.Midnight(start)
	end = clock.Midnight(end)

	if res := rental.ValidateDateRange(start, end, clock.Today(q.clock)); !res.Valid {
		return nil, errs.Mark(errs.New(res.Reason), errs.ErrInvalidDateRange)
	}
	period, err := contract.NewPeriod(start, end)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDateRange)
	}

	snap, err := q.reads.Snapshot(ctx, customerID, itemIDs)
	if err != nil {
		return nil, err
	}

	history := pricing.History{
		LastReturnLate: snap.LastCompleted != nil && snap.LastCompleted.ReturnedLate(),
	}
	breakdown := pricing.FinalPrice(snap.Items, snap.Customer, period, history)

	return &QuoteView{
		Base:              breakdown.Base,
		DurationDiscount:  breakdown.DurationDiscount,
		VIPDiscount:       breakdown.VIPDiscount,
		LatenessSurcharge: breakdown.LatenessSurcharge,
		Final:             breakdown.Final,
	}, nil
}

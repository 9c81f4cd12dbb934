package queries

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"equiprent/internal/pkg/clock"
)

const topItemsLimit = 5

type DashboardQueries interface {
	Overview(ctx context.Context) (*DashboardView, error)
}

type DashboardViewRepo interface {
	FindOverdue(ctx context.Context, today time.Time) ([]*OverdueContractView, error)
	RevenueSince(ctx context.Context, since time.Time) (decimal.Decimal, error)
	TopItemsSince(ctx context.Context, since time.Time, limit int) ([]*ItemRevenueView, error)
}

type dashboardQueriesImpl struct {
	repo  DashboardViewRepo
	clock clock.Clock
}

func NewDashboardQueries(repo DashboardViewRepo, clk clock.Clock) DashboardQueries {
	return &dashboardQueriesImpl{repo: repo, clock: clk}
}

func (q *dashboardQueriesImpl) Overview(ctx context.Context) (*DashboardView, error) {
	today := clock.Today(q.clock)

	overdue, err := q.repo.FindOverdue(ctx, today)
	if err != nil {
		return nil, err
	}

	revenue, err := q.repo.RevenueSince(ctx, today.AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}

	// Top items are ranked within the current calendar month.
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	top, err := q.repo.TopItemsSince(ctx, monthStart, topItemsLimit)
	if err != nil {
		return nil, err
	}

	return &DashboardView{
		Overdue:       overdue,
		Revenue30Days: revenue,
		TopItems:      top,
	}, nil
}

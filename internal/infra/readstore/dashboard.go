package readstore

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"equiprent/internal/infra"
	"equiprent/internal/infra/db"
	"equiprent/internal/usecase/queries"
)

type DashboardReadStore struct {
	db db.DBTX
}

func NewDashboardReadStore(dbtx db.DBTX) *DashboardReadStore {
	return &DashboardReadStore{db: dbtx}
}

// FindOverdue lists active contracts whose due date is past with no return
// stamped yet.
func (r *DashboardReadStore) FindOverdue(ctx context.Context, today time.Time) ([]*queries.OverdueContractView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT c.id, c.customer_id, cu.first_name || ' ' || cu.last_name, c.end_date
		 FROM contracts c
		 JOIN customers cu ON cu.id = c.customer_id
		 WHERE c.status = 'active' AND c.end_date < $1 AND c.actual_return_date IS NULL
		 ORDER BY c.end_date`, today)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overdue contracts", err)
	}
	defer rows.Close()

	var views []*queries.OverdueContractView
	for rows.Next() {
		var view queries.OverdueContractView
		if scanErr := rows.Scan(&view.ID, &view.CustomerID, &view.CustomerName, &view.EndDate); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan overdue contract", scanErr)
		}
		view.DaysOverdue = int(today.Sub(view.EndDate).Hours() / 24)
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read overdue contracts", err)
	}
	return views, nil
}

// RevenueSince sums contract prices created on or after the cutoff,
// cancelled contracts excluded.
func (r *DashboardReadStore) RevenueSince(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	var revenue decimal.Decimal
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_price), 0)
		 FROM contracts
		 WHERE created_at >= $1 AND status <> 'cancelled'`, since).Scan(&revenue)
	if err != nil {
		return decimal.Zero, infra.WrapRepoErr("failed to sum revenue", err)
	}
	return revenue, nil
}

// TopItemsSince ranks items by the revenue of the contracts they appear in.
func (r *DashboardReadStore) TopItemsSince(ctx context.Context, since time.Time, limit int) ([]*queries.ItemRevenueView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT i.id, i.brand, i.model, i.category, SUM(c.total_price)
		 FROM items i
		 JOIN item_contracts ic ON ic.item_id = i.id
		 JOIN contracts c ON c.id = ic.contract_id
		 WHERE c.created_at >= $1 AND c.status <> 'cancelled'
		 GROUP BY i.id, i.brand, i.model, i.category
		 ORDER BY SUM(c.total_price) DESC
		 LIMIT $2`, since, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to rank items by revenue", err)
	}
	defer rows.Close()

	var views []*queries.ItemRevenueView
	for rows.Next() {
		var view queries.ItemRevenueView
		if scanErr := rows.Scan(&view.ItemID, &view.Brand, &view.Model, &view.Category, &view.Revenue); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan item revenue", scanErr)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read item revenues", err)
	}
	return views, nil
}

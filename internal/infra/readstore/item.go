package readstore

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"equiprent/internal/domain/item"
	"equiprent/internal/infra"
	"equiprent/internal/infra/db"
	"equiprent/internal/usecase/queries"
)

type ItemReadStore struct {
	db db.DBTX
}

func NewItemReadStore(dbtx db.DBTX) *ItemReadStore {
	return &ItemReadStore{db: dbtx}
}

const itemViewQuery = `SELECT id, category, brand, model, serial_number, purchase_date, daily_rate, status FROM items`

func (r *ItemReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	row := r.db.QueryRow(ctx, itemViewQuery+` WHERE id = $1`, id)

	view, err := scanItemView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item view", err)
	}
	return view, nil
}

func (r *ItemReadStore) FindAll(ctx context.Context) ([]*queries.ItemView, error) {
	rows, err := r.db.Query(ctx, itemViewQuery+` ORDER BY category, brand, model`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items", err)
	}
	defer rows.Close()

	return collectItemViews(rows)
}

func (r *ItemReadStore) FindByStatus(ctx context.Context, status item.Status) ([]*queries.ItemView, error) {
	rows, err := r.db.Query(ctx,
		itemViewQuery+` WHERE status = $1 ORDER BY category, brand, model`, status.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items by status", err)
	}
	defer rows.Close()

	return collectItemViews(rows)
}

func scanItemView(row pgx.Row) (*queries.ItemView, error) {
	var (
		view         queries.ItemView
		purchaseDate time.Time
		dailyRate    decimal.Decimal
	)
	if err := row.Scan(&view.ID, &view.Category, &view.Brand, &view.Model,
		&view.SerialNumber, &purchaseDate, &dailyRate, &view.Status); err != nil {
		return nil, err
	}
	view.PurchaseDate = purchaseDate
	view.DailyRate = dailyRate
	return &view, nil
}

func collectItemViews(rows pgx.Rows) ([]*queries.ItemView, error) {
	var views []*queries.ItemView
	for rows.Next() {
		view, err := scanItemView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan item view", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read item views", err)
	}
	return views, nil
}

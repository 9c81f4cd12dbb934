package repository

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
)

type ItemRepository struct {
	db db.DBTX
}

func NewItemRepository(dbtx db.DBTX) *ItemRepository {
	return &ItemRepository{db: dbtx}
}

const itemColumns = `id, category, brand, model, serial_number, purchase_date, daily_rate, status`

func (r *ItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = $1`, id)

	it, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item", err)
	}
	return it, nil
}

func (r *ItemRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*item.Item, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find items", err)
	}
	defer rows.Close()

	return collectItems(rows)
}

// FindByIDsForUpdate is the coordinator's serialization point: it blocks
// until every requested row can be locked exclusively. The lock scope is
// exactly the given ids; rows are locked in id order so two overlapping
// carts always contend in the same order.
func (r *ItemRepository) FindByIDsForUpdate(ctx context.Context, ids []uuid.UUID) ([]*item.Item, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = ANY($1) ORDER BY id FOR UPDATE`, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock items", err)
	}
	defer rows.Close()

	return collectItems(rows)
}

func (r *ItemRepository) Create(ctx context.Context, it *item.Item) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO items (id, category, brand, model, serial_number, purchase_date, daily_rate, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		it.ID(), it.Category(), it.Brand(), it.Model(), it.SerialNumber(),
		it.PurchaseDate(), it.DailyRate(), it.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create item", err)
	}
	return nil
}

func (r *ItemRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status item.Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE items SET status = $2 WHERE id = $1`, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update item status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		// FK RESTRICT from item_contracts lands here when the item has
		// historical links.
		return infra.WrapRepoErr("failed to delete item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ItemRepository) LinkedContractCount(ctx context.Context, itemID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM item_contracts WHERE item_id = $1`, itemID).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count item links", err)
	}
	return count, nil
}

func (r *ItemRepository) OpenContractCount(ctx context.Context, itemID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*)
		 FROM item_contracts ic
		 JOIN contracts c ON c.id = ic.contract_id
		 WHERE ic.item_id = $1 AND c.status IN ('pending', 'active')`, itemID).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count open contracts for item", err)
	}
	return count, nil
}

func scanItem(row pgx.Row) (*item.Item, error) {
	var (
		id           uuid.UUID
		category     string
		brand        string
		model        string
		serialNumber string
		purchaseDate time.Time
		dailyRate    decimal.Decimal
		status       string
	)
	if err := row.Scan(&id, &category, &brand, &model, &serialNumber, &purchaseDate, &dailyRate, &status); err != nil {
		return nil, err
	}
	return item.Reconstruct(id, category, brand, model, serialNumber, purchaseDate, dailyRate, item.Status(status)), nil
}

func collectItems(rows pgx.Rows) ([]*item.Item, error) {
	var items []*item.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan item", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read items", err)
	}
	return items, nil
}

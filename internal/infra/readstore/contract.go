package readstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"equiprent/internal/infra"
	"equiprent/internal/infra/db"
	"equiprent/internal/usecase/queries"
)

type ContractReadStore struct {
	db db.DBTX
}

func NewContractReadStore(dbtx db.DBTX) *ContractReadStore {
	return &ContractReadStore{db: dbtx}
}

func (r *ContractReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ContractView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT c.id, c.customer_id, cu.first_name || ' ' || cu.last_name,
		        c.start_date, c.end_date, c.actual_return_date, c.total_price, c.status, c.created_at
		 FROM contracts c
		 JOIN customers cu ON cu.id = c.customer_id
		 WHERE c.id = $1`, id)

	var view queries.ContractView
	err := row.Scan(&view.ID, &view.CustomerID, &view.CustomerName,
		&view.StartDate, &view.EndDate, &view.ActualReturn,
		&view.TotalPrice, &view.Status, &view.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("contract not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find contract view", err)
	}

	items, err := r.findContractItems(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Items = items

	return &view, nil
}

func (r *ContractReadStore) FindOpen(ctx context.Context) ([]*queries.ContractListItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT c.id, c.customer_id, cu.first_name || ' ' || cu.last_name,
		        c.start_date, c.end_date, c.total_price, c.status,
		        (SELECT COUNT(*) FROM item_contracts ic WHERE ic.contract_id = c.id)
		 FROM contracts c
		 JOIN customers cu ON cu.id = c.customer_id
		 WHERE c.status IN ('pending', 'active')
		 ORDER BY c.created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list open contracts", err)
	}
	defer rows.Close()

	var views []*queries.ContractListItem
	for rows.Next() {
		var view queries.ContractListItem
		if scanErr := rows.Scan(&view.ID, &view.CustomerID, &view.CustomerName,
			&view.StartDate, &view.EndDate, &view.TotalPrice, &view.Status, &view.ItemCount); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan contract list item", scanErr)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read open contracts", err)
	}
	return views, nil
}

func (r *ContractReadStore) findContractItems(ctx context.Context, contractID uuid.UUID) ([]queries.ContractItemView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT i.id, i.brand, i.model, i.serial_number, i.daily_rate, i.status
		 FROM item_contracts ic
		 JOIN items i ON i.id = ic.item_id
		 WHERE ic.contract_id = $1
		 ORDER BY i.brand, i.model`, contractID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list contract items", err)
	}
	defer rows.Close()

	var items []queries.ContractItemView
	for rows.Next() {
		var iv queries.ContractItemView
		if scanErr := rows.Scan(&iv.ItemID, &iv.Brand, &iv.Model, &iv.SerialNumber, &iv.DailyRate, &iv.Status); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan contract item", scanErr)
		}
		items = append(items, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read contract items", err)
	}
	return items, nil
}

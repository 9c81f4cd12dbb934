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

type CustomerReadStore struct {
	db db.DBTX
}

func NewCustomerReadStore(dbtx db.DBTX) *CustomerReadStore {
	return &CustomerReadStore{db: dbtx}
}

const customerViewQuery = `SELECT id, last_name, first_name, email, phone, address, vip FROM customers`

func (r *CustomerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CustomerView, error) {
	row := r.db.QueryRow(ctx, customerViewQuery+` WHERE id = $1`, id)

	view, err := scanCustomerView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer view", err)
	}
	return view, nil
}

func (r *CustomerReadStore) FindAll(ctx context.Context) ([]*queries.CustomerView, error) {
	rows, err := r.db.Query(ctx, customerViewQuery+` ORDER BY last_name, first_name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customers", err)
	}
	defer rows.Close()

	var views []*queries.CustomerView
	for rows.Next() {
		view, scanErr := scanCustomerView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan customer view", scanErr)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read customer views", err)
	}
	return views, nil
}

func scanCustomerView(row pgx.Row) (*queries.CustomerView, error) {
	var view queries.CustomerView
	if err := row.Scan(&view.ID, &view.LastName, &view.FirstName, &view.Email,
		&view.Phone, &view.Address, &view.VIP); err != nil {
		return nil, err
	}
	return &view, nil
}

package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"equiprent/internal/domain/contract"
	"equiprent/internal/infra"
	"equiprent/internal/infra/db"
)

type ContractRepository struct {
	db db.DBTX
}

func NewContractRepository(dbtx db.DBTX) *ContractRepository {
	return &ContractRepository{db: dbtx}
}

const contractColumns = `id, customer_id, start_date, end_date, actual_return_date, total_price, status, created_at`

func (r *ContractRepository) FindByID(ctx context.Context, id uuid.UUID) (*contract.Contract, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+contractColumns+` FROM contracts WHERE id = $1`, id)

	c, err := scanContract(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("contract not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find contract", err)
	}
	return c, nil
}

func (r *ContractRepository) Create(ctx context.Context, c *contract.Contract) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO contracts (id, customer_id, start_date, end_date, actual_return_date, total_price, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID(), c.CustomerID(), c.Period().Start(), c.Period().End(),
		c.ActualReturn(), c.TotalPrice(), c.Status().String(), c.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create contract", err)
	}
	return nil
}

func (r *ContractRepository) AddItemLink(ctx context.Context, contractID, itemID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO item_contracts (contract_id, item_id) VALUES ($1, $2)`,
		contractID, itemID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to link item to contract", err)
	}
	return nil
}

func (r *ContractRepository) LinkExists(ctx context.Context, contractID, itemID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM item_contracts WHERE contract_id = $1 AND item_id = $2
		)`, contractID, itemID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check item link", err)
	}
	return exists, nil
}

// FindLatestCompletedByCustomer orders by actual-return date, not creation
// date: the lateness surcharge looks at whichever rental came back last.
func (r *ContractRepository) FindLatestCompletedByCustomer(ctx context.Context, customerID uuid.UUID) (*contract.Contract, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+contractColumns+`
		 FROM contracts
		 WHERE customer_id = $1 AND status = 'completed' AND actual_return_date IS NOT NULL
		 ORDER BY actual_return_date DESC
		 LIMIT 1`, customerID)

	c, err := scanContract(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find latest completed contract", err)
	}
	return c, nil
}

func (r *ContractRepository) RentedItemCount(ctx context.Context, contractID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*)
		 FROM item_contracts ic
		 JOIN items i ON i.id = ic.item_id
		 WHERE ic.contract_id = $1 AND i.status = 'rented'`, contractID).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count rented items", err)
	}
	return count, nil
}

func (r *ContractRepository) Complete(ctx context.Context, c *contract.Contract) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE contracts SET status = $2, actual_return_date = $3 WHERE id = $1`,
		c.ID(), c.Status().String(), c.ActualReturn(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to complete contract", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("contract not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanContract(row pgx.Row) (*contract.Contract, error) {
	var (
		id           uuid.UUID
		customerID   uuid.UUID
		startDate    time.Time
		endDate      time.Time
		actualReturn *time.Time
		totalPrice   decimal.Decimal
		status       string
		createdAt    time.Time
	)
	if err := row.Scan(&id, &customerID, &startDate, &endDate, &actualReturn, &totalPrice, &status, &createdAt); err != nil {
		return nil, err
	}

	period, err := contract.NewPeriod(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return contract.Reconstruct(id, customerID, period, actualReturn, totalPrice, contract.Status(status), createdAt), nil
}

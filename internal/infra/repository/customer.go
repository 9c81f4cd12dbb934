package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"equiprent/internal/domain/customer"
	"equiprent/internal/infra"
	"equiprent/internal/infra/db"
)

type CustomerRepository struct {
	db db.DBTX
}

func NewCustomerRepository(dbtx db.DBTX) *CustomerRepository {
	return &CustomerRepository{db: dbtx}
}

const customerColumns = `id, last_name, first_name, email, phone, address, vip`

func (r *CustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)

	c, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer", err)
	}
	return c, nil
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO customers (id, last_name, first_name, email, phone, address, vip)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID(), c.LastName(), c.FirstName(), c.Email(), c.Phone(), c.Address(), c.IsVIP(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create customer", err)
	}
	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE customers
		 SET last_name = $2, first_name = $3, email = $4, phone = $5, address = $6, vip = $7
		 WHERE id = $1`,
		c.ID(), c.LastName(), c.FirstName(), c.Email(), c.Phone(), c.Address(), c.IsVIP(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update customer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete customer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CustomerRepository) ContractCount(ctx context.Context, customerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM contracts WHERE customer_id = $1`, customerID).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count customer contracts", err)
	}
	return count, nil
}

func scanCustomer(row pgx.Row) (*customer.Customer, error) {
	var (
		id        uuid.UUID
		lastName  string
		firstName string
		email     string
		phone     *string
		address   *string
		vip       bool
	)
	if err := row.Scan(&id, &lastName, &firstName, &email, &phone, &address, &vip); err != nil {
		return nil, err
	}
	return customer.Reconstruct(id, lastName, firstName, email, deref(phone), deref(address), vip), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

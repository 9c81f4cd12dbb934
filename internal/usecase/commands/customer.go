package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"equiprent/internal/domain/customer"
	"equiprent/internal/infra"
	"equiprent/internal/pkg/errs"
	"equiprent/internal/usecase/shared"
)

type CustomerParams struct {
	LastName  string
	FirstName string
	Email     string
	Phone     string
	Address   string
	VIP       bool
}

// CustomerCommands manages renting parties. Deletion is refused while the
// customer owns any contract, past or present.
type CustomerCommands interface {
	CreateCustomer(ctx context.Context, params CustomerParams) (*customer.Customer, error)
	UpdateCustomer(ctx context.Context, id uuid.UUID, params CustomerParams) error
	DeleteCustomer(ctx context.Context, id uuid.UUID) error
}

type customerCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCustomerCommands(uow shared.UnitOfWork) CustomerCommands {
	return &customerCommandsImpl{uow: uow}
}

func (c *customerCommandsImpl) CreateCustomer(ctx context.Context, params CustomerParams) (*customer.Customer, error) {
	cust, err := customer.NewCustomer(
		params.LastName, params.FirstName, params.Email,
		params.Phone, params.Address, params.VIP,
	)
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Customers().Create(ctx, cust)
	})
	if err != nil {
		return nil, c.classify(err, "create customer")
	}
	return cust, nil
}

func (c *customerCommandsImpl) UpdateCustomer(ctx context.Context, id uuid.UUID, params CustomerParams) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, txErr := tx.Customers().FindByID(ctx, id)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return errs.Mark(txErr, errs.ErrCustomerNotFound)
			}
			return txErr
		}

		updated, txErr := customer.NewCustomer(
			params.LastName, params.FirstName, params.Email,
			params.Phone, params.Address, params.VIP,
		)
		if txErr != nil {
			return txErr
		}

		return tx.Customers().Update(ctx, customer.Reconstruct(
			existing.ID(),
			updated.LastName(), updated.FirstName(), updated.Email(),
			updated.Phone(), updated.Address(), updated.IsVIP(),
		))
	})
	if err != nil {
		return c.classify(err, "update customer")
	}
	return nil
}

func (c *customerCommandsImpl) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, txErr := tx.Customers().FindByID(ctx, id); txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return errs.Mark(txErr, errs.ErrCustomerNotFound)
			}
			return txErr
		}

		owned, txErr := tx.Customers().ContractCount(ctx, id)
		if txErr != nil {
			return txErr
		}
		if owned > 0 {
			return errs.Mark(
				errs.Newf("customer %s owns %d contract(s)", id, owned),
				errs.ErrCustomerHasContracts,
			)
		}

		return tx.Customers().Delete(ctx, id)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return errs.Mark(err, errs.ErrCustomerHasContracts)
		}
		return c.classify(err, "delete customer")
	}
	return nil
}

func (c *customerCommandsImpl) classify(err error, op string) error {
	switch {
	case errors.Is(err, errs.ErrCustomerNotFound),
		errors.Is(err, errs.ErrCustomerHasContracts),
		errors.Is(err, customer.ErrEmptyName),
		errors.Is(err, customer.ErrInvalidEmail):
		return err
	}

	translated := translateRepoErr(err)
	if errors.Is(translated, errs.ErrUnexpected) {
		slog.Error("customer operation failed", "op", op, "error", err.Error())
	}
	return translated
}

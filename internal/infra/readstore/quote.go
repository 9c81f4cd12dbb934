package readstore

import (
	"context"

	"github.com/google/uuid"

	"equiprent/internal/infra"
	"equiprent/internal/infra/db"
	"equiprent/internal/infra/repository"
	"equiprent/internal/pkg/errs"
	"equiprent/internal/usecase/queries"
	"equiprent/internal/usecase/shared"
)

// QuoteReadStore assembles the pricing snapshot inside one read-only
// transaction so the customer, items, and history all come from the same
// point in time.
type QuoteReadStore struct {
	uow shared.UnitOfWork
}

func NewQuoteReadStore(uow shared.UnitOfWork) *QuoteReadStore {
	return &QuoteReadStore{uow: uow}
}

func (r *QuoteReadStore) Snapshot(ctx context.Context, customerID uuid.UUID, itemIDs []uuid.UUID) (*queries.QuoteSnapshot, error) {
	var snap queries.QuoteSnapshot

	err := r.uow.WithinReadOnly(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		customers := repository.NewCustomerRepository(dbtx)
		items := repository.NewItemRepository(dbtx)
		contracts := repository.NewContractRepository(dbtx)

		cust, err := customers.FindByID(ctx, customerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrCustomerNotFound)
			}
			return err
		}
		snap.Customer = cust

		fetched, err := items.FindByIDs(ctx, itemIDs)
		if err != nil {
			return err
		}
		if len(fetched) != len(itemIDs) {
			return errs.Mark(errs.New("some items do not exist"), errs.ErrItemNotFound)
		}
		snap.Items = fetched

		last, err := contracts.FindLatestCompletedByCustomer(ctx, customerID)
		if err != nil {
			return err
		}
		snap.LastCompleted = last

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &snap, nil
}

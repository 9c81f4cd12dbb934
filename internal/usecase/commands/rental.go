package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"equiprent/internal/domain/contract"
	"equiprent/internal/domain/item"
	"equiprent/internal/domain/pricing"
	"equiprent/internal/domain/rental"
	"equiprent/internal/infra"
	"equiprent/internal/pkg/clock"
	"equiprent/internal/pkg/errs"
	"equiprent/internal/usecase/shared"
)

type CreateRentalResult struct {
	Contract *contract.Contract
	Price    pricing.Breakdown
}

// RentalCommands is the transaction coordinator. Each operation runs as one
// unit of work: every failure after the first write rolls the whole attempt
// back, so no partial contract ever reaches the store.
type RentalCommands interface {
	CreateRental(ctx context.Context, customerID uuid.UUID, itemIDs []uuid.UUID, start, end time.Time) (*CreateRentalResult, error)
	ReturnItem(ctx context.Context, contractID, itemID uuid.UUID) error
}

type rentalCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRentalCommands(uow shared.UnitOfWork, clk clock.Clock) RentalCommands {
	return &rentalCommandsImpl{uow: uow, clock: clk}
}

func (r *rentalCommandsImpl) CreateRental(ctx context.Context, customerID uuid.UUID, itemIDs []uuid.UUID, start, end time.Time) (*CreateRentalResult, error) {
	start = clock.Midnight(start)
	end = clock.Midnight(end)

	// Validation failures need no store round trip, let alone a rollback.
	if res := rental.ValidateDateRange(start, end, clock.Today(r.clock)); !res.Valid {
		return nil, errs.Mark(errs.New(res.Reason), errs.ErrInvalidDateRange)
	}
	if len(itemIDs) == 0 {
		return nil, errs.ErrEmptyCart
	}

	period, err := contract.NewPeriod(start, end)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDateRange)
	}

	var result *CreateRentalResult
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, txErr := r.createRentalTx(ctx, tx, customerID, itemIDs, period)
		if txErr != nil {
			return txErr
		}
		result = created
		return nil
	})
	if err != nil {
		return nil, r.classify(err, "create rental")
	}

	return result, nil
}

func (r *rentalCommandsImpl) createRentalTx(ctx context.Context, tx shared.Tx, customerID uuid.UUID, itemIDs []uuid.UUID, period contract.Period) (*CreateRentalResult, error) {
	cust, err := tx.Customers().FindByID(ctx, customerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrCustomerNotFound)
		}
		return nil, err
	}

	// Optimistic pre-check: cheap short-circuit for carts that are already
	// doomed. Not a correctness guarantee, time passes before the lock.
	unlocked, err := tx.Items().FindByIDs(ctx, itemIDs)
	if err != nil {
		return nil, err
	}
	if res := rental.ValidateCart(itemIDs, unlocked); !res.Valid {
		return nil, &UnavailableItemsError{ItemIDs: res.ItemIDs}
	}

	// Serialization point: blocks until every competing transaction holding
	// any of these rows commits or rolls back.
	locked, err := tx.Items().FindByIDsForUpdate(ctx, itemIDs)
	if err != nil {
		return nil, err
	}

	// Authoritative re-check under lock. A concurrent winner flipped the
	// status before our lock was granted; losing here is the designed
	// outcome of the race, not an anomaly.
	if conflicted := unavailableIDs(itemIDs, locked); len(conflicted) > 0 {
		return nil, &ConcurrencyConflictError{ItemIDs: conflicted}
	}

	history, err := r.customerHistory(ctx, tx, customerID)
	if err != nil {
		return nil, err
	}

	breakdown := pricing.FinalPrice(locked, cust, period, history)

	cont, err := contract.NewContract(customerID, period, breakdown.Final, clock.Today(r.clock))
	if err != nil {
		return nil, err
	}
	if err := tx.Contracts().Create(ctx, cont); err != nil {
		return nil, err
	}

	for _, it := range locked {
		if err := tx.Contracts().AddItemLink(ctx, cont.ID(), it.ID()); err != nil {
			return nil, err
		}
		if err := tx.Items().UpdateStatus(ctx, it.ID(), item.StatusRented); err != nil {
			return nil, err
		}
	}

	return &CreateRentalResult{Contract: cont, Price: breakdown}, nil
}

func (r *rentalCommandsImpl) ReturnItem(ctx context.Context, contractID, itemID uuid.UUID) error {
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cont, txErr := tx.Contracts().FindByID(ctx, contractID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return errs.Mark(txErr, errs.ErrContractNotFound)
			}
			return txErr
		}

		it, txErr := tx.Items().FindByID(ctx, itemID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return errs.Mark(txErr, errs.ErrItemNotFound)
			}
			return txErr
		}

		linked, txErr := tx.Contracts().LinkExists(ctx, contractID, itemID)
		if txErr != nil {
			return txErr
		}
		if !linked {
			return errs.ErrItemNotLinked
		}

		// Returning an already-available item is a no-op.
		if it.Status() == item.StatusRented {
			if txErr := tx.Items().UpdateStatus(ctx, itemID, item.StatusAvailable); txErr != nil {
				return txErr
			}
		}

		stillRented, txErr := tx.Contracts().RentedItemCount(ctx, contractID)
		if txErr != nil {
			return txErr
		}
		if stillRented == 0 && cont.IsOpen() {
			if txErr := cont.Complete(clock.Today(r.clock)); txErr != nil {
				return txErr
			}
			if txErr := tx.Contracts().Complete(ctx, cont); txErr != nil {
				return txErr
			}
		}

		return nil
	})
	if err != nil {
		return r.classify(err, "return item")
	}
	return nil
}

func (r *rentalCommandsImpl) customerHistory(ctx context.Context, tx shared.Tx, customerID uuid.UUID) (pricing.History, error) {
	last, err := tx.Contracts().FindLatestCompletedByCustomer(ctx, customerID)
	if err != nil {
		return pricing.History{}, err
	}
	return pricing.History{LastReturnLate: last != nil && last.ReturnedLate()}, nil
}

func unavailableIDs(requested []uuid.UUID, locked []*item.Item) []uuid.UUID {
	available := make(map[uuid.UUID]bool, len(locked))
	for _, it := range locked {
		available[it.ID()] = it.IsAvailable()
	}

	var conflicted []uuid.UUID
	for _, id := range requested {
		if !available[id] {
			conflicted = append(conflicted, id)
		}
	}
	return conflicted
}

// classify keeps business failures as-is and folds everything else into the
// integrity/operational/unexpected taxonomy. Unexpected causes are logged
// here, at the boundary, so no failure disappears silently.
func (r *rentalCommandsImpl) classify(err error, op string) error {
	switch {
	case errors.Is(err, errs.ErrCustomerNotFound),
		errors.Is(err, errs.ErrContractNotFound),
		errors.Is(err, errs.ErrItemNotFound),
		errors.Is(err, errs.ErrItemNotLinked),
		errors.Is(err, errs.ErrInvalidDateRange),
		errors.Is(err, errs.ErrEmptyCart),
		errors.Is(err, errs.ErrItemsUnavailable),
		errors.Is(err, errs.ErrConcurrencyConflict):
		return err
	}

	translated := translateRepoErr(err)
	if errors.Is(translated, errs.ErrUnexpected) {
		slog.Error("rental transaction failed",
			"op", op,
			"error", err.Error())
	}
	return translated
}

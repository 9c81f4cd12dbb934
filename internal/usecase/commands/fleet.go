package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"equiprent/internal/domain/item"
	"equiprent/internal/domain/rental"
	"equiprent/internal/infra"
	"equiprent/internal/pkg/clock"
	"equiprent/internal/pkg/errs"
	"equiprent/internal/usecase/shared"
)

type CreateItemParams struct {
	Category     string
	Brand        string
	Model        string
	SerialNumber string
	PurchaseDate time.Time
	DailyRate    decimal.Decimal
}

// FleetCommands manages the rentable fleet outside of rental transactions.
// Deletion follows the preservation rules: an item never leaves the store
// while it is rented, in maintenance, or linked to any contract.
type FleetCommands interface {
	CreateItem(ctx context.Context, params CreateItemParams) (*item.Item, error)
	ChangeItemStatus(ctx context.Context, id uuid.UUID, target item.Status) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
}

type fleetCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewFleetCommands(uow shared.UnitOfWork, clk clock.Clock) FleetCommands {
	return &fleetCommandsImpl{uow: uow, clock: clk}
}

func (f *fleetCommandsImpl) CreateItem(ctx context.Context, params CreateItemParams) (*item.Item, error) {
	if res := rental.ValidatePurchaseDate(clock.Midnight(params.PurchaseDate), clock.Today(f.clock)); !res.Valid {
		return nil, errs.Mark(errs.New(res.Reason), errs.ErrInvalidDateRange)
	}

	it, err := item.NewItem(
		params.Category, params.Brand, params.Model, params.SerialNumber,
		clock.Midnight(params.PurchaseDate), params.DailyRate, f.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	err = f.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Items().Create(ctx, it)
	})
	if err != nil {
		return nil, f.classify(err, "create item")
	}
	return it, nil
}

func (f *fleetCommandsImpl) ChangeItemStatus(ctx context.Context, id uuid.UUID, target item.Status) error {
	if !target.IsValid() {
		return errs.Mark(errs.Newf("unknown item status %q", target), errs.ErrIllegalStatusChange)
	}

	err := f.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		it, txErr := tx.Items().FindByID(ctx, id)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return errs.Mark(txErr, errs.ErrItemNotFound)
			}
			return txErr
		}

		if res := rental.ValidateStatusChange(it.Status(), target); !res.Valid {
			return errs.Mark(errs.New(res.Reason), errs.ErrIllegalStatusChange)
		}

		return tx.Items().UpdateStatus(ctx, id, target)
	})
	if err != nil {
		return f.classify(err, "change item status")
	}
	return nil
}

func (f *fleetCommandsImpl) DeleteItem(ctx context.Context, id uuid.UUID) error {
	err := f.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		it, txErr := tx.Items().FindByID(ctx, id)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return errs.Mark(txErr, errs.ErrItemNotFound)
			}
			return txErr
		}

		if it.Status() == item.StatusRented || it.Status() == item.StatusMaintenance {
			return errs.Mark(
				errs.Newf("item %s cannot be deleted while %s", id, it.Status()),
				errs.ErrItemInUse,
			)
		}

		links, txErr := tx.Items().LinkedContractCount(ctx, id)
		if txErr != nil {
			return txErr
		}
		if links > 0 {
			// Links are permanent history; deleting the item would orphan it.
			return errs.Mark(
				errs.Newf("item %s is linked to %d contract(s)", id, links),
				errs.ErrItemInUse,
			)
		}

		return tx.Items().Delete(ctx, id)
	})
	if err != nil {
		// The FK RESTRICT backstop catches links created between our check
		// and the delete.
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return errs.Mark(err, errs.ErrItemInUse)
		}
		return f.classify(err, "delete item")
	}
	return nil
}

func (f *fleetCommandsImpl) classify(err error, op string) error {
	switch {
	case errors.Is(err, errs.ErrItemNotFound),
		errors.Is(err, errs.ErrIllegalStatusChange),
		errors.Is(err, errs.ErrItemInUse),
		errors.Is(err, errs.ErrInvalidDateRange):
		return err
	}

	translated := translateRepoErr(err)
	if errors.Is(translated, errs.ErrUnexpected) {
		slog.Error("fleet operation failed", "op", op, "error", err.Error())
	}
	return translated
}

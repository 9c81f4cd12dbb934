package commands

import (
	"fmt"

	"github.com/google/uuid"

	"equiprent/internal/infra"
	"equiprent/internal/pkg/errs"
)

// UnavailableItemsError reports items that failed the pre-lock availability
// check. It matches errs.ErrItemsUnavailable under errors.Is.
type UnavailableItemsError struct {
	ItemIDs []uuid.UUID
}

func (e *UnavailableItemsError) Error() string {
	return fmt.Sprintf("items not available for rent: %v", e.ItemIDs)
}

func (e *UnavailableItemsError) Is(target error) bool {
	return target == errs.ErrItemsUnavailable
}

// ConcurrencyConflictError reports items that passed the optimistic check
// but were claimed by a concurrent transaction before this one could lock
// them. It matches errs.ErrConcurrencyConflict under errors.Is.
type ConcurrencyConflictError struct {
	ItemIDs []uuid.UUID
}

func (e *ConcurrencyConflictError) Error() string {
	return fmt.Sprintf("items claimed by a concurrent rental: %v", e.ItemIDs)
}

func (e *ConcurrencyConflictError) Is(target error) bool {
	return target == errs.ErrConcurrencyConflict
}

// translateRepoErr maps infra classification onto the business taxonomy.
// Anything unclassified is unexpected and keeps its cause attached for the
// log line at the coordinator boundary.
func translateRepoErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindDuplicateKey),
		infra.IsKind(err, infra.KindForeignKeyViolated),
		infra.IsKind(err, infra.KindCheckViolated):
		return errs.Mark(err, errs.ErrIntegrityViolation)
	case infra.IsKind(err, infra.KindOperational):
		return errs.Mark(err, errs.ErrOperationalFailure)
	default:
		return errs.Mark(err, errs.ErrUnexpected)
	}
}

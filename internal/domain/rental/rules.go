// Package rental holds the stateless validation rules checked before and
// inside a rental transaction. Each rule returns a Result instead of an
// error so callers can surface the reason and the offending item ids
// verbatim to the operator.
package rental

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"equiprent/internal/domain/item"
)

type Result struct {
	Valid  bool
	Reason string
	// ItemIDs lists the items that made the rule fail, when applicable.
	ItemIDs []uuid.UUID
}

func ok() Result {
	return Result{Valid: true}
}

func fail(reason string, ids ...uuid.UUID) Result {
	return Result{Valid: false, Reason: reason, ItemIDs: ids}
}

// ValidateStatusChange permits every transition except renting an item that
// is not currently available. No fuller state machine is enforced:
// maintenance and decommissioned items may move back to available directly.
func ValidateStatusChange(current, target item.Status) Result {
	if target == item.StatusRented && current != item.StatusAvailable {
		return fail(fmt.Sprintf(
			"item cannot be rented: current status is %q, it must be %q",
			current, item.StatusAvailable,
		))
	}
	return ok()
}

// ValidateCart checks that the requested ids are non-empty and every one of
// them resolves to an available item. Items missing from the fetched set are
// reported as unavailable alongside the ones in a wrong status.
func ValidateCart(requested []uuid.UUID, items []*item.Item) Result {
	if len(requested) == 0 {
		return fail("cart is empty")
	}

	byID := make(map[uuid.UUID]*item.Item, len(items))
	for _, it := range items {
		byID[it.ID()] = it
	}

	var unavailable []uuid.UUID
	for _, id := range requested {
		it, found := byID[id]
		if !found || !it.IsAvailable() {
			unavailable = append(unavailable, id)
		}
	}

	if len(unavailable) > 0 {
		return fail(fmt.Sprintf("items not available for rent: %v", unavailable), unavailable...)
	}
	return ok()
}

// ValidateDateRange rejects inverted ranges and ranges starting before
// today. Bounds are dates; today must be midnight-truncated by the caller.
func ValidateDateRange(start, end, today time.Time) Result {
	if start.After(end) {
		return fail("start date must not be after end date")
	}
	if start.Before(today) {
		return fail("start date cannot be in the past")
	}
	return ok()
}

// ValidatePurchaseDate rejects purchase dates in the future.
func ValidatePurchaseDate(purchaseDate, today time.Time) Result {
	if purchaseDate.After(today) {
		return fail("purchase date cannot be in the future")
	}
	return ok()
}

package errs

import "errors"

// Sentinel errors shared across usecase layers. Each one maps onto a single
// failure kind surfaced to callers; structured variants carrying item ids
// live next to the coordinator in usecase/commands.
var (
	// Lookup failures
	ErrCustomerNotFound = errors.New("customer not found")
	ErrItemNotFound     = errors.New("item not found")
	ErrContractNotFound = errors.New("contract not found")
	ErrItemNotLinked    = errors.New("item not linked to contract")

	// Business-rule failures
	ErrInvalidDateRange     = errors.New("invalid date range")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrItemsUnavailable     = errors.New("items unavailable")
	ErrConcurrencyConflict  = errors.New("concurrency conflict")
	ErrIllegalStatusChange  = errors.New("illegal status change")
	ErrItemInUse            = errors.New("item in use")
	ErrCustomerHasContracts = errors.New("customer has contracts")

	// Store failures
	ErrIntegrityViolation = errors.New("integrity constraint violated")
	ErrOperationalFailure = errors.New("store operation failed")
	ErrUnexpected         = errors.New("unexpected internal error")
)

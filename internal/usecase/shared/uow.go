package shared

import (
	"context"

	"github.com/google/uuid"

	"equiprent/internal/domain/contract"
	"equiprent/internal/domain/customer"
	"equiprent/internal/domain/item"
	"equiprent/internal/infra/db"
)

// UnitOfWork scopes one logical transaction. Every multi-step mutation in
// the core runs through Within, which guarantees a commit or a full rollback
// on every exit path; there is no partial commit.
type UnitOfWork interface {
	// Within: full read-write transaction with retry on deadlock
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for consistent multi-table snapshots
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

// Tx hands out repositories bound to the in-flight transaction. Reads done
// through them observe the transaction's own uncommitted writes and its row
// locks.
type Tx interface {
	Items() ItemRepository
	Customers() CustomerRepository
	Contracts() ContractRepository
	DB() db.DBTX
}

type ItemRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*item.Item, error)
	// FindByIDs reads without locking; the coordinator uses it for the
	// optimistic pre-check.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*item.Item, error)
	// FindByIDsForUpdate acquires exclusive row locks on exactly the given
	// ids, blocking until any competing transaction commits or rolls back.
	FindByIDsForUpdate(ctx context.Context, ids []uuid.UUID) ([]*item.Item, error)
	Create(ctx context.Context, it *item.Item) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status item.Status) error
	Delete(ctx context.Context, id uuid.UUID) error
	// LinkedContractCount counts contracts the item appears in, any status.
	LinkedContractCount(ctx context.Context, itemID uuid.UUID) (int64, error)
	// OpenContractCount counts pending or active contracts the item appears in.
	OpenContractCount(ctx context.Context, itemID uuid.UUID) (int64, error)
}

type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error)
	Create(ctx context.Context, c *customer.Customer) error
	Update(ctx context.Context, c *customer.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	ContractCount(ctx context.Context, customerID uuid.UUID) (int64, error)
}

type ContractRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*contract.Contract, error)
	Create(ctx context.Context, c *contract.Contract) error
	AddItemLink(ctx context.Context, contractID, itemID uuid.UUID) error
	LinkExists(ctx context.Context, contractID, itemID uuid.UUID) (bool, error)
	// FindLatestCompletedByCustomer returns the customer's most recently
	// completed contract ordered by actual-return date descending, or nil
	// when the customer has no completed history.
	FindLatestCompletedByCustomer(ctx context.Context, customerID uuid.UUID) (*contract.Contract, error)
	// RentedItemCount counts items linked to the contract still in rented status.
	RentedItemCount(ctx context.Context, contractID uuid.UUID) (int64, error)
	Complete(ctx context.Context, c *contract.Contract) error
}

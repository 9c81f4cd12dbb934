//go:build unit

package commands_test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"equiprent/internal/domain/contract"
	"equiprent/internal/domain/customer"
	"equiprent/internal/domain/item"
	"equiprent/internal/infra"
	"equiprent/internal/infra/db"
	"equiprent/internal/usecase/shared"
)

// fakeStore is an in-memory stand-in for the persistence layer. lockMu
// plays the role of the FOR UPDATE row locks: FindByIDsForUpdate acquires
// it and the unit of work releases it when the transaction ends, so two
// concurrent rentals serialize exactly like they would against the store.
type fakeStore struct {
	mu     sync.Mutex
	lockMu sync.Mutex

	items     map[uuid.UUID]*item.Item
	customers map[uuid.UUID]*customer.Customer
	contracts map[uuid.UUID]*contract.Contract
	links     map[uuid.UUID][]uuid.UUID

	// optimistic, when set, is the frozen view served to non-locking item
	// reads. It simulates the window where the pre-check sees state that a
	// concurrent transaction is about to invalidate.
	optimistic map[uuid.UUID]*item.Item
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		items:     make(map[uuid.UUID]*item.Item),
		customers: make(map[uuid.UUID]*customer.Customer),
		contracts: make(map[uuid.UUID]*contract.Contract),
		links:     make(map[uuid.UUID][]uuid.UUID),
	}
}

func (s *fakeStore) seedCustomer(vip bool) *customer.Customer {
	c := customer.Reconstruct(uuid.New(), "Doe", "Jane", "jane@example.com", "", "", vip)
	s.customers[c.ID()] = c
	return c
}

func (s *fakeStore) seedItem(rate string, status item.Status) *item.Item {
	it := item.Reconstruct(
		uuid.New(), "excavator", "TestBrand", "X100", uuid.NewString(),
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		decimal.RequireFromString(rate), status,
	)
	s.items[it.ID()] = it
	return it
}

func (s *fakeStore) seedCompletedContract(customerID uuid.UUID, end, returned time.Time) *contract.Contract {
	period, err := contract.NewPeriod(end.AddDate(0, 0, -2), end)
	if err != nil {
		panic(err)
	}
	c := contract.Reconstruct(
		uuid.New(), customerID, period, &returned,
		decimal.RequireFromString("100"), contract.StatusCompleted,
		period.Start(),
	)
	s.contracts[c.ID()] = c
	return c
}

// freezeOptimisticView pins the current item state as the view served to
// all subsequent non-locking reads.
func (s *fakeStore) freezeOptimisticView() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.optimistic = make(map[uuid.UUID]*item.Item, len(s.items))
	for id, it := range s.items {
		s.optimistic[id] = it
	}
}

type fakeUoW struct {
	store *fakeStore
}

func newFakeUoW(store *fakeStore) shared.UnitOfWork {
	return &fakeUoW{store: store}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := &fakeTx{store: u.store}
	err := fn(ctx, tx)
	tx.unlock()
	return err
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

type fakeTx struct {
	store  *fakeStore
	locked bool
}

func (t *fakeTx) Items() shared.ItemRepository         { return &fakeItemRepo{tx: t} }
func (t *fakeTx) Customers() shared.CustomerRepository { return &fakeCustomerRepo{tx: t} }
func (t *fakeTx) Contracts() shared.ContractRepository { return &fakeContractRepo{tx: t} }
func (t *fakeTx) DB() db.DBTX                          { return nil }

func (t *fakeTx) unlock() {
	if t.locked {
		t.store.lockMu.Unlock()
		t.locked = false
	}
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, pgx.ErrNoRows, infra.KindNotFound)
}

type fakeItemRepo struct {
	tx *fakeTx
}

func (r *fakeItemRepo) FindByID(_ context.Context, id uuid.UUID) (*item.Item, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	if !ok {
		return nil, notFound("item not found")
	}
	return it, nil
}

func (r *fakeItemRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*item.Item, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	src := s.items
	if s.optimistic != nil {
		src = s.optimistic
	}
	var out []*item.Item
	for _, id := range ids {
		if it, ok := src[id]; ok {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) FindByIDsForUpdate(_ context.Context, ids []uuid.UUID) ([]*item.Item, error) {
	s := r.tx.store
	s.lockMu.Lock()
	r.tx.locked = true

	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*item.Item
	for _, id := range ids {
		if it, ok := s.items[id]; ok {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) Create(_ context.Context, it *item.Item) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[it.ID()] = it
	return nil
}

func (r *fakeItemRepo) UpdateStatus(_ context.Context, id uuid.UUID, status item.Status) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	if !ok {
		return notFound("item not found")
	}
	s.items[id] = item.Reconstruct(
		it.ID(), it.Category(), it.Brand(), it.Model(), it.SerialNumber(),
		it.PurchaseDate(), it.DailyRate(), status,
	)
	return nil
}

func (r *fakeItemRepo) Delete(_ context.Context, id uuid.UUID) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return notFound("item not found")
	}
	delete(s.items, id)
	return nil
}

func (r *fakeItemRepo) LinkedContractCount(_ context.Context, itemID uuid.UUID) (int64, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, itemIDs := range s.links {
		for _, id := range itemIDs {
			if id == itemID {
				count++
			}
		}
	}
	return count, nil
}

func (r *fakeItemRepo) OpenContractCount(_ context.Context, itemID uuid.UUID) (int64, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for contractID, itemIDs := range s.links {
		cont, ok := s.contracts[contractID]
		if !ok || !cont.IsOpen() {
			continue
		}
		for _, id := range itemIDs {
			if id == itemID {
				count++
			}
		}
	}
	return count, nil
}

type fakeCustomerRepo struct {
	tx *fakeTx
}

func (r *fakeCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*customer.Customer, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.customers[id]
	if !ok {
		return nil, notFound("customer not found")
	}
	return c, nil
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *customer.Customer) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers[c.ID()] = c
	return nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, c *customer.Customer) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.customers[c.ID()]; !ok {
		return notFound("customer not found")
	}
	s.customers[c.ID()] = c
	return nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.customers[id]; !ok {
		return notFound("customer not found")
	}
	delete(s.customers, id)
	return nil
}

func (r *fakeCustomerRepo) ContractCount(_ context.Context, customerID uuid.UUID) (int64, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, cont := range s.contracts {
		if cont.CustomerID() == customerID {
			count++
		}
	}
	return count, nil
}

type fakeContractRepo struct {
	tx *fakeTx
}

func (r *fakeContractRepo) FindByID(_ context.Context, id uuid.UUID) (*contract.Contract, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.contracts[id]
	if !ok {
		return nil, notFound("contract not found")
	}
	return c, nil
}

func (r *fakeContractRepo) Create(_ context.Context, c *contract.Contract) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contracts[c.ID()] = c
	return nil
}

func (r *fakeContractRepo) AddItemLink(_ context.Context, contractID, itemID uuid.UUID) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.links[contractID] = append(s.links[contractID], itemID)
	return nil
}

func (r *fakeContractRepo) LinkExists(_ context.Context, contractID, itemID uuid.UUID) (bool, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.links[contractID] {
		if id == itemID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeContractRepo) FindLatestCompletedByCustomer(_ context.Context, customerID uuid.UUID) (*contract.Contract, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var latest *contract.Contract
	for _, c := range s.contracts {
		if c.CustomerID() != customerID || c.Status() != contract.StatusCompleted || c.ActualReturn() == nil {
			continue
		}
		if latest == nil || c.ActualReturn().After(*latest.ActualReturn()) {
			latest = c
		}
	}
	return latest, nil
}

func (r *fakeContractRepo) RentedItemCount(_ context.Context, contractID uuid.UUID) (int64, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, itemID := range s.links[contractID] {
		if it, ok := s.items[itemID]; ok && it.Status() == item.StatusRented {
			count++
		}
	}
	return count, nil
}

func (r *fakeContractRepo) Complete(_ context.Context, c *contract.Contract) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.contracts[c.ID()]; !ok {
		return notFound("contract not found")
	}
	s.contracts[c.ID()] = c
	return nil
}

//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"equiprent/internal/domain/item"
	"equiprent/internal/pkg/clock"
	"equiprent/internal/pkg/errs"
	"equiprent/internal/usecase/commands"
)

func newFleetFixture() (*fakeStore, commands.FleetCommands) {
	store := newFakeStore()
	clk := clock.NewMockClock(testToday)
	return store, commands.NewFleetCommands(newFakeUoW(store), clk)
}

func validItemParams() commands.CreateItemParams {
	return commands.CreateItemParams{
		Category:     "excavator",
		Brand:        "Volvo",
		Model:        "EC220",
		SerialNumber: uuid.NewString(),
		PurchaseDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		DailyRate:    decimal.RequireFromString("120"),
	}
}

func TestCreateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a new available item", func(t *testing.T) {
		store, fleet := newFleetFixture()

		created, err := fleet.CreateItem(ctx, validItemParams())
		require.NoError(t, err)
		assert.Equal(t, item.StatusAvailable, created.Status())
		assert.NotNil(t, store.items[created.ID()])
	})

	t.Run("future purchase date is rejected", func(t *testing.T) {
		_, fleet := newFleetFixture()
		params := validItemParams()
		params.PurchaseDate = testToday.AddDate(0, 0, 1)

		_, err := fleet.CreateItem(ctx, params)
		assert.ErrorIs(t, err, errs.ErrInvalidDateRange)
	})

	t.Run("non-positive rate is rejected", func(t *testing.T) {
		_, fleet := newFleetFixture()
		params := validItemParams()
		params.DailyRate = decimal.Zero

		_, err := fleet.CreateItem(ctx, params)
		assert.ErrorIs(t, err, item.ErrNonPositiveRate)
	})
}

func TestChangeItemStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("available to maintenance", func(t *testing.T) {
		store, fleet := newFleetFixture()
		it := store.seedItem("100", item.StatusAvailable)

		require.NoError(t, fleet.ChangeItemStatus(ctx, it.ID(), item.StatusMaintenance))
		assert.Equal(t, item.StatusMaintenance, store.items[it.ID()].Status())
	})

	t.Run("renting a maintenance item is illegal", func(t *testing.T) {
		store, fleet := newFleetFixture()
		it := store.seedItem("100", item.StatusMaintenance)

		err := fleet.ChangeItemStatus(ctx, it.ID(), item.StatusRented)
		assert.ErrorIs(t, err, errs.ErrIllegalStatusChange)
		assert.Equal(t, item.StatusMaintenance, store.items[it.ID()].Status())
	})

	t.Run("unknown status value", func(t *testing.T) {
		store, fleet := newFleetFixture()
		it := store.seedItem("100", item.StatusAvailable)

		err := fleet.ChangeItemStatus(ctx, it.ID(), item.Status("lost"))
		assert.ErrorIs(t, err, errs.ErrIllegalStatusChange)
	})

	t.Run("unknown item", func(t *testing.T) {
		_, fleet := newFleetFixture()

		err := fleet.ChangeItemStatus(ctx, uuid.New(), item.StatusMaintenance)
		assert.ErrorIs(t, err, errs.ErrItemNotFound)
	})
}

func TestDeleteItem(t *testing.T) {
	ctx := context.Background()

	t.Run("unlinked available item is deleted", func(t *testing.T) {
		store, fleet := newFleetFixture()
		it := store.seedItem("100", item.StatusAvailable)

		require.NoError(t, fleet.DeleteItem(ctx, it.ID()))
		assert.NotContains(t, store.items, it.ID())
	})

	t.Run("rented item is protected", func(t *testing.T) {
		store, fleet := newFleetFixture()
		it := store.seedItem("100", item.StatusRented)

		err := fleet.DeleteItem(ctx, it.ID())
		assert.ErrorIs(t, err, errs.ErrItemInUse)
		assert.Contains(t, store.items, it.ID())
	})

	t.Run("maintenance item is protected", func(t *testing.T) {
		store, fleet := newFleetFixture()
		it := store.seedItem("100", item.StatusMaintenance)

		err := fleet.DeleteItem(ctx, it.ID())
		assert.ErrorIs(t, err, errs.ErrItemInUse)
	})

	t.Run("item linked to contract history is protected", func(t *testing.T) {
		store, fleet := newFleetFixture()
		it := store.seedItem("100", item.StatusAvailable)
		cust := store.seedCustomer(false)
		past := store.seedCompletedContract(cust.ID(), testToday.AddDate(0, 0, -5), testToday.AddDate(0, 0, -5))
		store.links[past.ID()] = []uuid.UUID{it.ID()}

		err := fleet.DeleteItem(ctx, it.ID())
		assert.ErrorIs(t, err, errs.ErrItemInUse)
		assert.Contains(t, store.items, it.ID())
	})

	t.Run("unknown item", func(t *testing.T) {
		_, fleet := newFleetFixture()

		err := fleet.DeleteItem(ctx, uuid.New())
		assert.ErrorIs(t, err, errs.ErrItemNotFound)
	})
}

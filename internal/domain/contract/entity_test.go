//go:build unit

package contract_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"equiprent/internal/domain/contract"
)

func date(d int) time.Time {
	return time.Date(2026, 9, d, 0, 0, 0, 0, time.UTC)
}

func TestNewPeriod(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		p, err := contract.NewPeriod(date(1), date(5))
		require.NoError(t, err)
		assert.Equal(t, date(1), p.Start())
		assert.Equal(t, date(5), p.End())
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := contract.NewPeriod(date(5), date(1))
		assert.Error(t, err)
	})
}

func TestPeriodDays(t *testing.T) {
	cases := []struct {
		name     string
		start    int
		end      int
		expected int
	}{
		{"same day counts as one", 1, 1, 1},
		{"two calendar days", 1, 2, 2},
		{"inclusive week", 1, 7, 7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := contract.NewPeriod(date(tc.start), date(tc.end))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, p.Days())
		})
	}
}

func TestContractLifecycle(t *testing.T) {
	newActive := func(t *testing.T) *contract.Contract {
		t.Helper()
		p, err := contract.NewPeriod(date(1), date(5))
		require.NoError(t, err)
		c, err := contract.NewContract(uuid.New(), p, decimal.RequireFromString("200"), date(1))
		require.NoError(t, err)
		return c
	}

	t.Run("new contract opens active", func(t *testing.T) {
		c := newActive(t)
		assert.Equal(t, contract.StatusActive, c.Status())
		assert.True(t, c.IsOpen())
		assert.Nil(t, c.ActualReturn())
		assert.False(t, c.ReturnedLate())
	})

	t.Run("negative price is rejected", func(t *testing.T) {
		p, err := contract.NewPeriod(date(1), date(5))
		require.NoError(t, err)
		_, err = contract.NewContract(uuid.New(), p, decimal.RequireFromString("-1"), date(1))
		assert.ErrorIs(t, err, contract.ErrNegativePrice)
	})

	t.Run("complete stamps return date", func(t *testing.T) {
		c := newActive(t)
		require.NoError(t, c.Complete(date(4)))
		assert.Equal(t, contract.StatusCompleted, c.Status())
		assert.False(t, c.IsOpen())
		require.NotNil(t, c.ActualReturn())
		assert.Equal(t, date(4), *c.ActualReturn())
		assert.False(t, c.ReturnedLate())
	})

	t.Run("completing twice fails", func(t *testing.T) {
		c := newActive(t)
		require.NoError(t, c.Complete(date(4)))
		assert.ErrorIs(t, c.Complete(date(5)), contract.ErrAlreadyCompleted)
	})

	t.Run("return after due date is late", func(t *testing.T) {
		c := newActive(t)
		require.NoError(t, c.Complete(date(8)))
		assert.True(t, c.ReturnedLate())
	})

	t.Run("return on the due date is on time", func(t *testing.T) {
		c := newActive(t)
		require.NoError(t, c.Complete(date(5)))
		assert.False(t, c.ReturnedLate())
	})
}

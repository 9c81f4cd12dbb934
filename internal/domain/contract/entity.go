package contract

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNegativePrice    = errors.New("total price cannot be negative")
	ErrAlreadyCompleted = errors.New("contract is already completed")
)

// Contract links one customer to a set of items over a period. TotalPrice is
// frozen at creation time and never recomputed, even if pricing rules change.
type Contract struct {
	id           uuid.UUID
	customerID   uuid.UUID
	period       Period
	actualReturn *time.Time
	totalPrice   decimal.Decimal
	status       Status
	createdAt    time.Time
}

// NewContract opens a contract directly in Active: the coordinator only
// creates it once every requested item is locked and claimed.
func NewContract(customerID uuid.UUID, period Period, totalPrice decimal.Decimal, createdAt time.Time) (*Contract, error) {
	if totalPrice.IsNegative() {
		return nil, ErrNegativePrice
	}
	return &Contract{
		id:         uuid.New(),
		customerID: customerID,
		period:     period,
		totalPrice: totalPrice,
		status:     StatusActive,
		createdAt:  createdAt,
	}, nil
}

func Reconstruct(id, customerID uuid.UUID, period Period, actualReturn *time.Time, totalPrice decimal.Decimal, status Status, createdAt time.Time) *Contract {
	return &Contract{
		id:           id,
		customerID:   customerID,
		period:       period,
		actualReturn: actualReturn,
		totalPrice:   totalPrice,
		status:       status,
		createdAt:    createdAt,
	}
}

// Complete stamps the actual-return date. Called once the last linked item
// has come back.
func (c *Contract) Complete(returnDate time.Time) error {
	if c.status == StatusCompleted {
		return ErrAlreadyCompleted
	}
	c.status = StatusCompleted
	c.actualReturn = &returnDate
	return nil
}

// ReturnedLate reports whether the contract was completed after its due
// date. False while the contract is still open.
func (c *Contract) ReturnedLate() bool {
	return c.actualReturn != nil && c.actualReturn.After(c.period.End())
}

func (c *Contract) IsOpen() bool {
	return c.status == StatusPending || c.status == StatusActive
}

func (c *Contract) ID() uuid.UUID              { return c.id }
func (c *Contract) CustomerID() uuid.UUID      { return c.customerID }
func (c *Contract) Period() Period             { return c.period }
func (c *Contract) ActualReturn() *time.Time   { return c.actualReturn }
func (c *Contract) TotalPrice() decimal.Decimal { return c.totalPrice }
func (c *Contract) Status() Status             { return c.status }
func (c *Contract) CreatedAt() time.Time       { return c.createdAt }

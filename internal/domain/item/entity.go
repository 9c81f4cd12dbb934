package item

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStatus       = errors.New("invalid item status")
	ErrEmptyField          = errors.New("required field is empty")
	ErrNonPositiveRate     = errors.New("daily rate must be positive")
	ErrFuturePurchaseDate  = errors.New("purchase date cannot be in the future")
)

// Item is one physical rentable unit. Status mutations flow exclusively
// through the rental coordinator; the only restricted transition is into
// StatusRented, which requires StatusAvailable.
type Item struct {
	id           uuid.UUID
	category     string
	brand        string
	model        string
	serialNumber string
	purchaseDate time.Time
	dailyRate    decimal.Decimal
	status       Status
}

func NewItem(category, brand, model, serialNumber string, purchaseDate time.Time, dailyRate decimal.Decimal, now time.Time) (*Item, error) {
	for _, f := range []string{category, brand, model, serialNumber} {
		if strings.TrimSpace(f) == "" {
			return nil, ErrEmptyField
		}
	}
	if !dailyRate.IsPositive() {
		return nil, ErrNonPositiveRate
	}
	if purchaseDate.After(now) {
		return nil, ErrFuturePurchaseDate
	}

	return &Item{
		id:           uuid.New(),
		category:     strings.TrimSpace(category),
		brand:        strings.TrimSpace(brand),
		model:        strings.TrimSpace(model),
		serialNumber: strings.TrimSpace(serialNumber),
		purchaseDate: purchaseDate,
		dailyRate:    dailyRate,
		status:       StatusAvailable,
	}, nil
}

func Reconstruct(id uuid.UUID, category, brand, model, serialNumber string, purchaseDate time.Time, dailyRate decimal.Decimal, status Status) *Item {
	return &Item{
		id:           id,
		category:     category,
		brand:        brand,
		model:        model,
		serialNumber: serialNumber,
		purchaseDate: purchaseDate,
		dailyRate:    dailyRate,
		status:       status,
	}
}

func (i *Item) IsAvailable() bool {
	return i.status == StatusAvailable
}

func (i *Item) ID() uuid.UUID           { return i.id }
func (i *Item) Category() string        { return i.category }
func (i *Item) Brand() string           { return i.brand }
func (i *Item) Model() string           { return i.model }
func (i *Item) SerialNumber() string    { return i.serialNumber }
func (i *Item) PurchaseDate() time.Time { return i.purchaseDate }
func (i *Item) DailyRate() decimal.Decimal { return i.dailyRate }
func (i *Item) Status() Status          { return i.status }

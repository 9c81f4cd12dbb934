package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)

type ItemView struct {
	ID           uuid.UUID       `json:"id"`
	Category     string          `json:"category"`
	Brand        string          `json:"brand"`
	Model        string          `json:"model"`
	SerialNumber string          `json:"serial_number"`
	PurchaseDate time.Time       `json:"purchase_date"`
	DailyRate    decimal.Decimal `json:"daily_rate"`
	Status       string          `json:"status"`
}

type CustomerView struct {
	ID        uuid.UUID `json:"id"`
	LastName  string    `json:"last_name"`
	FirstName string    `json:"first_name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Address   *string   `json:"address,omitempty"`
	VIP       bool      `json:"vip"`
}

type ContractItemView struct {
	ItemID       uuid.UUID       `json:"item_id"`
	Brand        string          `json:"brand"`
	Model        string          `json:"model"`
	SerialNumber string          `json:"serial_number"`
	DailyRate    decimal.Decimal `json:"daily_rate"`
	Status       string          `json:"status"`
}

type ContractView struct {
	ID            uuid.UUID          `json:"id"`
	CustomerID    uuid.UUID          `json:"customer_id"`
	CustomerName  string             `json:"customer_name"`
	StartDate     time.Time          `json:"start_date"`
	EndDate       time.Time          `json:"end_date"`
	ActualReturn  *time.Time         `json:"actual_return_date,omitempty"`
	TotalPrice    decimal.Decimal    `json:"total_price"`
	Status        string             `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
	Items         []ContractItemView `json:"items"`
}

type ContractListItem struct {
	ID           uuid.UUID       `json:"id"`
	CustomerID   uuid.UUID       `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	StartDate    time.Time       `json:"start_date"`
	EndDate      time.Time       `json:"end_date"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	Status       string          `json:"status"`
	ItemCount    int64           `json:"item_count"`
}

type OverdueContractView struct {
	ID           uuid.UUID `json:"id"`
	CustomerID   uuid.UUID `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	EndDate      time.Time `json:"end_date"`
	DaysOverdue  int       `json:"days_overdue"`
}

type ItemRevenueView struct {
	ItemID   uuid.UUID       `json:"item_id"`
	Brand    string          `json:"brand"`
	Model    string          `json:"model"`
	Category string          `json:"category"`
	Revenue  decimal.Decimal `json:"revenue"`
}

type DashboardView struct {
	Overdue       []*OverdueContractView `json:"overdue"`
	Revenue30Days decimal.Decimal        `json:"revenue_30_days"`
	TopItems      []*ItemRevenueView     `json:"top_items"`
}

type QuoteView struct {
	Base              decimal.Decimal `json:"base"`
	DurationDiscount  decimal.Decimal `json:"duration_discount"`
	VIPDiscount       decimal.Decimal `json:"vip_discount"`
	LatenessSurcharge decimal.Decimal `json:"lateness_surcharge"`
	Final             decimal.Decimal `json:"final"`
}

package request

import (
	"time"

	"github.com/shopspring/decimal"

	"equiprent/internal/usecase/commands"
)

type CreateItemRequest struct {
	Category     string          `json:"category" binding:"required"`
	Brand        string          `json:"brand" binding:"required"`
	Model        string          `json:"model" binding:"required"`
	SerialNumber string          `json:"serial_number" binding:"required"`
	PurchaseDate time.Time       `json:"purchase_date" binding:"required"`
	DailyRate    decimal.Decimal `json:"daily_rate" binding:"required"`
}

func (r CreateItemRequest) ToParams() commands.CreateItemParams {
	return commands.CreateItemParams{
		Category:     r.Category,
		Brand:        r.Brand,
		Model:        r.Model,
		SerialNumber: r.SerialNumber,
		PurchaseDate: r.PurchaseDate,
		DailyRate:    r.DailyRate,
	}
}

type ChangeItemStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

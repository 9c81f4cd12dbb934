package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"equiprent/internal/domain/item"
	"equiprent/internal/usecase/queries"
)

type ItemResponse struct {
	ID           uuid.UUID       `json:"id"`
	Category     string          `json:"category"`
	Brand        string          `json:"brand"`
	Model        string          `json:"model"`
	SerialNumber string          `json:"serialNumber"`
	PurchaseDate time.Time       `json:"purchaseDate"`
	DailyRate    decimal.Decimal `json:"dailyRate"`
	Status       string          `json:"status"`
}

func FromItemView(rm *queries.ItemView) *ItemResponse {
	return &ItemResponse{
		ID:           rm.ID,
		Category:     rm.Category,
		Brand:        rm.Brand,
		Model:        rm.Model,
		SerialNumber: rm.SerialNumber,
		PurchaseDate: rm.PurchaseDate,
		DailyRate:    rm.DailyRate,
		Status:       rm.Status,
	}
}

func FromItemEntity(it *item.Item) *ItemResponse {
	return &ItemResponse{
		ID:           it.ID(),
		Category:     it.Category(),
		Brand:        it.Brand(),
		Model:        it.Model(),
		SerialNumber: it.SerialNumber(),
		PurchaseDate: it.PurchaseDate(),
		DailyRate:    it.DailyRate(),
		Status:       string(it.Status()),
	}
}

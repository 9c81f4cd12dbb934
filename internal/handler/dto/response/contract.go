package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"equiprent/internal/usecase/commands"
	"equiprent/internal/usecase/queries"
)

type ContractItemResponse struct {
	ItemID       uuid.UUID       `json:"itemId"`
	Brand        string          `json:"brand"`
	Model        string          `json:"model"`
	SerialNumber string          `json:"serialNumber"`
	DailyRate    decimal.Decimal `json:"dailyRate"`
	Status       string          `json:"status"`
}

type ContractResponse struct {
	ID           uuid.UUID              `json:"id"`
	CustomerID   uuid.UUID              `json:"customerId"`
	CustomerName string                 `json:"customerName"`
	StartDate    time.Time              `json:"startDate"`
	EndDate      time.Time              `json:"endDate"`
	ActualReturn *time.Time             `json:"actualReturnDate,omitempty"`
	TotalPrice   decimal.Decimal        `json:"totalPrice"`
	Status       string                 `json:"status"`
	CreatedAt    time.Time              `json:"createdAt"`
	Items        []ContractItemResponse `json:"items"`
}

type ContractListResponse struct {
	ID           uuid.UUID       `json:"id"`
	CustomerID   uuid.UUID       `json:"customerId"`
	CustomerName string          `json:"customerName"`
	StartDate    time.Time       `json:"startDate"`
	EndDate      time.Time       `json:"endDate"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	Status       string          `json:"status"`
	ItemCount    int64           `json:"itemCount"`
}

type CreateRentalResponse struct {
	ID         uuid.UUID       `json:"id"`
	CustomerID uuid.UUID       `json:"customerId"`
	StartDate  time.Time       `json:"startDate"`
	EndDate    time.Time       `json:"endDate"`
	Status     string          `json:"status"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	Price      QuoteResponse   `json:"price"`
}

func FromContractView(rm *queries.ContractView) *ContractResponse {
	items := make([]ContractItemResponse, len(rm.Items))
	for i, it := range rm.Items {
		items[i] = ContractItemResponse{
			ItemID:       it.ItemID,
			Brand:        it.Brand,
			Model:        it.Model,
			SerialNumber: it.SerialNumber,
			DailyRate:    it.DailyRate,
			Status:       it.Status,
		}
	}
	return &ContractResponse{
		ID:           rm.ID,
		CustomerID:   rm.CustomerID,
		CustomerName: rm.CustomerName,
		StartDate:    rm.StartDate,
		EndDate:      rm.EndDate,
		ActualReturn: rm.ActualReturn,
		TotalPrice:   rm.TotalPrice,
		Status:       rm.Status,
		CreatedAt:    rm.CreatedAt,
		Items:        items,
	}
}

func FromContractListItem(rm *queries.ContractListItem) *ContractListResponse {
	return &ContractListResponse{
		ID:           rm.ID,
		CustomerID:   rm.CustomerID,
		CustomerName: rm.CustomerName,
		StartDate:    rm.StartDate,
		EndDate:      rm.EndDate,
		TotalPrice:   rm.TotalPrice,
		Status:       rm.Status,
		ItemCount:    rm.ItemCount,
	}
}

func FromCreateRentalResult(res *commands.CreateRentalResult) *CreateRentalResponse {
	cont := res.Contract
	return &CreateRentalResponse{
		ID:         cont.ID(),
		CustomerID: cont.CustomerID(),
		StartDate:  cont.Period().Start(),
		EndDate:    cont.Period().End(),
		Status:     string(cont.Status()),
		TotalPrice: cont.TotalPrice(),
		Price: QuoteResponse{
			Base:              res.Price.Base,
			DurationDiscount:  res.Price.DurationDiscount,
			VIPDiscount:       res.Price.VIPDiscount,
			LatenessSurcharge: res.Price.LatenessSurcharge,
			Final:             res.Price.Final,
		},
	}
}

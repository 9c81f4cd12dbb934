package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"equiprent/internal/usecase/queries"
)

type OverdueContractResponse struct {
	ID           uuid.UUID `json:"id"`
	CustomerID   uuid.UUID `json:"customerId"`
	CustomerName string    `json:"customerName"`
	EndDate      time.Time `json:"endDate"`
	DaysOverdue  int       `json:"daysOverdue"`
}

type ItemRevenueResponse struct {
	ItemID   uuid.UUID       `json:"itemId"`
	Brand    string          `json:"brand"`
	Model    string          `json:"model"`
	Category string          `json:"category"`
	Revenue  decimal.Decimal `json:"revenue"`
}

type DashboardResponse struct {
	Overdue       []*OverdueContractResponse `json:"overdue"`
	Revenue30Days decimal.Decimal            `json:"revenue30Days"`
	TopItems      []*ItemRevenueResponse     `json:"topItems"`
}

func FromDashboardView(rm *queries.DashboardView) *DashboardResponse {
	overdue := make([]*OverdueContractResponse, len(rm.Overdue))
	for i, o := range rm.Overdue {
		overdue[i] = &OverdueContractResponse{
			ID:           o.ID,
			CustomerID:   o.CustomerID,
			CustomerName: o.CustomerName,
			EndDate:      o.EndDate,
			DaysOverdue:  o.DaysOverdue,
		}
	}
	top := make([]*ItemRevenueResponse, len(rm.TopItems))
	for i, t := range rm.TopItems {
		top[i] = &ItemRevenueResponse{
			ItemID:   t.ItemID,
			Brand:    t.Brand,
			Model:    t.Model,
			Category: t.Category,
			Revenue:  t.Revenue,
		}
	}
	return &DashboardResponse{
		Overdue:       overdue,
		Revenue30Days: rm.Revenue30Days,
		TopItems:      top,
	}
}

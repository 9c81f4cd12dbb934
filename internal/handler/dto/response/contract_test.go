//go:build unit

package response_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"equiprent/internal/handler/dto/response"
	"equiprent/internal/usecase/queries"
)

var cmpOpts = []cmp.Option{
	cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
}

func TestFromContractView(t *testing.T) {
	contractID := uuid.New()
	customerID := uuid.New()
	itemID := uuid.New()
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	returned := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)
	created := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	view := &queries.ContractView{
		ID:           contractID,
		CustomerID:   customerID,
		CustomerName: "Doe Jane",
		StartDate:    start,
		EndDate:      end,
		ActualReturn: &returned,
		TotalPrice:   decimal.RequireFromString("450"),
		Status:       "completed",
		CreatedAt:    created,
		Items: []queries.ContractItemView{{
			ItemID:       itemID,
			Brand:        "Volvo",
			Model:        "EC220",
			SerialNumber: "SN-1",
			DailyRate:    decimal.RequireFromString("150"),
			Status:       "available",
		}},
	}

	expected := &response.ContractResponse{
		ID:           contractID,
		CustomerID:   customerID,
		CustomerName: "Doe Jane",
		StartDate:    start,
		EndDate:      end,
		ActualReturn: &returned,
		TotalPrice:   decimal.RequireFromString("450"),
		Status:       "completed",
		CreatedAt:    created,
		Items: []response.ContractItemResponse{{
			ItemID:       itemID,
			Brand:        "Volvo",
			Model:        "EC220",
			SerialNumber: "SN-1",
			DailyRate:    decimal.RequireFromString("150"),
			Status:       "available",
		}},
	}

	if diff := cmp.Diff(expected, response.FromContractView(view), cmpOpts...); diff != "" {
		t.Errorf("ContractResponse mismatch (-want +got):\n%s", diff)
	}
}

func TestFromContractListItem(t *testing.T) {
	view := &queries.ContractListItem{
		ID:           uuid.New(),
		CustomerID:   uuid.New(),
		CustomerName: "Doe Jane",
		StartDate:    time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		TotalPrice:   decimal.RequireFromString("450"),
		Status:       "active",
		ItemCount:    3,
	}

	got := response.FromContractListItem(view)

	expected := &response.ContractListResponse{
		ID:           view.ID,
		CustomerID:   view.CustomerID,
		CustomerName: view.CustomerName,
		StartDate:    view.StartDate,
		EndDate:      view.EndDate,
		TotalPrice:   view.TotalPrice,
		Status:       view.Status,
		ItemCount:    view.ItemCount,
	}

	if diff := cmp.Diff(expected, got, cmpOpts...); diff != "" {
		t.Errorf("ContractListResponse mismatch (-want +got):\n%s", diff)
	}
}

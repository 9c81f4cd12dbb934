package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateRentalRequest struct {
	CustomerID uuid.UUID   `json:"customer_id" binding:"required"`
	ItemIDs    []uuid.UUID `json:"item_ids" binding:"required"`
	StartDate  time.Time   `json:"start_date" binding:"required"`
	EndDate    time.Time   `json:"end_date" binding:"required"`
}

type QuoteRequest struct {
	CustomerID uuid.UUID   `json:"customer_id" binding:"required"`
	ItemIDs    []uuid.UUID `json:"item_ids" binding:"required"`
	StartDate  time.Time   `json:"start_date" binding:"required"`
	EndDate    time.Time   `json:"end_date" binding:"required"`
}

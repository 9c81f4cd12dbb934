package api

import (
	"errors"
	"net/http"

	reqdto "equiprent/internal/handler/dto/request"
	resdto "equiprent/internal/handler/dto/response"
	"equiprent/internal/handler/httperr"
	"equiprent/internal/infra"
	"equiprent/internal/pkg/errs"
	"equiprent/internal/usecase/commands"
	"equiprent/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RentalHandler struct {
	rentalCommands commands.RentalCommands
	contractQuery  queries.ContractQueries
	pricingQuery   queries.PricingQueries
}

func NewRentalHandler(
	rentalCommands commands.RentalCommands,
	contractQuery queries.ContractQueries,
	pricingQuery queries.PricingQueries,
) *RentalHandler {
	return &RentalHandler{
		rentalCommands: rentalCommands,
		contractQuery:  contractQuery,
		pricingQuery:   pricingQuery,
	}
}

func (h *RentalHandler) CreateRental(c *gin.Context) {
	var req reqdto.CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.rentalCommands.CreateRental(c.Request.Context(), req.CustomerID, req.ItemIDs, req.StartDate, req.EndDate)
	if err != nil {
		h.abortRentalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateRentalResult(result))
}

func (h *RentalHandler) ReturnItem(c *gin.Context) {
	contractID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid contract ID format", nil)
		return
	}

	var req struct {
		ItemID uuid.UUID `json:"item_id" binding:"required"`
	}
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	if err := h.rentalCommands.ReturnItem(c.Request.Context(), contractID, req.ItemID); err != nil {
		h.abortRentalError(c, err)
		return
	}

	contractRM, err := h.contractQuery.GetByID(c.Request.Context(), contractID)
	if err != nil {
		h.abortRentalError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromContractView(contractRM))
}

func (h *RentalHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	quote, err := h.pricingQuery.QuoteBreakdown(c.Request.Context(), req.CustomerID, req.ItemIDs, req.StartDate, req.EndDate)
	if err != nil {
		h.abortRentalError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuoteView(quote))
}

func (h *RentalHandler) GetContract(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid contract ID format", nil)
		return
	}

	contractRM, err := h.contractQuery.GetByID(c.Request.Context(), id)
	if err != nil {
		h.abortRentalError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromContractView(contractRM))
}

func (h *RentalHandler) ListOpenContracts(c *gin.Context) {
	contracts, err := h.contractQuery.ListOpen(c.Request.Context())
	if err != nil {
		h.abortRentalError(c, err)
		return
	}

	response := make([]*resdto.ContractListResponse, len(contracts))
	for i, rm := range contracts {
		response[i] = resdto.FromContractListItem(rm)
	}

	c.JSON(http.StatusOK, response)
}

// abortRentalError maps business failures to HTTP statuses. Conflicting and
// unavailable item IDs travel in the detail payload so the caller can show
// the operator exactly which lines of the cart failed.
func (h *RentalHandler) abortRentalError(c *gin.Context, err error) {
	var unavailable *commands.UnavailableItemsError
	var conflict *commands.ConcurrencyConflictError

	switch {
	case errors.Is(err, errs.ErrCustomerNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
	case errors.Is(err, errs.ErrContractNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Contract not found", nil)
	case errors.Is(err, errs.ErrItemNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found", nil)
	case errors.Is(err, errs.ErrItemNotLinked):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Item is not part of this contract", nil)
	case errors.Is(err, errs.ErrInvalidDateRange):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid rental period", nil)
	case errors.Is(err, errs.ErrEmptyCart):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "At least one item is required", nil)
	case errors.As(err, &unavailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Items not available for rent",
			gin.H{"item_ids": unavailable.ItemIDs})
	case errors.As(err, &conflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Items claimed by a concurrent rental",
			gin.H{"item_ids": conflict.ItemIDs})
	case errors.Is(err, errs.ErrItemsUnavailable), errors.Is(err, errs.ErrConcurrencyConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Items not available for rent", nil)
	case infra.IsKind(err, infra.KindNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Contract not found", nil)
	case errors.Is(err, errs.ErrOperationalFailure):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

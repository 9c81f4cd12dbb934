package api

import (
	"errors"
	"net/http"

	"equiprent/internal/domain/item"
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

type ItemHandler struct {
	fleetCommands commands.FleetCommands
	itemQuery     queries.ItemQueries
}

func NewItemHandler(fleetCommands commands.FleetCommands, itemQuery queries.ItemQueries) *ItemHandler {
	return &ItemHandler{
		fleetCommands: fleetCommands,
		itemQuery:     itemQuery,
	}
}

func (h *ItemHandler) CreateItem(c *gin.Context) {
	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	created, err := h.fleetCommands.CreateItem(c.Request.Context(), req.ToParams())
	if err != nil {
		h.abortItemError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromItemEntity(created))
}

func (h *ItemHandler) ChangeItemStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID format", nil)
		return
	}

	var req reqdto.ChangeItemStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	if err := h.fleetCommands.ChangeItemStatus(c.Request.Context(), id, item.Status(req.Status)); err != nil {
		h.abortItemError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ItemHandler) DeleteItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID format", nil)
		return
	}

	if err := h.fleetCommands.DeleteItem(c.Request.Context(), id); err != nil {
		h.abortItemError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ItemHandler) GetItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID format", nil)
		return
	}

	itemRM, err := h.itemQuery.GetByID(c.Request.Context(), id)
	if err != nil {
		h.abortItemError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemView(itemRM))
}

func (h *ItemHandler) ListItems(c *gin.Context) {
	var status *item.Status
	if raw := c.Query("status"); raw != "" {
		st := item.Status(raw)
		if !st.IsValid() {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.Newf("unknown item status %q", raw), "Unknown item status", nil)
			return
		}
		status = &st
	}

	items, err := h.itemQuery.List(c.Request.Context(), status)
	if err != nil {
		h.abortItemError(c, err)
		return
	}

	response := make([]*resdto.ItemResponse, len(items))
	for i, rm := range items {
		response[i] = resdto.FromItemView(rm)
	}

	c.JSON(http.StatusOK, response)
}

func (h *ItemHandler) abortItemError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrItemNotFound), infra.IsKind(err, infra.KindNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found", nil)
	case errors.Is(err, errs.ErrIllegalStatusChange):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Illegal status change", nil)
	case errors.Is(err, errs.ErrItemInUse):
		httperr.AbortWithError(c, http.StatusConflict, err, "Item is in use and cannot be deleted", nil)
	case errors.Is(err, errs.ErrInvalidDateRange):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid purchase date", nil)
	case errors.Is(err, item.ErrEmptyField),
		errors.Is(err, item.ErrNonPositiveRate),
		errors.Is(err, item.ErrFuturePurchaseDate),
		errors.Is(err, item.ErrInvalidStatus):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)
	case errors.Is(err, errs.ErrIntegrityViolation):
		httperr.AbortWithError(c, http.StatusConflict, err, "Item conflicts with existing data", nil)
	case errors.Is(err, errs.ErrOperationalFailure):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

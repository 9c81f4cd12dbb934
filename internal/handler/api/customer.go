package api

import (
	"errors"
	"net/http"

	"equiprent/internal/domain/customer"
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

type CustomerHandler struct {
	customerCommands commands.CustomerCommands
	customerQuery    queries.CustomerQueries
}

func NewCustomerHandler(customerCommands commands.CustomerCommands, customerQuery queries.CustomerQueries) *CustomerHandler {
	return &CustomerHandler{
		customerCommands: customerCommands,
		customerQuery:    customerQuery,
	}
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req reqdto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	created, err := h.customerCommands.CreateCustomer(c.Request.Context(), req.ToParams())
	if err != nil {
		h.abortCustomerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCustomerEntity(created))
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid customer ID format", nil)
		return
	}

	var req reqdto.CustomerRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	if err := h.customerCommands.UpdateCustomer(c.Request.Context(), id, req.ToParams()); err != nil {
		h.abortCustomerError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid customer ID format", nil)
		return
	}

	if err := h.customerCommands.DeleteCustomer(c.Request.Context(), id); err != nil {
		h.abortCustomerError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid customer ID format", nil)
		return
	}

	customerRM, err := h.customerQuery.GetByID(c.Request.Context(), id)
	if err != nil {
		h.abortCustomerError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCustomerView(customerRM))
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.customerQuery.List(c.Request.Context())
	if err != nil {
		h.abortCustomerError(c, err)
		return
	}

	response := make([]*resdto.CustomerResponse, len(customers))
	for i, rm := range customers {
		response[i] = resdto.FromCustomerView(rm)
	}

	c.JSON(http.StatusOK, response)
}

func (h *CustomerHandler) abortCustomerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrCustomerNotFound), infra.IsKind(err, infra.KindNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
	case errors.Is(err, errs.ErrCustomerHasContracts):
		httperr.AbortWithError(c, http.StatusConflict, err, "Customer owns contracts and cannot be deleted", nil)
	case errors.Is(err, customer.ErrEmptyName), errors.Is(err, customer.ErrInvalidEmail):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)
	case errors.Is(err, errs.ErrIntegrityViolation):
		httperr.AbortWithError(c, http.StatusConflict, err, "Customer conflicts with existing data", nil)
	case errors.Is(err, errs.ErrOperationalFailure):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

package response

import (
	"github.com/google/uuid"

	"equiprent/internal/domain/customer"
	"equiprent/internal/usecase/queries"
)

type CustomerResponse struct {
	ID        uuid.UUID `json:"id"`
	LastName  string    `json:"lastName"`
	FirstName string    `json:"firstName"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Address   *string   `json:"address,omitempty"`
	VIP       bool      `json:"vip"`
}

func FromCustomerView(rm *queries.CustomerView) *CustomerResponse {
	return &CustomerResponse{
		ID:        rm.ID,
		LastName:  rm.LastName,
		FirstName: rm.FirstName,
		Email:     rm.Email,
		Phone:     rm.Phone,
		Address:   rm.Address,
		VIP:       rm.VIP,
	}
}

func FromCustomerEntity(c *customer.Customer) *CustomerResponse {
	resp := &CustomerResponse{
		ID:        c.ID(),
		LastName:  c.LastName(),
		FirstName: c.FirstName(),
		Email:     c.Email(),
		VIP:       c.IsVIP(),
	}
	if p := c.Phone(); p != "" {
		resp.Phone = &p
	}
	if a := c.Address(); a != "" {
		resp.Address = &a
	}
	return resp
}

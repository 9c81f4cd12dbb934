package request

import (
	"strings"

	"equiprent/internal/usecase/commands"
)

type CustomerRequest struct {
	LastName  string  `json:"last_name" binding:"required"`
	FirstName string  `json:"first_name" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
	VIP       bool    `json:"vip"`
}

func (r CustomerRequest) ToParams() commands.CustomerParams {
	return commands.CustomerParams{
		LastName:  strings.TrimSpace(r.LastName),
		FirstName: strings.TrimSpace(r.FirstName),
		Email:     strings.TrimSpace(r.Email),
		Phone:     deref(r.Phone),
		Address:   deref(r.Address),
		VIP:       r.VIP,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

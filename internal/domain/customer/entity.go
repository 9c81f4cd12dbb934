package customer

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("customer name cannot be empty")
	ErrInvalidEmail = errors.New("invalid email address")
)

// Customer is a renting party. The VIP flag grants a flat 15% discount,
// applied by the pricing engine.
type Customer struct {
	id        uuid.UUID
	lastName  string
	firstName string
	email     string
	phone     string
	address   string
	vip       bool
}

func NewCustomer(lastName, firstName, email, phone, address string, vip bool) (*Customer, error) {
	lastName = strings.TrimSpace(lastName)
	firstName = strings.TrimSpace(firstName)
	if lastName == "" || firstName == "" {
		return nil, ErrEmptyName
	}
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}

	return &Customer{
		id:        uuid.New(),
		lastName:  lastName,
		firstName: firstName,
		email:     email,
		phone:     strings.TrimSpace(phone),
		address:   strings.TrimSpace(address),
		vip:       vip,
	}, nil
}

func Reconstruct(id uuid.UUID, lastName, firstName, email, phone, address string, vip bool) *Customer {
	return &Customer{
		id:        id,
		lastName:  lastName,
		firstName: firstName,
		email:     email,
		phone:     phone,
		address:   address,
		vip:       vip,
	}
}

func (c *Customer) ID() uuid.UUID     { return c.id }
func (c *Customer) LastName() string  { return c.lastName }
func (c *Customer) FirstName() string { return c.firstName }
func (c *Customer) Email() string     { return c.email }
func (c *Customer) Phone() string     { return c.phone }
func (c *Customer) Address() string   { return c.address }
func (c *Customer) IsVIP() bool       { return c.vip }

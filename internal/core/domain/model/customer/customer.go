package customer

import (
	"errors"
	"fmt"
	"strings"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/errs"
	"depot/internal/pkg/guard"
)

var (
	// ErrCustomerIsNotConstructed is returned when a Customer was not created through NewCustomer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

// Customer is a queued request to collect one parcel.
// Customer values are immutable; the queue hands out copies.
type Customer struct {
	seq      int
	name     string
	parcelID kernel.ParcelID

	guard guard.ConstructorGuard
}

// NewCustomer creates a customer with the given queue sequence number.
// All validation failures are reported together.
//
// Example:
//
//	c, err := customer.NewCustomer(1, "Alice", kernel.MustNewParcelID("x100"))
//	fmt.Println(c) // Customer{seq=1, name='Alice', parcelID='X100'}
func NewCustomer(seq int, name string, parcelID kernel.ParcelID) (Customer, error) {
	c := Customer{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		c.setSeq(seq),
		c.setName(name),
		c.setParcelID(parcelID),
	); err != nil {
		return Customer{}, err
	}

	return c, nil
}

// Validate ensures the customer was created through NewCustomer.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// Seq returns the customer's position in arrival order, starting at 1.
func (c Customer) Seq() int {
	return c.seq
}

// Name returns the customer's name.
func (c Customer) Name() string {
	return c.name
}

// ParcelID returns the identifier of the parcel the customer wants.
func (c Customer) ParcelID() kernel.ParcelID {
	return c.parcelID
}

// String returns the customer in the form Customer{seq=1, name='Alice', parcelID='X100'}.
func (c Customer) String() string {
	return fmt.Sprintf("Customer{seq=%d, name='%s', parcelID='%s'}", c.seq, c.name, c.parcelID)
}

func (c *Customer) setSeq(seq int) error {
	if seq < 1 {
		return errs.NewValueIsOutOfRangeError("seq", seq, 1, "unbounded")
	}
	c.seq = seq
	return nil
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) setParcelID(id kernel.ParcelID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.parcelID = id
	return nil
}

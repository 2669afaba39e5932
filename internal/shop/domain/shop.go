package domain

import (
	"errors"
	"fmt"
	"slices"

	customerdom "github.com/dmehra2102/retail-shop/internal/customer/domain"
	inventorydom "github.com/dmehra2102/retail-shop/internal/inventory/domain"
	orderdom "github.com/dmehra2102/retail-shop/internal/order/domain"
)

var (
	ErrDuplicateProduct  = errors.New("product already exists")
	ErrDuplicateCustomer = errors.New("customer email already registered")
	ErrEmptyOrder        = errors.New("order has no items")
	ErrCustomerMismatch  = errors.New("order belongs to another customer")
)

// Shop is the aggregate root. Collections keep insertion order.
type Shop struct {
	Name      string
	products  []*inventorydom.Product
	customers []*customerdom.Customer
	orders    []*orderdom.Order
}

func NewShop(name string) *Shop {
	return &Shop{Name: name}
}

func (s *Shop) AddProduct(p *inventorydom.Product) error {
	if _, ok := s.Product(p.ID); ok {
		return fmt.Errorf("%w: id %d", ErrDuplicateProduct, p.ID)
	}
	s.products = append(s.products, p)
	return nil
}

func (s *Shop) RegisterCustomer(c *customerdom.Customer) error {
	if _, ok := s.Customer(c.Email); ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCustomer, c.Email)
	}
	s.customers = append(s.customers, c)
	return nil
}

// ProcessOrder records a non-empty order on both the shop and its customer.
func (s *Shop) ProcessOrder(o *orderdom.Order, c *customerdom.Customer) error {
	if c.ID != o.CustomerID {
		return fmt.Errorf("%w: order %d, customer %d", ErrCustomerMismatch, o.ID, c.ID)
	}
	if o.IsEmpty() {
		return fmt.Errorf("%w: order %d", ErrEmptyOrder, o.ID)
	}
	s.orders = append(s.orders, o)
	c.AttachOrder(o.ID)
	return nil
}

func (s *Shop) Product(id int64) (*inventorydom.Product, bool) {
	i := slices.IndexFunc(s.products, func(p *inventorydom.Product) bool { return p.ID == id })
	if i < 0 {
		return nil, false
	}
	return s.products[i], true
}

func (s *Shop) Customer(email string) (*customerdom.Customer, bool) {
	i := slices.IndexFunc(s.customers, func(c *customerdom.Customer) bool { return c.Email == email })
	if i < 0 {
		return nil, false
	}
	return s.customers[i], true
}

func (s *Shop) CustomerByID(id int64) (*customerdom.Customer, bool) {
	i := slices.IndexFunc(s.customers, func(c *customerdom.Customer) bool { return c.ID == id })
	if i < 0 {
		return nil, false
	}
	return s.customers[i], true
}

func (s *Shop) Order(id int64) (*orderdom.Order, bool) {
	i := slices.IndexFunc(s.orders, func(o *orderdom.Order) bool { return o.ID == id })
	if i < 0 {
		return nil, false
	}
	return s.orders[i], true
}

func (s *Shop) Products() []*inventorydom.Product { return slices.Clone(s.products) }

func (s *Shop) Customers() []*customerdom.Customer { return slices.Clone(s.customers) }

func (s *Shop) Orders() []*orderdom.Order { return slices.Clone(s.orders) }

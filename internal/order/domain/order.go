package domain

import (
	"errors"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "kutilmoqda"
	StatusProcessing OrderStatus = "qayta ishlanmoqda"
	StatusShipped    OrderStatus = "yuborilgan"
	StatusDelivered  OrderStatus = "yetkazilgan"
	StatusCancelled  OrderStatus = "bekor qilingan"
)

var (
	ErrOutOfStock        = errors.New("product out of stock")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInsufficientStock = errors.New("quantity exceeds stock")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Stocker is the part of a product an order needs to take items from it.
// AddItem calls ReduceStock on it, so adding an item mutates the product.
type Stocker interface {
	ProductID() int64
	UnitPrice() decimal.Decimal
	InStock() int
	IsAvailable() bool
	ReduceStock(quantity int) error
}

type Order struct {
	ID         int64
	CustomerID int64
	items      []OrderItem
	status     OrderStatus
}

// OrderItem is a snapshot of a product line; later price changes do not affect it.
type OrderItem struct {
	ProductID  int64
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

func NewOrder(id, customerID int64) *Order {
	return &Order{
		ID:         id,
		CustomerID: customerID,
		status:     StatusPending,
	}
}

func (o *Order) AddItem(p Stocker, quantity int) error {
	if !p.IsAvailable() {
		return ErrOutOfStock
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if quantity > p.InStock() {
		return ErrInsufficientStock
	}

	unit := p.UnitPrice()
	if err := p.ReduceStock(quantity); err != nil {
		return fmt.Errorf("reduce stock of product %d: %w", p.ProductID(), err)
	}
	o.items = append(o.items, OrderItem{
		ProductID:  p.ProductID(),
		Quantity:   quantity,
		UnitPrice:  unit,
		TotalPrice: unit.Mul(decimal.NewFromInt(int64(quantity))),
	})
	return nil
}

func (o *Order) CalculateTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.TotalPrice)
	}
	return total
}

func (o *Order) Items() []OrderItem {
	return slices.Clone(o.items)
}

func (o *Order) IsEmpty() bool {
	return len(o.items) == 0
}

func (o *Order) Status() OrderStatus {
	return o.status
}

// UpdateStatus assigns any status regardless of the current one.
func (o *Order) UpdateStatus(status OrderStatus) {
	o.status = status
}

// Transition assigns status only if the transition table allows it.
func (o *Order) Transition(status OrderStatus) error {
	if !CanTransition(o.status, status) {
		return fmt.Errorf("%w: %q -> %q", ErrInvalidTransition, o.status, status)
	}
	o.status = status
	return nil
}

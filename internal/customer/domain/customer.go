package domain

import (
	"errors"
	"slices"
)

var (
	ErrInvalidPoints      = errors.New("bonus points must be positive")
	ErrInsufficientPoints = errors.New("insufficient bonus points")
)

type Customer struct {
	ID          int64
	FullName    string
	Email       string
	Phone       string
	BonusPoints int

	// orders holds the IDs of placed orders in placement order.
	orders []int64
}

func NewCustomer(id int64, fullName, email, phone string) *Customer {
	return &Customer{
		ID:       id,
		FullName: fullName,
		Email:    email,
		Phone:    phone,
	}
}

func (c *Customer) AddBonusPoints(points int) error {
	if points <= 0 {
		return ErrInvalidPoints
	}
	c.BonusPoints += points
	return nil
}

func (c *Customer) UseBonusPoints(points int) error {
	if points <= 0 {
		return ErrInvalidPoints
	}
	if c.BonusPoints < points {
		return ErrInsufficientPoints
	}
	c.BonusPoints -= points
	return nil
}

// UpdateContactInfo overwrites both fields without validation.
func (c *Customer) UpdateContactInfo(email, phone string) {
	c.Email = email
	c.Phone = phone
}

func (c *Customer) AttachOrder(orderID int64) {
	c.orders = append(c.orders, orderID)
}

func (c *Customer) Orders() []int64 {
	return slices.Clone(c.orders)
}

func (c *Customer) TotalOrders() int {
	return len(c.orders)
}

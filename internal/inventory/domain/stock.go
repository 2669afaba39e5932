package domain

import "github.com/shopspring/decimal"

func (p *Product) AddStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	p.Stock += quantity
	return nil
}

func (p *Product) ReduceStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if quantity > p.Stock {
		return ErrInsufficientStock
	}
	p.Stock -= quantity
	return nil
}

// Accessors for the order package's Stocker interface.

func (p *Product) ProductID() int64 { return p.ID }

func (p *Product) UnitPrice() decimal.Decimal { return p.Price }

func (p *Product) InStock() int { return p.Stock }

package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryElectronics Category = "elektronika"
	CategoryClothing    Category = "kiyim-kechak"
	CategoryBooks       Category = "kitoblar"
	CategoryFood        Category = "oziq-ovqat"
	CategoryHome        Category = "uy-ro'zg'or buyumlari"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryElectronics, CategoryClothing, CategoryBooks, CategoryFood, CategoryHome:
		return true
	}
	return false
}

var (
	ErrInvalidPrice      = errors.New("price must be positive")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Product is a sellable item. Stock never goes below zero.
type Product struct {
	ID       int64
	Name     string
	Price    decimal.Decimal
	Stock    int
	Category Category
}

func NewProduct(id int64, name string, price decimal.Decimal, stock int, category Category) *Product {
	return &Product{
		ID:       id,
		Name:     name,
		Price:    price,
		Stock:    stock,
		Category: category,
	}
}

func (p *Product) UpdatePrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return ErrInvalidPrice
	}
	p.Price = price
	return nil
}

func (p *Product) IsAvailable() bool {
	return p.Stock > 0
}

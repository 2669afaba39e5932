package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

type Method string

const (
	MethodCard          Method = "plastik karta"
	MethodCash          Method = "naqd pul"
	MethodBankTransfer  Method = "bank o'tkazmasi"
	MethodDigitalWallet Method = "raqamli hamyon"
)

type Status string

const (
	StatusPending   Status = "kutilmoqda"
	StatusCompleted Status = "yakunlangan"
	StatusFailed    Status = "muvaffaqiyatsiz"
	StatusRefunded  Status = "qaytarilgan"
)

var (
	ErrInvalidAmount = errors.New("payment amount must be positive")
	ErrNotPending    = errors.New("payment is not pending")
	ErrNotCompleted  = errors.New("payment is not completed")
)

type Payment struct {
	ID      int64
	OrderID int64
	Method  Method
	Amount  decimal.Decimal
	Status  Status
	Reason  string
}

func NewPayment(id, orderID int64, method Method, amount decimal.Decimal) *Payment {
	return &Payment{
		ID:      id,
		OrderID: orderID,
		Method:  method,
		Amount:  amount,
		Status:  StatusPending,
	}
}

func (p *Payment) Validate() error {
	if !p.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

func (p *Payment) Process() error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.Status != StatusPending {
		return fmt.Errorf("%w: %q", ErrNotPending, p.Status)
	}
	p.Status = StatusCompleted
	return nil
}

func (p *Payment) Decline(reason string) error {
	if p.Status != StatusPending {
		return fmt.Errorf("%w: %q", ErrNotPending, p.Status)
	}
	p.Status = StatusFailed
	p.Reason = reason
	return nil
}

func (p *Payment) Refund() error {
	if p.Status != StatusCompleted {
		return fmt.Errorf("%w: %q", ErrNotCompleted, p.Status)
	}
	p.Status = StatusRefunded
	return nil
}

// Receipt is only issued for completed payments.
func (p *Payment) Receipt() (string, bool) {
	if p.Status != StatusCompleted {
		return "", false
	}
	return fmt.Sprintf("Receipt: Payment #%d for Order #%d", p.ID, p.OrderID), true
}

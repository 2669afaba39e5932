package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	customerdom "github.com/dmehra2102/retail-shop/internal/customer/domain"
	inventorydom "github.com/dmehra2102/retail-shop/internal/inventory/domain"
	orderdom "github.com/dmehra2102/retail-shop/internal/order/domain"
	paymentdom "github.com/dmehra2102/retail-shop/internal/payment/domain"
	shopdom "github.com/dmehra2102/retail-shop/internal/shop/domain"
	"github.com/dmehra2102/retail-shop/pkg/tracing"
)

var (
	ErrUnknownProduct   = errors.New("unknown product")
	ErrUnknownCustomer  = errors.New("unknown customer")
	ErrUnknownPayment   = errors.New("unknown payment")
	ErrDuplicatePayment = errors.New("payment id already used")
)

type Options struct {
	// Strict returns rejected operations as errors and checks order status
	// transitions. Otherwise rejections are logged and dropped.
	Strict bool
	// TracerProvider defaults to the global provider.
	TracerProvider trace.TracerProvider
}

type Service struct {
	log      *slog.Logger
	shop     *shopdom.Shop
	events   EventRecorder
	tracer   trace.Tracer
	strict   bool
	payments []*paymentdom.Payment
}

func NewService(log *slog.Logger, shop *shopdom.Shop, events EventRecorder, opts Options) *Service {
	tp := opts.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return &Service{
		log:    log,
		shop:   shop,
		events: events,
		tracer: tp.Tracer("shop-service"),
		strict: opts.Strict,
	}
}

func (s *Service) Shop() *shopdom.Shop { return s.shop }

func (s *Service) AddProduct(ctx context.Context, p *inventorydom.Product) error {
	ctx, span := s.tracer.Start(ctx, "AddProduct", trace.WithAttributes(attribute.Int64("product.id", p.ID)))
	defer span.End()

	if err := s.shop.AddProduct(p); err != nil {
		return s.reject(ctx, span, "add product", err)
	}
	s.record(ctx, "product", p.ID, "ProductAdded", inventorydom.ProductAdded{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price.String(),
		Stock:     p.Stock,
		Category:  p.Category,
	})
	return nil
}

func (s *Service) RegisterCustomer(ctx context.Context, c *customerdom.Customer) error {
	ctx, span := s.tracer.Start(ctx, "RegisterCustomer", trace.WithAttributes(attribute.Int64("customer.id", c.ID)))
	defer span.End()

	if err := s.shop.RegisterCustomer(c); err != nil {
		return s.reject(ctx, span, "register customer", err)
	}
	s.record(ctx, "customer", c.ID, "CustomerRegistered", customerdom.CustomerRegistered{
		CustomerID: c.ID,
		Email:      c.Email,
	})
	return nil
}

// AddItem takes quantity units of a catalogue product into the order. The
// product's stock is reduced as part of the same call.
func (s *Service) AddItem(ctx context.Context, o *orderdom.Order, productID int64, quantity int) error {
	ctx, span := s.tracer.Start(ctx, "AddItem", trace.WithAttributes(
		attribute.Int64("order.id", o.ID),
		attribute.Int64("product.id", productID),
		attribute.Int("quantity", quantity),
	))
	defer span.End()

	p, ok := s.shop.Product(productID)
	if !ok {
		return s.reject(ctx, span, "add item", fmt.Errorf("%w: %d", ErrUnknownProduct, productID))
	}
	if err := o.AddItem(p, quantity); err != nil {
		return s.reject(ctx, span, "add item", err)
	}
	s.log.DebugContext(ctx, "item added", "order_id", o.ID, "product_id", productID, "quantity", quantity, "stock_left", p.Stock)
	return nil
}

func (s *Service) PlaceOrder(ctx context.Context, o *orderdom.Order) error {
	ctx, span := s.tracer.Start(ctx, "PlaceOrder", trace.WithAttributes(attribute.Int64("order.id", o.ID)))
	defer span.End()

	c, ok := s.shop.CustomerByID(o.CustomerID)
	if !ok {
		return s.reject(ctx, span, "place order", fmt.Errorf("%w: %d", ErrUnknownCustomer, o.CustomerID))
	}
	if err := s.shop.ProcessOrder(o, c); err != nil {
		return s.reject(ctx, span, "place order", err)
	}
	s.record(ctx, "order", o.ID, "OrderPlaced", orderdom.OrderPlaced{
		OrderID:    o.ID,
		CustomerID: o.CustomerID,
		Total:      o.CalculateTotal().String(),
		Items:      o.Items(),
	})
	s.log.InfoContext(ctx, "order placed", "order_id", o.ID, "customer_id", c.ID, "items", len(o.Items()))
	return nil
}

func (s *Service) SetOrderStatus(ctx context.Context, o *orderdom.Order, status orderdom.OrderStatus) error {
	ctx, span := s.tracer.Start(ctx, "SetOrderStatus", trace.WithAttributes(
		attribute.Int64("order.id", o.ID),
		attribute.String("order.status", string(status)),
	))
	defer span.End()

	from := o.Status()
	if s.strict {
		if err := o.Transition(status); err != nil {
			return s.reject(ctx, span, "set order status", err)
		}
	} else {
		o.UpdateStatus(status)
	}
	if from == status {
		return nil
	}
	s.record(ctx, "order", o.ID, "OrderStatusChanged", orderdom.OrderStatusChanged{
		OrderID: o.ID,
		From:    from,
		To:      status,
	})
	return nil
}

// Pay creates a payment for the order total and processes it. The payment
// is returned even when processing was rejected; it is nil only when
// paymentID is already taken.
func (s *Service) Pay(ctx context.Context, paymentID int64, o *orderdom.Order, method paymentdom.Method) (*paymentdom.Payment, error) {
	ctx, span := s.tracer.Start(ctx, "Pay", trace.WithAttributes(
		attribute.Int64("payment.id", paymentID),
		attribute.Int64("order.id", o.ID),
	))
	defer span.End()

	if _, ok := s.Payment(paymentID); ok {
		return nil, s.reject(ctx, span, "pay", fmt.Errorf("%w: %d", ErrDuplicatePayment, paymentID))
	}
	p := paymentdom.NewPayment(paymentID, o.ID, method, o.CalculateTotal())
	s.payments = append(s.payments, p)

	if s.strict {
		if err := p.Validate(); err != nil {
			if derr := p.Decline(err.Error()); derr != nil {
				return p, s.reject(ctx, span, "pay", derr)
			}
			s.record(ctx, "payment", p.ID, "PaymentDeclined", paymentdom.PaymentDeclined{
				PaymentID: p.ID,
				OrderID:   p.OrderID,
				Reason:    p.Reason,
			})
			return p, s.reject(ctx, span, "pay", err)
		}
	}
	if err := p.Process(); err != nil {
		return p, s.reject(ctx, span, "pay", err)
	}
	s.record(ctx, "payment", p.ID, "PaymentCompleted", paymentdom.PaymentCompleted{
		PaymentID: p.ID,
		OrderID:   p.OrderID,
		Method:    p.Method,
		Amount:    p.Amount.String(),
	})
	s.log.InfoContext(ctx, "payment completed", "payment_id", p.ID, "order_id", p.OrderID, "amount", p.Amount.String())
	return p, nil
}

func (s *Service) Refund(ctx context.Context, paymentID int64) error {
	ctx, span := s.tracer.Start(ctx, "Refund", trace.WithAttributes(attribute.Int64("payment.id", paymentID)))
	defer span.End()

	p, ok := s.Payment(paymentID)
	if !ok {
		return s.reject(ctx, span, "refund", fmt.Errorf("%w: %d", ErrUnknownPayment, paymentID))
	}
	if err := p.Refund(); err != nil {
		return s.reject(ctx, span, "refund", err)
	}
	s.record(ctx, "payment", p.ID, "PaymentRefunded", paymentdom.PaymentRefunded{
		PaymentID: p.ID,
		OrderID:   p.OrderID,
	})
	return nil
}

func (s *Service) Payment(id int64) (*paymentdom.Payment, bool) {
	i := slices.IndexFunc(s.payments, func(p *paymentdom.Payment) bool { return p.ID == id })
	if i < 0 {
		return nil, false
	}
	return s.payments[i], true
}

// Receipt returns the receipt of a completed payment.
func (s *Service) Receipt(ctx context.Context, paymentID int64) (string, bool) {
	ctx, span := s.tracer.Start(ctx, "Receipt", trace.WithAttributes(attribute.Int64("payment.id", paymentID)))
	defer span.End()

	p, ok := s.Payment(paymentID)
	if !ok {
		s.log.DebugContext(ctx, "receipt for unknown payment", "payment_id", paymentID)
		return "", false
	}
	receipt, ok := p.Receipt()
	span.SetAttributes(attribute.Bool("receipt.issued", ok))
	return receipt, ok
}

func (s *Service) AwardBonus(ctx context.Context, c *customerdom.Customer, points int) error {
	ctx, span := s.tracer.Start(ctx, "AwardBonus", trace.WithAttributes(attribute.Int64("customer.id", c.ID)))
	defer span.End()

	if err := c.AddBonusPoints(points); err != nil {
		return s.reject(ctx, span, "award bonus", err)
	}
	return nil
}

func (s *Service) RedeemBonus(ctx context.Context, c *customerdom.Customer, points int) error {
	ctx, span := s.tracer.Start(ctx, "RedeemBonus", trace.WithAttributes(attribute.Int64("customer.id", c.ID)))
	defer span.End()

	if err := c.UseBonusPoints(points); err != nil {
		return s.reject(ctx, span, "redeem bonus", err)
	}
	return nil
}

func (s *Service) Search(ctx context.Context, q shopdom.SearchQuery) shopdom.SearchResult {
	ctx, span := s.tracer.Start(ctx, "Search")
	defer span.End()

	res := s.shop.Search(q)
	span.SetAttributes(attribute.Int("search.total", res.TotalCount))
	s.log.DebugContext(ctx, "catalogue searched", "name", q.Name, "category", q.Category, "total", res.TotalCount, "took", res.SearchTime)
	return res
}

func (s *Service) reject(ctx context.Context, span trace.Span, op string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	if s.strict {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.DebugContext(ctx, "operation rejected", "op", op, "err", err)
	return nil
}

func (s *Service) record(ctx context.Context, aggregateType string, id int64, eventType string, payload any) {
	if s.events == nil {
		return
	}
	headers := map[string]string{"source": "shop-service"}
	if _, err := s.events.Append(aggregateType, strconv.FormatInt(id, 10), eventType, payload, headers, tracing.Traceparent(ctx)); err != nil {
		s.log.ErrorContext(ctx, "record event failed", "type", eventType, "err", err)
	}
}

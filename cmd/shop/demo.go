package main

import (
	"context"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	customerdom "github.com/dmehra2102/retail-shop/internal/customer/domain"
	inventorydom "github.com/dmehra2102/retail-shop/internal/inventory/domain"
	orderdom "github.com/dmehra2102/retail-shop/internal/order/domain"
	paymentdom "github.com/dmehra2102/retail-shop/internal/payment/domain"
	"github.com/dmehra2102/retail-shop/internal/shop/application"
)

// demo stocks the shop, places one order for one customer and pays for it.
func demo(ctx context.Context, svc *application.Service, out io.Writer) error {
	products := []*inventorydom.Product{
		inventorydom.NewProduct(1, "iPhone 15", decimal.NewFromInt(15_000_000), 10, inventorydom.CategoryElectronics),
		inventorydom.NewProduct(2, "White T-shirt", decimal.NewFromInt(100_000), 20, inventorydom.CategoryClothing),
		inventorydom.NewProduct(3, "Non", decimal.NewFromInt(3_000), 50, inventorydom.CategoryFood),
	}
	for _, p := range products {
		if err := svc.AddProduct(ctx, p); err != nil {
			return err
		}
	}

	customer := customerdom.NewCustomer(101, "Marko", "mark@mail.com", "+998901234567")
	if err := svc.RegisterCustomer(ctx, customer); err != nil {
		return err
	}

	order := orderdom.NewOrder(1, customer.ID)
	lines := []struct {
		productID int64
		quantity  int
	}{{1, 1}, {2, 2}, {3, 3}}
	for _, l := range lines {
		if err := svc.AddItem(ctx, order, l.productID, l.quantity); err != nil {
			return err
		}
	}
	if err := svc.PlaceOrder(ctx, order); err != nil {
		return err
	}
	fmt.Fprintln(out, "Buyurtma summasi:", order.CalculateTotal().String(), "so'm")

	if err := svc.SetOrderStatus(ctx, order, orderdom.StatusProcessing); err != nil {
		return err
	}
	fmt.Fprintln(out, "Buyurtma holati:", order.Status())

	payment, err := svc.Pay(ctx, 5001, order, paymentdom.MethodCard)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "To'lov holati:", payment.Status)

	if receipt, ok := svc.Receipt(ctx, payment.ID); ok {
		fmt.Fprintln(out, receipt)
	}

	fmt.Fprintln(out, "Mijozning jami buyurtmalari:", customer.TotalOrders())
	return nil
}

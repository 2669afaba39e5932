package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	inventorydom "github.com/dmehra2102/retail-shop/internal/inventory/domain"
)

func TestOrder_CalculateTotal(t *testing.T) {
	iphone := inventorydom.NewProduct(1, "iPhone 15", decimal.NewFromInt(15_000_000), 10, inventorydom.CategoryElectronics)
	tshirt := inventorydom.NewProduct(2, "White T-shirt", decimal.NewFromInt(100_000), 20, inventorydom.CategoryClothing)
	bread := inventorydom.NewProduct(3, "Non", decimal.NewFromInt(3_000), 50, inventorydom.CategoryFood)

	o := NewOrder(1, 101)
	require.NoError(t, o.AddItem(iphone, 1))
	require.NoError(t, o.AddItem(tshirt, 2))
	require.NoError(t, o.AddItem(bread, 3))

	assert.Equal(t, "15209000", o.CalculateTotal().String())
	assert.Equal(t, 9, iphone.Stock)
	assert.Equal(t, 18, tshirt.Stock)
	assert.Equal(t, 47, bread.Stock)
	assert.Equal(t, StatusPending, o.Status())
}

func TestOrder_ItemIsPriceSnapshot(t *testing.T) {
	p := inventorydom.NewProduct(2, "White T-shirt", decimal.NewFromInt(100_000), 20, inventorydom.CategoryClothing)
	o := NewOrder(1, 101)
	require.NoError(t, o.AddItem(p, 2))

	require.NoError(t, p.UpdatePrice(decimal.NewFromInt(1)))
	items := o.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "100000", items[0].UnitPrice.String())
	assert.Equal(t, "200000", items[0].TotalPrice.String())
}

func TestOrder_AddItemRejections(t *testing.T) {
	empty := inventorydom.NewProduct(9, "Sold out", decimal.NewFromInt(10), 0, inventorydom.CategoryBooks)
	some := inventorydom.NewProduct(10, "Book", decimal.NewFromInt(10), 3, inventorydom.CategoryBooks)
	o := NewOrder(1, 101)

	assert.ErrorIs(t, o.AddItem(empty, 1), ErrOutOfStock)
	assert.ErrorIs(t, o.AddItem(some, 0), ErrInvalidQuantity)
	assert.ErrorIs(t, o.AddItem(some, 4), ErrInsufficientStock)
	assert.True(t, o.IsEmpty())
	assert.Equal(t, 3, some.Stock)
}

func TestOrder_AddItemProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		stock := rapid.IntRange(0, 500).Draw(t, "stock")
		price := rapid.Int64Range(1, 100_000_000).Draw(t, "price")
		qty := rapid.IntRange(-10, 600).Draw(t, "qty")

		p := inventorydom.NewProduct(1, "p", decimal.NewFromInt(price), stock, inventorydom.CategoryHome)
		o := NewOrder(1, 1)
		err := o.AddItem(p, qty)

		if qty > 0 && qty <= stock {
			if err != nil {
				t.Fatalf("add %d of %d: %v", qty, stock, err)
			}
			if p.Stock != stock-qty {
				t.Fatalf("stock = %d, want %d", p.Stock, stock-qty)
			}
			items := o.Items()
			if len(items) != 1 {
				t.Fatalf("items = %d, want 1", len(items))
			}
			want := decimal.NewFromInt(price * int64(qty))
			if !items[0].TotalPrice.Equal(want) || !o.CalculateTotal().Equal(want) {
				t.Fatalf("total = %s, want %s", items[0].TotalPrice, want)
			}
			return
		}
		if err == nil {
			t.Fatalf("add %d of %d should be rejected", qty, stock)
		}
		if p.Stock != stock || !o.IsEmpty() {
			t.Fatalf("rejected add changed state: stock=%d items=%d", p.Stock, len(o.Items()))
		}
	})
}

func TestOrder_TotalIsSumOfItems(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 8).Draw(t, "n")
		o := NewOrder(1, 1)
		want := decimal.Zero
		for i := 0; i < n; i++ {
			price := rapid.Int64Range(1, 1_000_000).Draw(t, "price")
			qty := rapid.IntRange(1, 20).Draw(t, "qty")
			p := inventorydom.NewProduct(int64(i), "p", decimal.NewFromInt(price), 20, inventorydom.CategoryFood)
			if err := o.AddItem(p, qty); err != nil {
				t.Fatalf("add: %v", err)
			}
			want = want.Add(decimal.NewFromInt(price * int64(qty)))
		}
		if !o.CalculateTotal().Equal(want) {
			t.Fatalf("total = %s, want %s", o.CalculateTotal(), want)
		}
	})
}

func TestOrder_UpdateStatusIsUnconstrained(t *testing.T) {
	o := NewOrder(1, 101)
	o.UpdateStatus(StatusDelivered)
	o.UpdateStatus(StatusPending)
	assert.Equal(t, StatusPending, o.Status())
}

func TestOrder_Transition(t *testing.T) {
	tests := []struct {
		name string
		path []OrderStatus
		ok   bool
	}{
		{"happy path", []OrderStatus{StatusProcessing, StatusShipped, StatusDelivered}, true},
		{"cancel from pending", []OrderStatus{StatusCancelled}, true},
		{"cancel after shipping", []OrderStatus{StatusProcessing, StatusShipped, StatusCancelled}, true},
		{"skip processing", []OrderStatus{StatusShipped}, false},
		{"cancel delivered", []OrderStatus{StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled}, false},
		{"back to pending", []OrderStatus{StatusProcessing, StatusPending}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOrder(1, 101)
			var err error
			for _, s := range tt.path {
				if err = o.Transition(s); err != nil {
					break
				}
			}
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.path[len(tt.path)-1], o.Status())
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition)
			}
		})
	}
}

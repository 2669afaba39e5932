package domain

type OrderPlaced struct {
	OrderID    int64
	CustomerID int64
	Total      string
	Items      []OrderItem
}

type OrderStatusChanged struct {
	OrderID int64
	From    OrderStatus
	To      OrderStatus
}

package domain

type PaymentCompleted struct {
	PaymentID int64
	OrderID   int64
	Method    Method
	Amount    string
}

type PaymentRefunded struct {
	PaymentID int64
	OrderID   int64
}

type PaymentDeclined struct {
	PaymentID int64
	OrderID   int64
	Reason    string
}

package domain

type CustomerRegistered struct {
	CustomerID int64
	Email      string
}

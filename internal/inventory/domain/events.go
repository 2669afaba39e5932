package domain

type ProductAdded struct {
	ProductID int64
	Name      string
	Price     string
	Stock     int
	Category  Category
}

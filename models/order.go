package models

import "time"

// Order represents a customer's order.
// Products are linked through the order_product join table, keyed by
// (order_id, product_id), so a product appears on an order at most once.
type Order struct {
	ID         uint      `gorm:"primaryKey"`
	OrderDate  time.Time `gorm:"autoCreateTime"`
	CustomerID uint      `gorm:"not null"`
	Products   []Product `gorm:"many2many:order_product"`
}

func (o *Order) TableName() string {
	return "orders"
}

// HasProduct reports whether the product is already linked to the order.
// It inspects the loaded association only; callers must preload Products.
func (o *Order) HasProduct(productID uint) bool {
	for _, p := range o.Products {
		if p.ID == productID {
			return true
		}
	}
	return false
}

package models

import (
	"github.com/shopspring/decimal"
)

// Product represents a product that can be placed on orders.
type Product struct {
	ID          uint            `gorm:"primaryKey"`
	ProductName string          `gorm:"type:varchar(100);not null"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Orders      []Order         `gorm:"many2many:order_product"`
}

func (p *Product) TableName() string {
	return "products"
}

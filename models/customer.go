package models

// Customer represents a registered customer.
// A customer owns zero or more orders.
type Customer struct {
	ID      uint    `gorm:"primaryKey"`
	Name    string  `gorm:"type:varchar(30);not null"`
	Address string  `gorm:"type:varchar(200);not null"`
	Email   string  `gorm:"type:varchar(100);not null"`
	Orders  []Order `gorm:"foreignKey:CustomerID"`
}

func (c *Customer) TableName() string {
	return "customers"
}

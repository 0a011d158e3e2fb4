package models

import (
	"errors"

	"gorm.io/gorm"
)

type OrdersRepository struct {
	db *gorm.DB
}

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

func NewOrdersRepository(db *gorm.DB) *OrdersRepository {
	return &OrdersRepository{
		db: db,
	}
}

// CreateOrder inserts the order row. The customer_id is stored as given;
// whether an orphan reference is rejected depends on the database's
// foreign-key enforcement.
func (r *OrdersRepository) CreateOrder(order *Order) error {
	return r.db.Create(order).Error
}

func (r *OrdersRepository) GetByID(id uint) (*Order, error) {
	var order Order
	if err := r.db.
		Preload("Products").
		First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrdersRepository) GetByCustomer(customerID uint) ([]Order, error) {
	var orders []Order
	if err := r.db.
		Preload("Products").
		Where("customer_id = ?", customerID).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// AddProduct links the product to the order. The join row is keyed by
// (order_id, product_id); callers check membership first to avoid a
// duplicate-key failure.
func (r *OrdersRepository) AddProduct(order *Order, product *Product) error {
	return r.db.Model(order).Association("Products").Append(product)
}

// RemoveProduct unlinks the product from the order. Removing a product
// that is not linked is a no-op at the database level; callers check
// membership first.
func (r *OrdersRepository) RemoveProduct(order *Order, product *Product) error {
	return r.db.Model(order).Association("Products").Delete(product)
}

package models

import (
	"errors"

	"gorm.io/gorm"
)

type CustomersRepository struct {
	db *gorm.DB
}

// ErrCustomerNotFound is returned when a customer is not found.
var ErrCustomerNotFound = errors.New("customer not found")

func NewCustomersRepository(db *gorm.DB) *CustomersRepository {
	return &CustomersRepository{
		db: db,
	}
}

func (r *CustomersRepository) GetAllCustomers() ([]Customer, error) {
	var customers []Customer
	if err := r.db.Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *CustomersRepository) GetByID(id uint) (*Customer, error) {
	var customer Customer
	if err := r.db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (r *CustomersRepository) CreateCustomer(customer *Customer) error {
	return r.db.Create(customer).Error
}

func (r *CustomersRepository) SaveCustomer(customer *Customer) error {
	return r.db.Save(customer).Error
}

// DeleteCustomer removes the customer row only. Orders referencing the
// customer are left in place.
func (r *CustomersRepository) DeleteCustomer(customer *Customer) error {
	return r.db.Delete(customer).Error
}

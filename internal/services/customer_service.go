package services

import (
	"github.com/franciscosanchezn/restaurant-backoffice/internal/models"
	"github.com/franciscosanchezn/restaurant-backoffice/internal/store"
)

type CustomerService interface {
	CreateCustomer(customer models.Customer) error
	GetCustomerByID(id int) (models.Customer, error)
	UpdateCustomer(customer models.Customer) error
	DeleteCustomer(id int) error
	GetAllCustomers() []models.Customer
}

type customerService struct {
	customers *store.Collection[models.Customer]
}

func NewCustomerService(customers *store.Collection[models.Customer]) CustomerService {
	return &customerService{customers: customers}
}

func (s *customerService) CreateCustomer(customer models.Customer) error {
	return storeError("Customer", s.customers.Add(customer.ID, customer))
}

func (s *customerService) GetCustomerByID(id int) (models.Customer, error) {
	customer, err := s.customers.Find(id)
	if err != nil {
		return models.Customer{}, storeError("Customer", err)
	}
	return customer, nil
}

func (s *customerService) UpdateCustomer(customer models.Customer) error {
	return storeError("Customer", s.customers.Replace(customer.ID, customer))
}

func (s *customerService) DeleteCustomer(id int) error {
	return storeError("Customer", s.customers.Delete(id))
}

func (s *customerService) GetAllCustomers() []models.Customer {
	return s.customers.List()
}

package services

import (
	"github.com/franciscosanchezn/restaurant-backoffice/internal/models"
	"github.com/franciscosanchezn/restaurant-backoffice/internal/store"
)

// OrderService manages customer orders. The customer ID of an order is
// stored as given and never checked against the customer records.
type OrderService interface {
	// CreateOrder composes a New order from copies of dishes
	CreateOrder(id, customerID int, dishes []models.Dish, paymentMethod string) (models.Order, error)
	GetOrderByID(id int) (models.Order, error)
	// UpdateOrder replaces customer, dishes and payment method and recomputes
	// the total fee. The status is kept.
	UpdateOrder(id, customerID int, dishes []models.Dish, paymentMethod string) (models.Order, error)
	// UpdateStatus sets the status of an order without transition checks
	UpdateStatus(id int, status models.OrderStatus) error
	DeleteOrder(id int) error
	GetAllOrders() []models.Order
	// ResolveDish returns a snapshot copy of a dish for use in an order
	ResolveDish(dishID int) (models.Dish, error)
}

type orderService struct {
	orders *store.Collection[models.Order]
	dishes DishService
}

func NewOrderService(orders *store.Collection[models.Order], dishes DishService) OrderService {
	return &orderService{orders: orders, dishes: dishes}
}

func (s *orderService) CreateOrder(id, customerID int, dishes []models.Dish, paymentMethod string) (models.Order, error) {
	order := models.NewOrder(id, customerID, dishes, paymentMethod)
	if err := s.orders.Add(order.ID, order); err != nil {
		return models.Order{}, storeError("Order", err)
	}
	return order.Clone(), nil
}

func (s *orderService) GetOrderByID(id int) (models.Order, error) {
	order, err := s.orders.Find(id)
	if err != nil {
		return models.Order{}, storeError("Order", err)
	}
	return order.Clone(), nil
}

func (s *orderService) UpdateOrder(id, customerID int, dishes []models.Dish, paymentMethod string) (models.Order, error) {
	order, err := s.orders.Find(id)
	if err != nil {
		return models.Order{}, storeError("Order", err)
	}
	order.CustomerID = customerID
	order.PaymentMethod = paymentMethod
	order.SetDishes(dishes)
	if err := s.orders.Replace(id, order); err != nil {
		return models.Order{}, storeError("Order", err)
	}
	return order.Clone(), nil
}

func (s *orderService) UpdateStatus(id int, status models.OrderStatus) error {
	order, err := s.orders.Find(id)
	if err != nil {
		return storeError("Order", err)
	}
	order.UpdateStatus(status)
	return storeError("Order", s.orders.Replace(id, order))
}

func (s *orderService) DeleteOrder(id int) error {
	return storeError("Order", s.orders.Delete(id))
}

// GetAllOrders returns copies of the stored orders in insertion order
func (s *orderService) GetAllOrders() []models.Order {
	orders := s.orders.List()
	for i, o := range orders {
		orders[i] = o.Clone()
	}
	return orders
}

func (s *orderService) ResolveDish(dishID int) (models.Dish, error) {
	dish, err := s.dishes.GetDishByID(dishID)
	if err != nil {
		return models.Dish{}, models.NewError(models.CodeUnresolvedReference, "Dish not found")
	}
	return dish, nil
}

package management

import (
	"github.com/franciscosanchezn/restaurant-backoffice/internal/auth"
	"github.com/franciscosanchezn/restaurant-backoffice/internal/models"
)

// ResolveDish returns a copy of a dish to place in an order.
// An unknown ID yields an unresolved reference that the caller may retry.
func (f *Facade) ResolveDish(s auth.Session, dishID int) (models.Dish, error) {
	if err := f.gate.Authorize(s, auth.OpResolveDish); err != nil {
		return models.Dish{}, err
	}
	return f.orders.ResolveDish(dishID)
}

// AddOrder places a New order. The customer ID is not checked against the
// customer records.
func (f *Facade) AddOrder(s auth.Session, id, customerID int, dishes []models.Dish, paymentMethod string) (string, error) {
	if err := f.gate.Authorize(s, auth.OpAddOrder); err != nil {
		return "", err
	}
	if _, err := f.orders.CreateOrder(id, customerID, dishes, paymentMethod); err != nil {
		return "", err
	}
	f.logSuccess(s, auth.OpAddOrder, id)
	return "Order added successfully.", nil
}

// ModifyOrder replaces customer, dishes and payment method and recomputes the
// total fee. The status is left as it was.
func (f *Facade) ModifyOrder(s auth.Session, id, customerID int, dishes []models.Dish, paymentMethod string) (string, error) {
	if err := f.gate.Authorize(s, auth.OpModifyOrder); err != nil {
		return "", err
	}
	if _, err := f.orders.UpdateOrder(id, customerID, dishes, paymentMethod); err != nil {
		return "", err
	}
	f.logSuccess(s, auth.OpModifyOrder, id)
	return "Order modified successfully.", nil
}

// UpdateOrderStatus sets any status from any other
func (f *Facade) UpdateOrderStatus(s auth.Session, id int, status models.OrderStatus) (string, error) {
	if err := f.gate.Authorize(s, auth.OpUpdateOrderStatus); err != nil {
		return "", err
	}
	if err := f.orders.UpdateStatus(id, status); err != nil {
		return "", err
	}
	f.logSuccess(s, auth.OpUpdateOrderStatus, id)
	return "Order status updated successfully.", nil
}

func (f *Facade) DeleteOrder(s auth.Session, id int) (string, error) {
	if err := f.gate.Authorize(s, auth.OpDeleteOrder); err != nil {
		return "", err
	}
	if err := f.orders.DeleteOrder(id); err != nil {
		return "", err
	}
	f.logSuccess(s, auth.OpDeleteOrder, id)
	return "Order deleted successfully.", nil
}

func (f *Facade) DisplayOrders(s auth.Session) (string, error) {
	if err := f.gate.Authorize(s, auth.OpDisplayOrder); err != nil {
		return "", err
	}
	return display(f.orders.GetAllOrders(), "No orders available."), nil
}

// Checkout shows the total fee of every order
func (f *Facade) Checkout(s auth.Session) (string, error) {
	if err := f.gate.Authorize(s, auth.OpCheckout); err != nil {
		return "", err
	}
	orders := f.orders.GetAllOrders()
	lines := make([]feeLine, 0, len(orders))
	for _, o := range orders {
		lines = append(lines, feeLine(o))
	}
	return display(lines, "No orders available."), nil
}

type feeLine models.Order

func (l feeLine) String() string {
	return models.Order(l).FeeLine()
}
